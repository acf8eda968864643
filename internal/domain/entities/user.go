package entities

import "strings"

// User represents a registered account. Email is stored normalized and is
// unique across all users. Password holds the bcrypt hash and is never
// serialized. Places and Reviews are back-reference collections; the
// authoritative links are Place.OwnerID and Review.UserID.
type User struct {
	Base
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Password  string   `json:"-"`
	IsAdmin   bool     `json:"is_admin"`
	Places    []string `json:"places"`
	Reviews   []string `json:"reviews"`
}

// NewUser creates a user with a fresh identity. The email is normalized and
// the password is expected to be hashed already.
func NewUser(firstName, lastName, email, hashedPassword string, isAdmin bool) *User {
	return &User{
		Base:      NewBase(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     NormalizeEmail(email),
		Password:  hashedPassword,
		IsAdmin:   isAdmin,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases an email
// address. Lookups and uniqueness checks always use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AddPlace registers an owned place on the user's back-reference collection.
// Adding an already-present id is a no-op.
func (u *User) AddPlace(placeID string) {
	if !contains(u.Places, placeID) {
		u.Places = append(u.Places, placeID)
	}
}

// RemovePlace drops a place id from the back-reference collection.
func (u *User) RemovePlace(placeID string) {
	u.Places = remove(u.Places, placeID)
}

// AddReview registers an authored review on the user's back-reference
// collection. Adding an already-present id is a no-op.
func (u *User) AddReview(reviewID string) {
	if !contains(u.Reviews, reviewID) {
		u.Reviews = append(u.Reviews, reviewID)
	}
}

// RemoveReview drops a review id from the back-reference collection.
func (u *User) RemoveReview(reviewID string) {
	u.Reviews = remove(u.Reviews, reviewID)
}

// Clone returns a deep copy so repository snapshots are isolated from later
// mutations.
func (u *User) Clone() *User {
	clone := *u
	clone.Places = append([]string(nil), u.Places...)
	clone.Reviews = append([]string(nil), u.Reviews...)
	return &clone
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
