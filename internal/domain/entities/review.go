package entities

// Review represents a user's review of a place. PlaceID and UserID are
// authoritative links that must resolve at creation time.
type Review struct {
	Base
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// NewReview creates a review with a fresh identity.
func NewReview(text string, rating int, placeID, userID string) *Review {
	return &Review{
		Base:    NewBase(),
		Text:    text,
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	}
}

// Clone returns a copy of the review.
func (r *Review) Clone() *Review {
	clone := *r
	return &clone
}
