package entities

// Place represents a rentable property. OwnerID is the authoritative link to
// the owning user. Reviews and Amenities hold ids, not nested objects;
// Amenities has set semantics.
type Place struct {
	Base
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Reviews     []string `json:"reviews"`
	Amenities   []string `json:"amenities"`
}

// NewPlace creates a place with a fresh identity.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) *Place {
	return &Place{
		Base:        NewBase(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
	}
}

// AddReview registers a review on the place's back-reference collection.
// Adding an already-present id is a no-op.
func (p *Place) AddReview(reviewID string) {
	if !contains(p.Reviews, reviewID) {
		p.Reviews = append(p.Reviews, reviewID)
	}
}

// RemoveReview drops a review id from the back-reference collection.
func (p *Place) RemoveReview(reviewID string) {
	p.Reviews = remove(p.Reviews, reviewID)
}

// AddAmenity adds an amenity id. The collection is a set: adding an
// already-present id is a no-op.
func (p *Place) AddAmenity(amenityID string) {
	if !contains(p.Amenities, amenityID) {
		p.Amenities = append(p.Amenities, amenityID)
	}
}

// RemoveAmenity drops an amenity id from the set.
func (p *Place) RemoveAmenity(amenityID string) {
	p.Amenities = remove(p.Amenities, amenityID)
}

// ClearAmenities empties the amenity set.
func (p *Place) ClearAmenities() {
	p.Amenities = nil
}

// Clone returns a deep copy so repository snapshots are isolated from later
// mutations.
func (p *Place) Clone() *Place {
	clone := *p
	clone.Reviews = append([]string(nil), p.Reviews...)
	clone.Amenities = append([]string(nil), p.Amenities...)
	return &clone
}
