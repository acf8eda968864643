package entities

// Amenity represents a feature a place can offer (wifi, parking, ...).
type Amenity struct {
	Base
	Name string `json:"name"`
}

// NewAmenity creates an amenity with a fresh identity.
func NewAmenity(name string) *Amenity {
	return &Amenity{
		Base: NewBase(),
		Name: name,
	}
}

// Clone returns a copy of the amenity.
func (a *Amenity) Clone() *Amenity {
	clone := *a
	return &clone
}
