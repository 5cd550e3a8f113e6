package domain

// Service represents a bookable salon offering from the catalog.
// Services are supplied by the catalog provider and are read-only here.
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Category        string
	Active          bool
}

// Professional represents a staff member bookings are assigned to.
// The booking engine treats the ID as an opaque conflict key.
type Professional struct {
	ID          int64
	DisplayName string
}
