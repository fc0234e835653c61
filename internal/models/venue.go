package models

// Venue is a sports venue from the seeded catalog.
type Venue struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// VenueStats is a venue plus rating aggregates derived at read time.
type VenueStats struct {
	Venue
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}
