package models

// Review is a star rating plus text left by a user on a venue.
// Timestamp is an RFC3339 UTC string with a 'Z' suffix, so lexicographic
// order equals chronological order.
type Review struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	VenueID   int    `json:"venue_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// EnrichedReview is a review with display fields joined on at read time.
// It is never persisted.
type EnrichedReview struct {
	Review
	Username  string `json:"username"`
	VenueName string `json:"venue_name"`
}
