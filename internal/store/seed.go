package store

import "backend/internal/models"

// Seed returns the initial document written when no database file exists:
// the fixed venue catalog, no users, and a few demo reviews.
func Seed() *Document {
	return &Document{
		Users: []models.User{},
		Venues: []models.Venue{
			{
				ID:          1,
				Name:        "Downtown Sports Arena",
				Location:    "123 Main Street, Downtown",
				Description: "A state-of-the-art sports arena featuring basketball courts, volleyball nets, and indoor soccer fields. Perfect for team sports and recreational activities.",
			},
			{
				ID:          2,
				Name:        "Riverside Tennis Club",
				Location:    "456 River Road, Westside",
				Description: "Premium tennis facility with 8 outdoor courts and 4 indoor courts. Offers lessons for all skill levels and hosts regular tournaments.",
			},
			{
				ID:          3,
				Name:        "Mountain View Golf Course",
				Location:    "789 Highland Drive, North Hills",
				Description: "An 18-hole championship golf course with stunning mountain views. Features a pro shop, driving range, and clubhouse restaurant.",
			},
			{
				ID:          4,
				Name:        "Aquatic Sports Center",
				Location:    "321 Ocean Boulevard, Beachfront",
				Description: "Olympic-sized swimming pool with diving boards, water polo facilities, and a separate kids pool. Open year-round with heated pools.",
			},
			{
				ID:          5,
				Name:        "City Fitness Stadium",
				Location:    "555 Athletic Way, Midtown",
				Description: "Multi-purpose stadium with track and field facilities, gym equipment, and outdoor workout areas. Hosts marathons and community sports events.",
			},
		},
		Reviews: []models.Review{
			{
				ID:        1,
				UserID:    1,
				VenueID:   1,
				Rating:    5,
				Text:      "Amazing facility! The basketball courts are top-notch and well-maintained.",
				Timestamp: "2025-01-15T10:30:00Z",
			},
			{
				ID:        2,
				UserID:    2,
				VenueID:   1,
				Rating:    4,
				Text:      "Great place for team sports. Sometimes gets crowded on weekends.",
				Timestamp: "2025-01-16T14:20:00Z",
			},
			{
				ID:        3,
				UserID:    1,
				VenueID:   2,
				Rating:    5,
				Text:      "Best tennis courts in the city! The instructors are fantastic.",
				Timestamp: "2025-01-17T09:15:00Z",
			},
		},
	}
}
