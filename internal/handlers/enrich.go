package handlers

import (
	"sort"

	"github.com/montanaflynn/stats"

	"backend/internal/models"
	"backend/internal/store"
)

// averageRating is the mean rating rounded to one decimal place, zero by
// convention for an empty set.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	ratings := make([]float64, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, float64(r.Rating))
	}
	mean, err := stats.Mean(ratings)
	if err != nil {
		return 0
	}
	rounded, err := stats.Round(mean, 1)
	if err != nil {
		return 0
	}
	return rounded
}

func venueStats(v models.Venue, reviews []models.Review) models.VenueStats {
	var venueReviews []models.Review
	for _, r := range reviews {
		if r.VenueID == v.ID {
			venueReviews = append(venueReviews, r)
		}
	}
	return models.VenueStats{
		Venue:       v,
		AvgRating:   averageRating(venueReviews),
		ReviewCount: len(venueReviews),
	}
}

// enrichReview joins display fields onto a review. Dangling references
// degrade to placeholder labels instead of failing; the stored review is
// never mutated.
func enrichReview(rev models.Review, doc *store.Document) models.EnrichedReview {
	username := "Unknown User"
	if u := doc.UserByID(rev.UserID); u != nil {
		username = u.Username
	}
	venueName := "Unknown Venue"
	if v := doc.VenueByID(rev.VenueID); v != nil {
		venueName = v.Name
	}
	return models.EnrichedReview{Review: rev, Username: username, VenueName: venueName}
}

// sortNewestFirst orders a feed descending by timestamp. The sort is stable
// so ties keep their original collection order.
func sortNewestFirst(reviews []models.EnrichedReview) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Timestamp > reviews[j].Timestamp
	})
}

func sortReviewsNewestFirst(reviews []models.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Timestamp > reviews[j].Timestamp
	})
}
