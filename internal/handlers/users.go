package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/store"
)

// Profile reviews carry the venue name but not the username: the profile
// page already shows whose reviews they are.
type profileReview struct {
	models.Review
	VenueName string `json:"venue_name"`
}

func GetUserProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		doc := st.Load()
		user := doc.UserByID(userID)
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var userReviews []models.Review
		for _, r := range doc.Reviews {
			if r.UserID == userID {
				userReviews = append(userReviews, r)
			}
		}
		sortReviewsNewestFirst(userReviews)

		reviews := make([]profileReview, 0, len(userReviews))
		for _, r := range userReviews {
			venueName := "Unknown Venue"
			if v := doc.VenueByID(r.VenueID); v != nil {
				venueName = v.Name
			}
			reviews = append(reviews, profileReview{Review: r, VenueName: venueName})
		}

		c.JSON(http.StatusOK, gin.H{
			"user":    user.Public(),
			"reviews": reviews,
		})
	}
}
