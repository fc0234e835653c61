package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/store"
)

type createReviewRequest struct {
	VenueID int    `json:"venue_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Text    string `json:"text"`
}

// Partial update: nil means "leave unchanged" (pointer fields so an absent
// key is distinguishable from a zero value).
type updateReviewRequest struct {
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text   *string `json:"text"`
}

// GetReviews lists reviews, optionally filtered by the venue_id query
// parameter, enriched and newest first.
func GetReviews(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := st.Load()

		reviews := doc.Reviews
		if raw := c.Query("venue_id"); raw != "" {
			venueID, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue_id"})
				return
			}
			filtered := make([]models.Review, 0, len(reviews))
			for _, r := range reviews {
				if r.VenueID == venueID {
					filtered = append(filtered, r)
				}
			}
			reviews = filtered
		}

		enriched := make([]models.EnrichedReview, 0, len(reviews))
		for _, r := range reviews {
			enriched = append(enriched, enrichReview(r, doc))
		}
		sortNewestFirst(enriched)

		c.JSON(http.StatusOK, gin.H{"reviews": enriched})
	}
}

func CreateReview(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		doc := st.Load()
		venue := doc.VenueByID(req.VenueID)
		if venue == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}

		review := models.Review{
			ID:        doc.NextReviewID(),
			UserID:    userID,
			VenueID:   req.VenueID,
			Rating:    req.Rating,
			Text:      strings.TrimSpace(req.Text),
			Timestamp: utcTimestamp(),
		}
		doc.Reviews = append(doc.Reviews, review)

		if err := st.Save(doc); err != nil {
			log.Println("[REVIEW] [ERROR] create save failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		username := "Unknown"
		if u := doc.UserByID(userID); u != nil {
			username = u.Username
		}

		log.Printf("[REVIEW] [INFO] review %d created by user %d on venue %d", review.ID, userID, req.VenueID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Review created",
			"review": models.EnrichedReview{
				Review:    review,
				Username:  username,
				VenueName: venue.Name,
			},
		})
	}
}

func UpdateReview(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		reviewID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		doc := st.Load()
		review := doc.ReviewByID(reviewID)
		if review == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		if review.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own reviews"})
			return
		}

		var req updateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Rating != nil {
			review.Rating = *req.Rating
		}
		if req.Text != nil {
			review.Text = strings.TrimSpace(*req.Text)
		}

		if err := st.Save(doc); err != nil {
			log.Println("[REVIEW] [ERROR] update save failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		username := "Unknown"
		if u := doc.UserByID(userID); u != nil {
			username = u.Username
		}
		venueName := "Unknown"
		if v := doc.VenueByID(review.VenueID); v != nil {
			venueName = v.Name
		}

		log.Printf("[REVIEW] [INFO] review %d updated by user %d", reviewID, userID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Review updated",
			"review": models.EnrichedReview{
				Review:    *review,
				Username:  username,
				VenueName: venueName,
			},
		})
	}
}

func DeleteReview(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		reviewID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		doc := st.Load()
		review := doc.ReviewByID(reviewID)
		if review == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		if review.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own reviews"})
			return
		}

		doc.DeleteReview(reviewID)

		if err := st.Save(doc); err != nil {
			log.Println("[REVIEW] [ERROR] delete save failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		log.Printf("[REVIEW] [INFO] review %d deleted by user %d", reviewID, userID)
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}

// GetFeed returns every review enriched, newest first.
func GetFeed(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := st.Load()

		enriched := make([]models.EnrichedReview, 0, len(doc.Reviews))
		for _, r := range doc.Reviews {
			enriched = append(enriched, enrichReview(r, doc))
		}
		sortNewestFirst(enriched)

		c.JSON(http.StatusOK, gin.H{"reviews": enriched})
	}
}
