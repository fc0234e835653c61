package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/store"
)

func GetVenues(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := st.Load()

		venues := make([]models.VenueStats, 0, len(doc.Venues))
		for _, v := range doc.Venues {
			venues = append(venues, venueStats(v, doc.Reviews))
		}

		c.JSON(http.StatusOK, gin.H{"venues": venues})
	}
}

func GetVenue(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}

		doc := st.Load()
		venue := doc.VenueByID(venueID)
		if venue == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"venue": venueStats(*venue, doc.Reviews)})
	}
}
