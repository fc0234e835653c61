package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
)

func TestCreateReviewRequiresLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 1, "rating": 5}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	r, _ := newTestRouter(t)
	cookies := registerUser(t, r, "Alice", "secret123")

	for _, rating := range []int{0, 6, -1} {
		w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 1, "rating": rating, "text": "x"}, cookies)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("rating %d: status %d, want 400", rating, w.Code)
		}
	}
	for _, rating := range []int{1, 5} {
		w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 1, "rating": rating, "text": "x"}, cookies)
		if w.Code != http.StatusOK {
			t.Fatalf("rating %d: status %d, want 200 (body %s)", rating, w.Code, w.Body.String())
		}
	}
}

func TestCreateReviewUnknownVenue(t *testing.T) {
	r, _ := newTestRouter(t)
	cookies := registerUser(t, r, "Alice", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 999, "rating": 3}, cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"rating": 3}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing venue_id: status %d, want 400", w.Code)
	}
}

func TestCreateReviewEnrichedResponse(t *testing.T) {
	r, _ := newTestRouter(t)
	cookies := registerUser(t, r, "Alice", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 2, "rating": 4, "text": "  solid courts  "}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	review := body["review"].(map[string]any)
	// seed has reviews 1-3, so the first new review gets id 4
	if review["id"].(float64) != 4 {
		t.Fatalf("id = %v, want 4", review["id"])
	}
	if review["username"] != "Alice" || review["venue_name"] != "Riverside Tennis Club" {
		t.Fatalf("enrichment wrong: %v", review)
	}
	if review["text"] != "solid courts" {
		t.Fatalf("text not trimmed: %q", review["text"])
	}
}

func TestUpdateReviewOwnership(t *testing.T) {
	r, _ := newTestRouter(t)
	alice := registerUser(t, r, "Alice", "secret123")
	bob := registerUser(t, r, "Bob", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 1, "rating": 2, "text": "meh"}, alice)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d", w.Code)
	}
	reviewID := int(decodeBody(t, w)["review"].(map[string]any)["id"].(float64))
	path := fmt.Sprintf("/api/reviews/%d", reviewID)

	w = doJSON(t, r, http.MethodPut, path, gin.H{"rating": 5}, bob)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-owner update: status %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, path, gin.H{"rating": 5}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous update: status %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, path, gin.H{"rating": 5}, alice)
	if w.Code != http.StatusOK {
		t.Fatalf("owner update: status %d, body %s", w.Code, w.Body.String())
	}
	review := decodeBody(t, w)["review"].(map[string]any)
	if review["rating"].(float64) != 5 {
		t.Fatalf("rating = %v, want 5", review["rating"])
	}
	if review["text"] != "meh" {
		t.Fatalf("partial update must keep text, got %q", review["text"])
	}
}

func TestUpdateReviewValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	alice := registerUser(t, r, "Alice", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 1, "rating": 3}, alice)
	reviewID := int(decodeBody(t, w)["review"].(map[string]any)["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/reviews/%d", reviewID), gin.H{"rating": 6}, alice)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("rating 6: status %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/reviews/999", gin.H{"rating": 3}, alice)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown review: status %d, want 404", w.Code)
	}
}

func TestDeleteReviewOwnershipAndFeed(t *testing.T) {
	r, _ := newTestRouter(t)
	alice := registerUser(t, r, "Alice", "secret123")
	bob := registerUser(t, r, "Bob", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 1, "rating": 2}, alice)
	reviewID := int(decodeBody(t, w)["review"].(map[string]any)["id"].(float64))
	path := fmt.Sprintf("/api/reviews/%d/delete", reviewID)

	w = doJSON(t, r, http.MethodDelete, path, nil, bob)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-owner delete: status %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, path, nil, alice)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, path, nil, alice)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: status %d, want 404", w.Code)
	}

	// remaining seed reviews keep their ids and stay in the feed
	w = doJSON(t, r, http.MethodGet, "/api/feed", nil, nil)
	feed := decodeBody(t, w)["reviews"].([]any)
	if len(feed) != 3 {
		t.Fatalf("feed length = %d, want 3", len(feed))
	}
	for _, item := range feed {
		id := int(item.(map[string]any)["id"].(float64))
		if id == reviewID {
			t.Fatalf("deleted review %d still in feed", reviewID)
		}
	}
}

func TestVenueStatsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	// seed: venue 1 has reviews rated 5 and 4, venue 2 has one rated 5
	w := doJSON(t, r, http.MethodGet, "/api/venues", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	venues := decodeBody(t, w)["venues"].([]any)
	if len(venues) != 5 {
		t.Fatalf("venue count = %d, want 5", len(venues))
	}
	first := venues[0].(map[string]any)
	if first["review_count"].(float64) != 2 || first["avg_rating"].(float64) != 4.5 {
		t.Fatalf("venue 1 stats wrong: %v", first)
	}

	w = doJSON(t, r, http.MethodGet, "/api/venues/1", nil, nil)
	venue := decodeBody(t, w)["venue"].(map[string]any)
	if venue["avg_rating"].(float64) != 4.5 || venue["review_count"].(float64) != 2 {
		t.Fatalf("venue detail stats wrong: %v", venue)
	}

	w = doJSON(t, r, http.MethodGet, "/api/venues/999", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown venue: status %d, want 404", w.Code)
	}
}

func TestReviewsListFilterAndOrder(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reviews?venue_id=abc", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad venue_id: status %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/reviews?venue_id=1", nil, nil)
	reviews := decodeBody(t, w)["reviews"].([]any)
	if len(reviews) != 2 {
		t.Fatalf("venue 1 reviews = %d, want 2", len(reviews))
	}
	// seed review 2 (Jan 16) is newer than review 1 (Jan 15)
	if int(reviews[0].(map[string]any)["id"].(float64)) != 2 {
		t.Fatalf("expected newest first, got %v", reviews[0])
	}
}

func TestFeedNewestFirst(t *testing.T) {
	r, st := newTestRouter(t)

	doc := st.Load()
	doc.Reviews = []models.Review{
		{ID: 1, UserID: 1, VenueID: 1, Rating: 3, Text: "t1", Timestamp: "2025-03-01T10:00:00Z"},
		{ID: 2, UserID: 1, VenueID: 1, Rating: 4, Text: "t2", Timestamp: "2025-03-03T10:00:00Z"},
		{ID: 3, UserID: 1, VenueID: 2, Rating: 5, Text: "t3", Timestamp: "2025-03-02T10:00:00Z"},
	}
	if err := st.Save(doc); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/feed", nil, nil)
	feed := decodeBody(t, w)["reviews"].([]any)
	wantOrder := []int{2, 3, 1}
	for i, want := range wantOrder {
		got := int(feed[i].(map[string]any)["id"].(float64))
		if got != want {
			t.Fatalf("feed position %d: id %d, want %d", i, got, want)
		}
	}
}

func TestFeedEnrichesDanglingUser(t *testing.T) {
	r, _ := newTestRouter(t)

	// seed reviews reference users 1 and 2, none of whom exist yet
	w := doJSON(t, r, http.MethodGet, "/api/feed", nil, nil)
	feed := decodeBody(t, w)["reviews"].([]any)
	if len(feed) != 3 {
		t.Fatalf("feed length = %d, want 3", len(feed))
	}
	first := feed[0].(map[string]any)
	if first["username"] != "Unknown User" {
		t.Fatalf("username = %v, want Unknown User", first["username"])
	}
	if first["venue_name"] == "" {
		t.Fatalf("venue_name missing: %v", first)
	}
}

func TestUserProfile(t *testing.T) {
	r, _ := newTestRouter(t)
	alice := registerUser(t, r, "Alice", "secret123")

	doJSON(t, r, http.MethodPost, "/api/reviews/create", gin.H{"venue_id": 3, "rating": 4, "text": "nice views"}, alice)

	w := doJSON(t, r, http.MethodGet, "/api/user/1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	if user["username"] != "Alice" {
		t.Fatalf("user = %v", user)
	}
	reviews := body["reviews"].([]any)
	// Alice (id 1) owns seed reviews 1 and 3 plus the new one
	if len(reviews) != 3 {
		t.Fatalf("review count = %d, want 3", len(reviews))
	}
	first := reviews[0].(map[string]any)
	if first["venue_name"] != "Mountain View Golf Course" {
		t.Fatalf("newest review should be the fresh one, got %v", first)
	}
	if _, hasUsername := first["username"]; hasUsername {
		t.Fatalf("profile reviews should not embed username: %v", first)
	}

	w = doJSON(t, r, http.MethodGet, "/api/user/999", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user: status %d, want 404", w.Code)
	}
}
