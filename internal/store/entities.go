package store

import (
	"strings"

	"backend/internal/models"
)

// NextUserID returns 1 for an empty collection, otherwise 1 + the highest
// existing id. Ids are never reused after deletion.
func (d *Document) NextUserID() int {
	max := 0
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func (d *Document) NextReviewID() int {
	max := 0
	for _, r := range d.Reviews {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// UserByID returns a pointer into the document, or nil if absent.
func (d *Document) UserByID(id int) *models.User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) VenueByID(id int) *models.Venue {
	for i := range d.Venues {
		if d.Venues[i].ID == id {
			return &d.Venues[i]
		}
	}
	return nil
}

func (d *Document) ReviewByID(id int) *models.Review {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			return &d.Reviews[i]
		}
	}
	return nil
}

// UserByUsername matches case-insensitively; stored case is preserved.
func (d *Document) UserByUsername(username string) *models.User {
	for i := range d.Users {
		if strings.EqualFold(d.Users[i].Username, username) {
			return &d.Users[i]
		}
	}
	return nil
}

// DeleteReview removes the review with the given id and reports whether it
// was present. Other reviews keep their ids.
func (d *Document) DeleteReview(id int) bool {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			d.Reviews = append(d.Reviews[:i], d.Reviews[i+1:]...)
			return true
		}
	}
	return false
}
