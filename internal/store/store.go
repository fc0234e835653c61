package store

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"backend/internal/models"
)

// Document is the whole persisted state: one JSON object with three
// collections. The document is the unit of persistence; every mutation
// rewrites it in full.
type Document struct {
	Users   []models.User   `json:"users"`
	Venues  []models.Venue  `json:"venues"`
	Reviews []models.Review `json:"reviews"`
}

// Store owns a single JSON document on disk. A process-wide mutex guards
// every physical read and write so concurrent requests never see a torn
// file. The read-modify-write cycle handlers run (Load, mutate, Save) spans
// two lock acquisitions and is intentionally not transactional: two
// concurrent writers can race and the later Save wins.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a store backed by the file at path. No I/O happens until
// the first Load or Save.
func Open(path string) *Store {
	return &Store{path: path}
}

// Load returns the full document. A missing or unreadable file is never an
// error: the store reseeds itself with the initial catalog and returns that.
func (s *Store) Load() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.reseedLocked()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Println("[STORE] [ERROR] document unreadable, reseeding:", err)
		return s.reseedLocked()
	}

	doc.normalize()
	return &doc
}

// Save rewrites the document file in full, replacing prior content.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(doc)
}

func (s *Store) reseedLocked() *Document {
	doc := Seed()
	if err := s.writeLocked(doc); err != nil {
		log.Println("[STORE] [ERROR] seed write failed:", err)
	}
	return doc
}

func (s *Store) writeLocked(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// normalize keeps absent collections as empty arrays so a round-trip never
// turns [] into null.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Venues == nil {
		d.Venues = []models.Venue{}
	}
	if d.Reviews == nil {
		d.Reviews = []models.Review{}
	}
}
