// Package localstore is the file-backed demo persistence layer: project
// media galleries and contact-form submissions that never reach the real
// backend. All mutations are serialized behind a single writer lock and the
// whole mapping is persisted under that lock, so concurrent writers cannot
// interleave a read-modify-write.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ahqjohn/portfolio-backend/errs"
)

// MediaItem is one gallery entry for a project.
type MediaItem struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Caption     string `json:"caption,omitempty"`
	OriginalURL string `json:"originalUrl,omitempty"`
}

// DemoSubmission is a contact-form submission captured by the demo path.
type DemoSubmission struct {
	Fields    map[string]string `json:"fields"`
	Timestamp time.Time         `json:"timestamp"`
}

type storeData struct {
	ProjectMedia       map[string][]MediaItem `json:"projectMedia"`
	ContactSubmissions []DemoSubmission       `json:"contactSubmissions"`
}

// Store is a single-writer JSON key-value store.
type Store struct {
	path string

	mu   sync.Mutex
	data storeData
}

// Open loads the store from path. A missing file starts empty; a malformed
// file is an error rather than silently resetting stored data.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: storeData{ProjectMedia: make(map[string][]MediaItem)},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading local store: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parsing local store %s: %w", path, err)
	}
	if s.data.ProjectMedia == nil {
		s.data.ProjectMedia = make(map[string][]MediaItem)
	}
	return s, nil
}

// persist writes the whole mapping back to disk. Callers must hold mu.
func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// AppendMedia adds an item under the project key.
func (s *Store) AppendMedia(projectID string, item MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ProjectMedia[projectID] = append(s.data.ProjectMedia[projectID], item)
	return s.persist()
}

// RemoveMedia deletes the item at the positional index of a project gallery.
// Surviving items keep their order apart from the shift caused by removing
// the target.
func (s *Store) RemoveMedia(projectID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.data.ProjectMedia[projectID]
	if index < 0 || index >= len(items) {
		return errs.NewBadRequestError(fmt.Sprintf("no media at index %d for project %s", index, projectID))
	}

	s.data.ProjectMedia[projectID] = append(items[:index], items[index+1:]...)
	return s.persist()
}

// MediaFor returns a copy of the gallery for one project.
func (s *Store) MediaFor(projectID string) []MediaItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.data.ProjectMedia[projectID]
	out := make([]MediaItem, len(items))
	copy(out, items)
	return out
}

// AllMedia returns a copy of the whole gallery mapping.
func (s *Store) AllMedia() map[string][]MediaItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]MediaItem, len(s.data.ProjectMedia))
	for projectID, items := range s.data.ProjectMedia {
		copied := make([]MediaItem, len(items))
		copy(copied, items)
		out[projectID] = copied
	}
	return out
}

// AppendContact records a demo contact submission with the current time.
func (s *Store) AppendContact(fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ContactSubmissions = append(s.data.ContactSubmissions, DemoSubmission{
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	})
	return s.persist()
}

// Contacts returns a copy of the recorded demo submissions.
func (s *Store) Contacts() []DemoSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DemoSubmission, len(s.data.ContactSubmissions))
	copy(out, s.data.ContactSubmissions)
	return out
}
