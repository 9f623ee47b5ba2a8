package document

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pfhealth/vitality-engine/internal/model/document"
)

// Service owns the in-memory document log, same append-only discipline
// as the chat store.
type Service struct {
	mu        sync.RWMutex
	documents []document.Document
}

// NewService bootstraps an empty document store.
func NewService() *Service {
	return &Service{documents: make([]document.Document, 0, 16)}
}

// List returns every stored document in insertion order.
func (s *Service) List(_ context.Context) []document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]document.Document, len(s.documents))
	copy(copied, s.documents)
	return copied
}

// Create appends a document and returns the stored record.
func (s *Service) Create(_ context.Context, title, content string) document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := document.Document{
		ID:        fmt.Sprintf("doc_%d", len(s.documents)+1),
		Title:     title,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	s.documents = append(s.documents, doc)
	return doc
}

// Count reports how many documents have been stored.
func (s *Service) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
