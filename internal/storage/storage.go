package storage

import (
	"cmp"
	"slices"
	"sync"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

// DocumentStore keeps the latest document produced for each record id.
type DocumentStore struct {
	documents map[string]*holdings.Document
	mu        sync.RWMutex
}

func New() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]*holdings.Document),
	}
}

func (s *DocumentStore) Get(recordID string) (*holdings.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, exists := s.documents[recordID]
	return doc, exists
}

func (s *DocumentStore) Set(doc *holdings.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = doc
}

// GetAll returns every stored document ordered by record id.
func (s *DocumentStore) GetAll() []*holdings.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*holdings.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		result = append(result, doc)
	}
	slices.SortFunc(result, func(a, b *holdings.Document) int { return cmp.Compare(a.ID, b.ID) })
	return result
}

func (s *DocumentStore) Delete(recordID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.documents[recordID]
	delete(s.documents, recordID)
	return exists
}

func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
