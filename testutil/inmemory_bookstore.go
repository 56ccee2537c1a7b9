package testutil

import (
	"context"
	"sync"

	"github.com/NovatecConsulting/library-service-go/core"
)

// InMemoryBookDataStore is a BookDataStore backed by a keyed map, safe for
// concurrent use. Single operations can be made to fail by setting the
// corresponding *Err field, to test failure propagation.
type InMemoryBookDataStore struct {
	mu      sync.RWMutex
	records map[string]core.BookRecord

	CreateOrUpdateErr error
	ExistsByIDErr     error
	FindByIDErr       error
	FindAllErr        error
	DeleteErr         error
}

// NewInMemoryBookDataStore creates an empty in-memory store.
func NewInMemoryBookDataStore() *InMemoryBookDataStore {
	return &InMemoryBookDataStore{
		records: make(map[string]core.BookRecord),
	}
}

// CreateOrUpdate stores the record under its BookID, overwriting any
// existing entry, and returns the stored value.
func (s *InMemoryBookDataStore) CreateOrUpdate(_ context.Context, record core.BookRecord) (core.BookRecord, error) {
	if s.CreateOrUpdateErr != nil {
		return core.BookRecord{}, s.CreateOrUpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.ID.String()] = record

	return record, nil
}

// ExistsByID reports whether a record is stored under the given BookID.
func (s *InMemoryBookDataStore) ExistsByID(_ context.Context, id core.BookID) (bool, error) {
	if s.ExistsByIDErr != nil {
		return false, s.ExistsByIDErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.records[id.String()]

	return exists, nil
}

// FindByID returns the record stored under the given BookID, or nil.
func (s *InMemoryBookDataStore) FindByID(_ context.Context, id core.BookID) (*core.BookRecord, error) {
	if s.FindByIDErr != nil {
		return nil, s.FindByIDErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[id.String()]
	if !exists {
		return nil, nil
	}

	return &record, nil
}

// FindAll returns all stored records in map iteration order.
func (s *InMemoryBookDataStore) FindAll(_ context.Context) ([]core.BookRecord, error) {
	if s.FindAllErr != nil {
		return nil, s.FindAllErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]core.BookRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}

	return records, nil
}

// Delete removes the record stored under the given record's BookID.
func (s *InMemoryBookDataStore) Delete(_ context.Context, record core.BookRecord) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, record.ID.String())

	return nil
}
