package collection

import (
	"context"

	"github.com/NovatecConsulting/library-service-go/core"
)

// BookIDGenerator produces collision-free BookIDs by checking each
// candidate against the data store. With a 128 bit random id space a
// collision is practically impossible, but never silently accepted.
type BookIDGenerator struct {
	dataStore BookDataStore
}

// NewBookIDGenerator creates a BookIDGenerator using the given data store
// for uniqueness checks.
func NewBookIDGenerator(dataStore BookDataStore) *BookIDGenerator {
	return &BookIDGenerator{dataStore: dataStore}
}

// Generate returns a new BookID which is not yet used in the data store.
// It retries generation until a free id is found; the only error it can
// return is a failing existence check.
func (g *BookIDGenerator) Generate(ctx context.Context) (core.BookID, error) {
	for {
		id := core.NewBookID()

		exists, err := g.dataStore.ExistsByID(ctx, id)
		if err != nil {
			return core.BookID{}, err
		}

		if !exists {
			return id, nil
		}
	}
}
