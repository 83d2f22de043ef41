package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// S is the process-wide memoization store. It stays nil until Initialize is
// called; callers fall back to direct computation when it is.
var S *ristretto_store.RistrettoStore

func NewStore() (*ristretto_store.RistrettoStore, error) {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return ristretto_store.NewRistretto(client), nil
}

func Initialize() error {
	store, err := NewStore()
	if err != nil {
		return err
	}
	S = store
	return nil
}
