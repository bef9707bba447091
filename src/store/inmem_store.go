package store

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/mosaicnetworks/digest/src/common"
	"github.com/mosaicnetworks/digest/src/crypto"
)

// InmemStore implements the Store interface with an inmemory LRU cache. When
// the cache is full, the least recently used entries are evicted, so InmemStore
// on its own only remembers the last cacheSize blobs.
type InmemStore struct {
	cacheSize int
	cache     *lru.Cache //digest => []byte
}

// NewInmemStore creates a new InmemStore holding at most cacheSize entries.
// cacheSize must be positive.
func NewInmemStore(cacheSize int) (*InmemStore, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &InmemStore{
		cacheSize: cacheSize,
		cache:     cache,
	}, nil
}

// CacheSize returns the size limit of the cache.
func (s *InmemStore) CacheSize() int {
	return s.cacheSize
}

// Put implements the Store interface.
func (s *InmemStore) Put(data []byte) (common.Hash32, error) {
	digest := crypto.Compute(data)
	s.add(digest, data)
	return digest, nil
}

// add caches a copy of data under a digest the caller already computed.
func (s *InmemStore) add(digest common.Hash32, data []byte) {
	if s.cache.Contains(digest) {
		return
	}
	s.cache.Add(digest, append([]byte{}, data...))
}

// Get implements the Store interface.
func (s *InmemStore) Get(digest common.Hash32) ([]byte, error) {
	res, ok := s.cache.Get(digest)
	if !ok {
		return nil, common.NewErr("Entry", common.KeyNotFound, digest.Hex())
	}
	return append([]byte{}, res.([]byte)...), nil
}

// Has implements the Store interface.
func (s *InmemStore) Has(digest common.Hash32) (bool, error) {
	return s.cache.Contains(digest), nil
}

// Len implements the Store interface.
func (s *InmemStore) Len() (int, error) {
	return s.cache.Len(), nil
}

// Close implements the Store interface.
func (s *InmemStore) Close() error {
	s.cache.Purge()
	return nil
}
