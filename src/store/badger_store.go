package store

import (
	"github.com/dgraph-io/badger"
	"github.com/mosaicnetworks/digest/src/common"
	"github.com/mosaicnetworks/digest/src/crypto"
	"github.com/sirupsen/logrus"
)

const entryPrefix = "entry_"

// BadgerStore persists entries in a Badger database and keeps the most recently
// used ones in an InmemStore.
type BadgerStore struct {
	inmemStore *InmemStore
	db         *badger.DB
	path       string
	logger     *logrus.Entry
}

// NewBadgerStore opens an existing database or creates a new one if nothing is
// found in path.
func NewBadgerStore(cacheSize int, path string, logger *logrus.Entry) (*BadgerStore, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	inmemStore, err := NewInmemStore(cacheSize)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(path).
		WithSyncWrites(false).
		WithTruncate(true).
		WithLogger(logger.WithField("ns", "badger"))

	handle, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	store := &BadgerStore{
		inmemStore: inmemStore,
		db:         handle,
		path:       path,
		logger:     logger,
	}
	return store, nil
}

/*******************************************************************************
Keys
*******************************************************************************/

func entryKey(digest common.Hash32) []byte {
	return []byte(entryPrefix + digest.Hex())
}

/*******************************************************************************
Implement the Store interface
*******************************************************************************/

// Put implements the Store interface. Content that is already present is not
// written again.
func (s *BadgerStore) Put(data []byte) (common.Hash32, error) {
	digest := crypto.Compute(data)

	if s.inmemStore.cache.Contains(digest) {
		return digest, nil
	}

	if err := s.dbSetEntry(NewEntry(digest, data)); err != nil {
		return digest, err
	}

	s.inmemStore.add(digest, data)

	s.logger.WithFields(logrus.Fields{
		"digest": digest.Hex(),
		"size":   len(data),
	}).Debug("Put")

	return digest, nil
}

// Get implements the Store interface. Entries loaded from the database are
// verified against their digest.
func (s *BadgerStore) Get(digest common.Hash32) ([]byte, error) {
	//try to get it from cache
	data, err := s.inmemStore.Get(digest)
	if err == nil {
		return data, nil
	}

	//if not in cache, try to get it from db
	entry, err := s.dbGetEntry(digest)
	if err != nil {
		return nil, mapError(err, "Entry", digest.Hex())
	}

	if entry.Digest != digest || !crypto.Verify(entry.Data, digest) {
		s.logger.WithField("digest", digest.Hex()).Error("Corrupted entry")
		return nil, common.NewErr("Entry", common.Corrupted, digest.Hex())
	}

	s.inmemStore.add(digest, entry.Data)

	return entry.Data, nil
}

// Has implements the Store interface.
func (s *BadgerStore) Has(digest common.Hash32) (bool, error) {
	if s.inmemStore.cache.Contains(digest) {
		return true, nil
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(entryKey(digest))
		return err
	})
	if isDBKeyNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Len implements the Store interface. It counts the entries in the database.
func (s *BadgerStore) Len() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(entryPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Close implements the Store interface.
func (s *BadgerStore) Close() error {
	if err := s.inmemStore.Close(); err != nil {
		return err
	}
	return s.db.Close()
}

// StorePath returns the path of the database directory.
func (s *BadgerStore) StorePath() string {
	return s.path
}

/*******************************************************************************
DB Methods
*******************************************************************************/

func (s *BadgerStore) dbGetEntry(digest common.Hash32) (*Entry, error) {
	var entryBytes []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(digest))
		if err != nil {
			return err
		}
		entryBytes, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, err
	}

	entry := new(Entry)
	if err := entry.Unmarshal(entryBytes); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *BadgerStore) dbSetEntry(entry *Entry) error {
	tx := s.db.NewTransaction(true)
	defer tx.Discard()

	key := entryKey(entry.Digest)

	//check if it already exists
	_, err := tx.Get(key)
	if err == nil {
		return nil
	}
	if !isDBKeyNotFound(err) {
		return err
	}

	val, err := entry.Marshal()
	if err != nil {
		return err
	}

	//insert [entry_digest] => [entry bytes]
	if err := tx.Set(key, val); err != nil {
		return err
	}

	return tx.Commit()
}

func isDBKeyNotFound(err error) bool {
	return err == badger.ErrKeyNotFound
}

func mapError(err error, name, key string) error {
	if err != nil {
		if isDBKeyNotFound(err) {
			return common.NewErr(name, common.KeyNotFound, key)
		}
	}
	return err
}
