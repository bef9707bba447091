// Package store implements a digest-addressed blob store.
//
// Content is keyed by its SHA-256 digest, so the key of a blob is a function of
// the blob itself and putting the same content twice is a no-op. Two
// implementations are provided: InmemStore, a bounded LRU cache, and
// BadgerStore, which persists entries in a Badger database and keeps an
// InmemStore in front of it. Entries read back from the database are
// re-hashed and rejected with a Corrupted error if they no longer match their
// digest.
package store
