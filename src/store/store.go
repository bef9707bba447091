package store

import (
	"bytes"

	"github.com/mosaicnetworks/digest/src/common"
	"github.com/ugorji/go/codec"
)

// Store is a digest-addressed blob store.
type Store interface {
	Put([]byte) (common.Hash32, error)
	Get(common.Hash32) ([]byte, error)
	Has(common.Hash32) (bool, error)
	Len() (int, error)
	Close() error
}

// Entry is the record persisted for each blob.
type Entry struct {
	Digest common.Hash32
	Size   int
	Data   []byte
}

// NewEntry ...
func NewEntry(digest common.Hash32, data []byte) *Entry {
	return &Entry{
		Digest: digest,
		Size:   len(data),
		Data:   data,
	}
}

// Marshal - json encoding of Entry
func (e *Entry) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(b, jh)

	if err := enc.Encode(e); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal ...
func (e *Entry) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(b, jh)

	if err := dec.Decode(e); err != nil {
		return err
	}

	return nil
}
