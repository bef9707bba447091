package store

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/dgraph-io/badger"
	"github.com/mosaicnetworks/digest/src/common"
	"github.com/mosaicnetworks/digest/src/crypto"
)

func initBadgerStore(cacheSize int, t *testing.T) *BadgerStore {
	dir, err := ioutil.TempDir("", "badger")
	if err != nil {
		t.Fatal(err)
	}

	store, err := NewBadgerStore(cacheSize, dir, common.NewTestEntry(t, common.TestLogLevel))
	if err != nil {
		t.Fatal(err)
	}

	return store
}

func removeBadgerStore(store *BadgerStore, t *testing.T) {
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(store.path); err != nil {
		t.Fatal(err)
	}
}

func TestBadgerStorePutGet(t *testing.T) {
	store := initBadgerStore(10, t)
	defer removeBadgerStore(store, t)

	blobs := [][]byte{
		[]byte("abc"),
		{0xc0},
		{0x80},
		bytes.Repeat([]byte{0xaa}, 4096),
	}

	for _, b := range blobs {
		d, err := store.Put(b)
		if err != nil {
			t.Fatal(err)
		}
		if d != crypto.Compute(b) {
			t.Fatalf("Put returned %s, want %s", d, crypto.Compute(b))
		}
	}

	for _, b := range blobs {
		res, err := store.Get(crypto.Compute(b))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(res, b) {
			t.Fatalf("Get returned %x, want %x", res, b)
		}
	}

	if _, err := store.Get(crypto.ComputeString("missing")); !common.Is(err, common.KeyNotFound) {
		t.Fatalf("expected KeyNotFound, got %v", err)
	}

	if l, err := store.Len(); err != nil || l != len(blobs) {
		t.Fatalf("Len = %d, %v, want %d", l, err, len(blobs))
	}
}

func TestBadgerStoreBypassCache(t *testing.T) {
	cacheSize := 2
	store := initBadgerStore(cacheSize, t)
	defer removeBadgerStore(store, t)

	digests := []common.Hash32{}
	for i := 0; i < 5; i++ {
		d, err := store.Put([]byte(fmt.Sprintf("blob %d", i)))
		if err != nil {
			t.Fatal(err)
		}
		digests = append(digests, d)
	}

	// the first blobs were evicted from the cache but remain in the db
	for i, d := range digests {
		has, err := store.Has(d)
		if err != nil {
			t.Fatal(err)
		}
		if !has {
			t.Fatalf("Has(blob %d) should be true", i)
		}

		res, err := store.Get(d)
		if err != nil {
			t.Fatal(err)
		}
		if string(res) != fmt.Sprintf("blob %d", i) {
			t.Fatalf("Get(blob %d) returned %q", i, res)
		}
	}

	if l, _ := store.Len(); l != 5 {
		t.Fatalf("Len = %d, want 5", l)
	}
}

func TestBadgerStorePersistence(t *testing.T) {
	dir, err := ioutil.TempDir("", "badger")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	logger := common.NewTestEntry(t, common.TestLogLevel)

	store, err := NewBadgerStore(10, dir, logger)
	if err != nil {
		t.Fatal(err)
	}
	d, err := store.Put([]byte("persistent"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store, err = NewBadgerStore(10, dir, logger)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	res, err := store.Get(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(res) != "persistent" {
		t.Fatalf("Get returned %q, want persistent", res)
	}
}

func TestBadgerStoreCorrupted(t *testing.T) {
	store := initBadgerStore(10, t)
	defer removeBadgerStore(store, t)

	digest := crypto.ComputeString("original")

	// write tampered content under the digest of other content
	val, err := NewEntry(digest, []byte("tampered")).Marshal()
	if err != nil {
		t.Fatal(err)
	}
	err = store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(digest), val)
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(digest); !common.Is(err, common.Corrupted) {
		t.Fatalf("expected Corrupted, got %v", err)
	}
}

func TestEntryMarshal(t *testing.T) {
	data := []byte{0x00, 0xc0, 0xff}
	entry := NewEntry(crypto.Compute(data), data)

	raw, err := entry.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	res := new(Entry)
	if err := res.Unmarshal(raw); err != nil {
		t.Fatal(err)
	}
	if res.Digest != entry.Digest || res.Size != 3 || !bytes.Equal(res.Data, data) {
		t.Fatalf("Unmarshal returned %+v, want %+v", res, entry)
	}
}
