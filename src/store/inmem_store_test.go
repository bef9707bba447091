package store

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/mosaicnetworks/digest/src/common"
	"github.com/mosaicnetworks/digest/src/crypto"
)

func TestInmemStorePutGet(t *testing.T) {
	store, err := NewInmemStore(10)
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("abc")
	digest, err := store.Put(data)
	if err != nil {
		t.Fatal(err)
	}
	if digest != crypto.Compute(data) {
		t.Fatalf("Put returned %s, want %s", digest, crypto.Compute(data))
	}

	// the store keeps its own copy
	data[0] = 'x'

	res, err := store.Get(digest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res, []byte("abc")) {
		t.Fatalf("Get returned %q, want abc", res)
	}

	has, _ := store.Has(digest)
	if !has {
		t.Fatalf("Has(%s) should be true", digest)
	}

	if _, err := store.Get(crypto.ComputeString("missing")); !common.Is(err, common.KeyNotFound) {
		t.Fatalf("expected KeyNotFound, got %v", err)
	}
}

func TestInmemStoreEmpty(t *testing.T) {
	store, _ := NewInmemStore(10)

	digest, err := store.Put(nil)
	if err != nil {
		t.Fatal(err)
	}
	if digest != crypto.EmptyStringDigest {
		t.Fatalf("Put(nil) = %s, want EmptyStringDigest", digest)
	}
	res, err := store.Get(crypto.EmptyStringDigest)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Fatalf("expected empty blob, got %v", res)
	}
}

func TestInmemStoreDuplicate(t *testing.T) {
	store, _ := NewInmemStore(10)

	d1, _ := store.Put([]byte("same"))
	d2, _ := store.Put([]byte("same"))
	if d1 != d2 {
		t.Fatalf("same content produced %s and %s", d1, d2)
	}
	if l, _ := store.Len(); l != 1 {
		t.Fatalf("Len = %d, want 1", l)
	}
}

func TestInmemStoreEviction(t *testing.T) {
	cacheSize := 3
	store, _ := NewInmemStore(cacheSize)

	digests := []common.Hash32{}
	for i := 0; i < 5; i++ {
		d, _ := store.Put([]byte(fmt.Sprintf("blob %d", i)))
		digests = append(digests, d)
	}

	if l, _ := store.Len(); l != cacheSize {
		t.Fatalf("Len = %d, want %d", l, cacheSize)
	}
	for i, d := range digests {
		has, _ := store.Has(d)
		if has != (i >= 2) {
			t.Errorf("Has(blob %d) = %v", i, has)
		}
	}
}

func TestInmemStoreBadSize(t *testing.T) {
	if _, err := NewInmemStore(0); err == nil {
		t.Fatalf("NewInmemStore(0) should fail")
	}
}

func TestInmemStoreConcurrent(t *testing.T) {
	store, _ := NewInmemStore(1000)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data := []byte(fmt.Sprintf("blob %d", i))
			d, err := store.Put(data)
			if err != nil {
				t.Error(err)
				return
			}
			res, err := store.Get(d)
			if err != nil {
				t.Error(err)
				return
			}
			if !bytes.Equal(res, data) {
				t.Errorf("Get(%s) = %q, want %q", d, res, data)
			}
		}(i)
	}
	wg.Wait()

	if l, _ := store.Len(); l != 20 {
		t.Fatalf("Len = %d, want 20", l)
	}
}
