package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketRecords     = []byte("records")
	bucketAllocations = []byte("allocations")
)

// BoltStore persists records in a single BoltDB file. Bolt serialises writers,
// so Update calls never interleave.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (and migrates) market.db under dir.
func NewBoltStore(dir string) (*BoltStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := bolt.Open(filepath.Join(dir, "market.db"), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketRecords, bucketAllocations} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Update(fn func(Tx) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(&boltTx{tx: tx})
	})
}

func (s *BoltStore) View(fn func(Tx) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(&boltTx{tx: tx})
	})
}

// Close releases the underlying Bolt database handle.
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type boltTx struct {
	tx *bolt.Tx
}

func (t *boltTx) Allocate(kind, payer string) (string, error) {
	if !t.tx.Writable() {
		return "", ErrReadOnly
	}
	id := newID()
	raw, err := encodeAllocation(kind, payer)
	if err != nil {
		return "", err
	}
	if err := t.tx.Bucket(bucketAllocations).Put(allocationKey(kind, id), raw); err != nil {
		return "", fmt.Errorf("allocate %s: %w", kind, err)
	}
	return id, nil
}

func (t *boltTx) Claim(kind, id, payer string) error {
	if !t.tx.Writable() {
		return ErrReadOnly
	}
	if err := validID(kind, id); err != nil {
		return err
	}
	allocations := t.tx.Bucket(bucketAllocations)
	key := allocationKey(kind, id)
	if allocations.Get(key) != nil {
		return fmt.Errorf("claim %s %s: %w", kind, id, ErrRecordExists)
	}
	raw, err := encodeAllocation(kind, payer)
	if err != nil {
		return err
	}
	return allocations.Put(key, raw)
}

func (t *boltTx) Load(kind, id string) ([]byte, error) {
	if err := validID(kind, id); err != nil {
		return nil, err
	}
	raw := t.tx.Bucket(bucketRecords).Get(recordKey(kind, id))
	if raw == nil {
		return nil, fmt.Errorf("load %s %s: %w", kind, id, ErrRecordNotFound)
	}
	// bolt values are only valid for the life of the transaction
	return append([]byte(nil), raw...), nil
}

func (t *boltTx) Put(kind, id string, value []byte) error {
	if !t.tx.Writable() {
		return ErrReadOnly
	}
	if err := validID(kind, id); err != nil {
		return err
	}
	if t.tx.Bucket(bucketAllocations).Get(allocationKey(kind, id)) == nil {
		return fmt.Errorf("put %s %s: %w", kind, id, ErrRecordNotFound)
	}
	return t.tx.Bucket(bucketRecords).Put(recordKey(kind, id), value)
}
