package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LevelStore persists records in LevelDB. Update runs inside a LevelDB
// transaction, which blocks other writers until it is committed or discarded.
type LevelStore struct {
	db *leveldb.DB
}

// NewLevelStore creates or opens a LevelDB database at dir.
func NewLevelStore(dir string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

func (s *LevelStore) Update(fn func(Tx) error) error {
	tr, err := s.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("open transaction: %w", err)
	}
	// Discard is a no-op after Commit; it releases the write lock when fn
	// fails or panics.
	defer tr.Discard()

	if err := fn(&levelTx{get: tr.Get, put: tr.Put}); err != nil {
		return err
	}
	return tr.Commit()
}

func (s *LevelStore) View(fn func(Tx) error) error {
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer snap.Release()
	return fn(&levelTx{get: snap.Get})
}

// Close closes the database connection.
func (s *LevelStore) Close() error {
	return s.db.Close()
}

type levelTx struct {
	get func(key []byte, ro *opt.ReadOptions) ([]byte, error)
	put func(key, value []byte, wo *opt.WriteOptions) error
}

func (t *levelTx) has(key []byte) (bool, error) {
	_, err := t.get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (t *levelTx) Allocate(kind, payer string) (string, error) {
	if t.put == nil {
		return "", ErrReadOnly
	}
	id := newID()
	raw, err := encodeAllocation(kind, payer)
	if err != nil {
		return "", err
	}
	if err := t.put(allocationKey(kind, id), raw, nil); err != nil {
		return "", fmt.Errorf("allocate %s: %w", kind, err)
	}
	return id, nil
}

func (t *levelTx) Claim(kind, id, payer string) error {
	if t.put == nil {
		return ErrReadOnly
	}
	if err := validID(kind, id); err != nil {
		return err
	}
	key := allocationKey(kind, id)
	ok, err := t.has(key)
	if err != nil {
		return fmt.Errorf("claim %s %s: %w", kind, id, err)
	}
	if ok {
		return fmt.Errorf("claim %s %s: %w", kind, id, ErrRecordExists)
	}
	raw, err := encodeAllocation(kind, payer)
	if err != nil {
		return err
	}
	return t.put(key, raw, nil)
}

func (t *levelTx) Load(kind, id string) ([]byte, error) {
	if err := validID(kind, id); err != nil {
		return nil, err
	}
	raw, err := t.get(recordKey(kind, id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("load %s %s: %w", kind, id, ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", kind, id, err)
	}
	return raw, nil
}

func (t *levelTx) Put(kind, id string, value []byte) error {
	if t.put == nil {
		return ErrReadOnly
	}
	if err := validID(kind, id); err != nil {
		return err
	}
	ok, err := t.has(allocationKey(kind, id))
	if err != nil {
		return fmt.Errorf("put %s %s: %w", kind, id, err)
	}
	if !ok {
		return fmt.Errorf("put %s %s: %w", kind, id, ErrRecordNotFound)
	}
	return t.put(recordKey(kind, id), value, nil)
}
