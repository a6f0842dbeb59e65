package store

import (
	"fmt"
	"sync"
)

// MemoryStore is a concurrency-safe in-memory Store. Writes made inside Update
// are staged and applied only when the function returns nil.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte // key: encoded record or allocation key -> value
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (m *MemoryStore) Update(fn func(Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{base: m.data, writes: make(map[string][]byte), writable: true}
	if err := fn(tx); err != nil {
		return err
	}
	for k, v := range tx.writes {
		m.data[k] = v
	}
	return nil
}

func (m *MemoryStore) View(fn func(Tx) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(&memTx{base: m.data})
}

// Close satisfies the Store interface; there is nothing to release.
func (m *MemoryStore) Close() error {
	return nil
}

type memTx struct {
	base     map[string][]byte
	writes   map[string][]byte
	writable bool
}

func (t *memTx) get(key []byte) ([]byte, bool) {
	if v, ok := t.writes[string(key)]; ok {
		return v, true
	}
	v, ok := t.base[string(key)]
	return v, ok
}

func (t *memTx) Allocate(kind, payer string) (string, error) {
	if !t.writable {
		return "", ErrReadOnly
	}
	id := newID()
	raw, err := encodeAllocation(kind, payer)
	if err != nil {
		return "", err
	}
	t.writes[string(allocationKey(kind, id))] = raw
	return id, nil
}

func (t *memTx) Claim(kind, id, payer string) error {
	if !t.writable {
		return ErrReadOnly
	}
	if err := validID(kind, id); err != nil {
		return err
	}
	key := allocationKey(kind, id)
	if _, ok := t.get(key); ok {
		return fmt.Errorf("claim %s %s: %w", kind, id, ErrRecordExists)
	}
	raw, err := encodeAllocation(kind, payer)
	if err != nil {
		return err
	}
	t.writes[string(key)] = raw
	return nil
}

func (t *memTx) Load(kind, id string) ([]byte, error) {
	if err := validID(kind, id); err != nil {
		return nil, err
	}
	v, ok := t.get(recordKey(kind, id))
	if !ok {
		return nil, fmt.Errorf("load %s %s: %w", kind, id, ErrRecordNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (t *memTx) Put(kind, id string, value []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	if err := validID(kind, id); err != nil {
		return err
	}
	if _, ok := t.get(allocationKey(kind, id)); !ok {
		return fmt.Errorf("put %s %s: %w", kind, id, ErrRecordNotFound)
	}
	t.writes[string(recordKey(kind, id))] = append([]byte(nil), value...)
	return nil
}
