// Package store is the durable record store: records are allocated once,
// addressed by kind and id, and loaded or overwritten inside a transaction.
// A transaction either commits every write or none of them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nft-marketplace/utils"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrRecordExists    = errors.New("record id already claimed")
	ErrReadOnly        = errors.New("write in read-only transaction")
	ErrUnknownBackend  = errors.New("unknown store backend")
	ErrInvalidRecordID = errors.New("invalid record id")
)

// Tx is the view of the store available to one request.
type Tx interface {
	// Allocate reserves a new record of the given kind on behalf of payer and
	// returns its id. The record cannot be loaded until it has been Put.
	Allocate(kind, payer string) (string, error)
	// Claim reserves the caller-chosen id for kind. It fails with
	// ErrRecordExists when the id was allocated or claimed before.
	Claim(kind, id, payer string) error
	Load(kind, id string) ([]byte, error)
	Put(kind, id string, value []byte) error
}

// Store runs functions against the record set atomically.
type Store interface {
	Update(fn func(Tx) error) error
	View(fn func(Tx) error) error
	Close() error
}

// Allocation is the bookkeeping entry written by Allocate.
type Allocation struct {
	Kind        string    `json:"kind"`
	Payer       string    `json:"payer"`
	AllocatedAt time.Time `json:"allocated_at"`
}

// Open returns the store for backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "memory":
		return NewMemoryStore(), nil
	case "bolt", "":
		return NewBoltStore(dir)
	case "leveldb":
		return NewLevelStore(dir)
	default:
		return nil, fmt.Errorf("open store %q: %w", backend, ErrUnknownBackend)
	}
}

func encodeAllocation(kind, payer string) ([]byte, error) {
	raw, err := json.Marshal(Allocation{Kind: kind, Payer: payer, AllocatedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("allocate %s: %w", kind, err)
	}
	return raw, nil
}

func newID() string {
	return utils.GenerateID()
}

func recordKey(kind, id string) []byte {
	return []byte("rec/" + kind + "/" + id)
}

func allocationKey(kind, id string) []byte {
	return []byte("alloc/" + kind + "/" + id)
}

func validID(kind, id string) error {
	if kind == "" || id == "" || strings.Contains(id, "/") {
		return fmt.Errorf("%s %q: %w", kind, id, ErrInvalidRecordID)
	}
	return nil
}
