package store

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/zero-day-ai/ejbmeta/naming"
)

// ErrNotFound is returned by Get when no record exists for a key.
var ErrNotFound = errors.New("store: record not found")

// Record is the persisted naming state of one bean.
type Record struct {
	Key            string                `json:"key"`
	HashGeneration naming.HashGeneration `json:"hash_generation"`
	Names          map[string]string     `json:"names"`
	AssemblyID     string                `json:"assembly_id"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := *r
	c.Names = maps.Clone(r.Names)
	return &c
}

// Key builds the record key of a bean within a module.
func Key(module, bean string) string {
	return module + "/" + bean
}

// Store persists naming records.
type Store interface {
	// Get returns the record stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Record, error)

	// Put stores rec under rec.Key, replacing any previous record.
	Put(ctx context.Context, rec *Record) error

	// Delete removes the record under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
