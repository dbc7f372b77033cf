package store

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator allocates task identifiers. Implementations must never return
// the same value twice within a process.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator allocates random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator allocates "1", "2", "3", ... and is safe for concurrent use.
type SequenceGenerator struct {
	next atomic.Uint64
}

// NewSequenceGenerator returns a generator whose first ID is start+1.
func NewSequenceGenerator(start uint64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.next.Store(start)
	return g
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() string {
	return strconv.FormatUint(g.next.Add(1), 10)
}

// NewIDGenerator resolves a configured strategy name ("uuid" or "sequence").
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", "uuid":
		return UUIDGenerator{}, nil
	case "sequence":
		return NewSequenceGenerator(0), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
