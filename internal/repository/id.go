package repository

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces unique entity IDs
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues UUIDv7 strings, which sort in creation order
type UUIDGenerator struct{}

// NextID returns a new time-ordered UUID
func (UUIDGenerator) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}

// SequenceGenerator issues decimal IDs counting up from a start value
type SequenceGenerator struct {
	mu   sync.Mutex
	next int64
}

// NewSequenceGenerator creates a generator whose first ID is start
func NewSequenceGenerator(start int64) *SequenceGenerator {
	return &SequenceGenerator{next: start}
}

// NextID returns the next number in the sequence
func (g *SequenceGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := strconv.FormatInt(g.next, 10)
	g.next++
	return id
}
