package idgen

import "github.com/google/uuid"

// Generator provides session ID generation that can be mocked for testing
type Generator interface {
	// NewID returns a globally-unique opaque identifier
	NewID() string
}

// UUIDGenerator implements Generator using random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUIDv4 string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
