package mocks

import (
	"fmt"

	"github.com/gungle/gungle/internal/dependencies/idgen"
)

// MockIDGenerator is a mock implementation of Generator for testing
type MockIDGenerator struct {
	// IDs is a queue of results to return from NewID
	IDs   []string
	index int

	// calls counts NewID invocations, used for fallback IDs
	calls int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewID returns the next queued ID, or a sequential fallback if none remain
func (g *MockIDGenerator) NewID() string {
	g.calls++
	if g.index >= len(g.IDs) {
		return fmt.Sprintf("mock-session-%d", g.calls)
	}
	id := g.IDs[g.index]
	g.index++
	return id
}

// QueueIDs adds values to the ID result queue
func (g *MockIDGenerator) QueueIDs(ids ...string) {
	g.IDs = append(g.IDs, ids...)
}
