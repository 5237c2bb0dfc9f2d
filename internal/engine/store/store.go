package store

import (
	"fmt"
	"strings"
)

// Capacity limits.
const (
	DefaultCapacity = 16
	MinCapacity     = 16
)

// Store is the two-stack character storage behind an edit buffer.
type Store interface {
	// Push adds ch at the head of side.
	Push(side Side, ch byte)

	// Pop removes and returns the head of side.
	Pop(side Side) (byte, error)

	// Peek returns the head of side without removing it.
	Peek(side Side) (byte, error)

	// PeekAt returns the character depth positions away from the head of
	// side. Depth 0 is the head.
	PeekAt(side Side, depth int) (byte, error)

	// Size returns the number of characters on side.
	Size(side Side) int

	// IsEmpty reports whether side holds no characters.
	IsEmpty(side Side) bool

	// Clear removes every character from side.
	Clear(side Side)

	// Run returns up to n characters starting at the head of side.
	// Characters come in head-to-tail order unless reversed is set.
	// When destructive is set the returned characters are removed.
	Run(side Side, n int, reversed, destructive bool) string

	// Cap returns the number of characters the store can hold before
	// it next grows.
	Cap() int

	// Clone returns a deep copy that shares no memory with the receiver.
	Clone() Store
}

// Kind names a Store implementation.
type Kind string

const (
	KindDualStack Kind = "dualstack"
	KindSplit     Kind = "split"
)

// ParseKind parses a Kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDualStack, "":
		return KindDualStack, nil
	case KindSplit:
		return KindSplit, nil
	default:
		return "", fmt.Errorf("unknown store kind %q", s)
	}
}

// New creates an empty Store of the given kind.
// Unknown kinds fall back to a DualStack.
func New(kind Kind, capacity int) Store {
	if kind == KindSplit {
		return NewSplit(capacity)
	}
	return NewDualStack(capacity)
}

// clampRun bounds a requested run length to [0, size].
func clampRun(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

// reverseBytes reverses b in place.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
