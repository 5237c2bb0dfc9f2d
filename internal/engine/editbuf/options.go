package editbuf

import "github.com/dshills/stackedit/internal/engine/store"

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithStore sets the character store. The buffer takes ownership of s,
// including any text it already holds.
func WithStore(s store.Store) Option {
	return func(b *Buffer) {
		if s != nil {
			b.store = s
		}
	}
}

// WithCapacity sets the initial capacity of the default store.
// Ignored when WithStore is also given.
func WithCapacity(capacity int) Option {
	return func(b *Buffer) {
		if capacity > 0 {
			b.capacity = capacity
		}
	}
}

// WithContent sets the initial text. The cursor starts at its end.
func WithContent(content string) Option {
	return func(b *Buffer) {
		b.initContent = content
	}
}
