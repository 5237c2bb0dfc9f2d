package editbuf

import (
	"github.com/dshills/stackedit/internal/engine/clipboard"
	"github.com/dshills/stackedit/internal/engine/store"
)

// Sides of the cursor.
const (
	before = store.Left
	after  = store.Right
)

// Buffer is an edit buffer with a single cursor and a single-slot
// clipboard.
type Buffer struct {
	store     store.Store
	clipboard *clipboard.Clipboard

	// Construction-time settings
	capacity    int
	initContent string
}

// New creates a Buffer. Without options it is empty and backed by a
// store.DualStack.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		clipboard: clipboard.New(),
		capacity:  store.DefaultCapacity,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.store == nil {
		b.store = store.NewDualStack(b.capacity)
	}
	if b.initContent != "" {
		b.InsertString(b.initContent)
		b.initContent = ""
	}

	return b
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return b.store.Run(before, b.store.Size(before), true, false) +
		b.store.Run(after, b.store.Size(after), false, false)
}

// Before returns the text before the cursor.
func (b *Buffer) Before() string {
	return b.store.Run(before, b.store.Size(before), true, false)
}

// After returns the text after the cursor.
func (b *Buffer) After() string {
	return b.store.Run(after, b.store.Size(after), false, false)
}

// Cursor returns the cursor position, the number of characters before it.
func (b *Buffer) Cursor() int {
	return b.store.Size(before)
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.store.Size(before) + b.store.Size(after)
}

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Clipboard returns the clipboard contents.
func (b *Buffer) Clipboard() string {
	return b.clipboard.Get()
}

// Clone returns a deep copy of the buffer, its cursor and its clipboard.
func (b *Buffer) Clone() *Buffer {
	cb := clipboard.New()
	cb.Set(b.clipboard.Get())
	return &Buffer{
		store:     b.store.Clone(),
		clipboard: cb,
		capacity:  b.capacity,
	}
}

// pop removes the head of side. The caller has already checked that side
// is non-empty, so a failure is an invariant violation.
func (b *Buffer) pop(op string, side store.Side) byte {
	ch, err := b.store.Pop(side)
	if err != nil {
		store.Violate(op, err, "pop from %s side with size %d", side, b.store.Size(side))
	}
	return ch
}

// peek reads the head of side without removing it.
func (b *Buffer) peek(side store.Side) (byte, bool) {
	ch, err := b.store.Peek(side)
	if err != nil {
		return 0, false
	}
	return ch, true
}

// shift moves the head of from onto the other side.
func (b *Buffer) shift(op string, from store.Side) bool {
	if b.store.IsEmpty(from) {
		return false
	}
	b.store.Push(from.Opposite(), b.pop(op, from))
	return true
}
