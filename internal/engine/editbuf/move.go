package editbuf

import (
	"github.com/dshills/stackedit/internal/engine/store"
	"github.com/dshills/stackedit/internal/engine/word"
)

// MoveForward moves the cursor one character toward the end.
// Returns false at the end of the buffer.
func (b *Buffer) MoveForward() bool {
	return b.shift("move forward", after)
}

// MoveBackward moves the cursor one character toward the start.
// Returns false at the start of the buffer.
func (b *Buffer) MoveBackward() bool {
	return b.shift("move backward", before)
}

// MoveForwardWord moves the cursor past any delimiters and then past the
// following word. Returns the number of characters crossed.
func (b *Buffer) MoveForwardWord() int {
	return b.wordStep(after, b.MoveForward)
}

// MoveBackwardWord moves the cursor back past any delimiters and then past
// the preceding word. Returns the number of characters crossed.
func (b *Buffer) MoveBackwardWord() int {
	return b.wordStep(before, b.MoveBackward)
}

// MoveToStart moves the cursor to the start of the buffer.
// Returns the number of characters crossed.
func (b *Buffer) MoveToStart() int {
	n := 0
	for b.MoveBackward() {
		n++
	}
	return n
}

// MoveToEnd moves the cursor to the end of the buffer.
// Returns the number of characters crossed.
func (b *Buffer) MoveToEnd() int {
	n := 0
	for b.MoveForward() {
		n++
	}
	return n
}

// wordStep applies step while the head of side is a delimiter, then while
// it is a word character. step consumes the head of side.
func (b *Buffer) wordStep(side store.Side, step func() bool) int {
	n := 0
	for _, class := range [...]word.Class{word.Delimiter, word.Word} {
		for {
			ch, ok := b.peek(side)
			if !ok || word.Classify(ch) != class {
				break
			}
			if !step() {
				return n
			}
			n++
		}
	}
	return n
}
