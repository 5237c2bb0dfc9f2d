// Package store provides the character storage behind an edit buffer.
//
// A Store holds two stacks of single-byte characters, one on each side of a
// logical cursor. The Left stack holds the text before the cursor and the
// Right stack holds the text after it. Each stack has a head (the character
// nearest the cursor) and a tail (the character at a buffer end).
//
// Two implementations are provided:
//
//   - DualStack: both stacks share one resizable array. Left grows from the
//     low end, Right grows from the high end toward the middle, and the array
//     doubles when they meet. This is the default.
//   - Split: two independent growable slices. Simpler, at the cost of each
//     side carrying its own spare capacity.
//
// Basic usage:
//
//	s := store.NewDualStack(store.DefaultCapacity)
//	s.Push(store.Left, 'a')
//	s.Push(store.Right, 'c')
//	s.Push(store.Left, 'b')
//
//	s.Run(store.Left, s.Size(store.Left), true, false)   // "ab"
//	s.Run(store.Right, s.Size(store.Right), false, false) // "c"
//
// Errors:
//
// Pop, Peek and PeekAt return ErrEmptyStore when the requested character does
// not exist. A computed array index outside the backing array means the
// structure is already corrupt; that is reported by panicking with an
// *InvariantError and is never recovered.
//
// Stores are not safe for concurrent use.
package store
