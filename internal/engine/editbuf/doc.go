// Package editbuf provides a cursor-addressed edit buffer.
//
// A Buffer keeps the text on both sides of a cursor in a store.Store, so
// inserts and deletes at the cursor cost O(1) amortized and moving the
// cursor by k characters costs O(k).
//
// Basic usage:
//
//	b := editbuf.New()
//	b.InsertString("Hello World")
//
//	b.MoveToStart()
//	b.MoveForwardWord()  // "Hello| World"
//	b.CutWords(1)        // "Hello|", clipboard " World"
//	b.MoveToStart()
//	b.Paste()            // " World|Hello"
//
//	b.Replace("World/Go") // false: "World" is not after the cursor
//
// Results:
//
// Operations that can fail at a buffer boundary or on a miss (moves,
// deletes, Search, Replace) report it through their return value and leave
// the text and cursor unchanged. A store error on a path the buffer has
// already checked means the structure is corrupt; the buffer panics with a
// *store.InvariantError in that case.
//
// Thread Safety:
//
// A Buffer is owned by one caller. It holds no locks and must not be used
// from multiple goroutines without external synchronization.
package editbuf
