package editbuf

import "strings"

// Search looks for the first occurrence of s after the cursor. On a match
// the cursor moves to just past it and Search returns true. On a miss
// nothing changes. An empty s matches immediately without moving.
func (b *Buffer) Search(s string) bool {
	idx := strings.Index(b.After(), s)
	if idx < 0 {
		return false
	}
	for i := 0; i < idx+len(s); i++ {
		b.MoveForward()
	}
	return true
}

// Replace takes a pattern of the form OLD/NEW, split at the first slash,
// and replaces the first OLD after the cursor with NEW. The cursor ends up
// just past NEW. Returns false without changing anything when the pattern
// has no slash, OLD or NEW is empty, or OLD is not found.
func (b *Buffer) Replace(pattern string) bool {
	old, repl, ok := splitPattern(pattern)
	if !ok {
		return false
	}
	if !b.Search(old) {
		return false
	}
	for i := 0; i < len(old); i++ {
		b.MoveBackward()
		b.DeleteChar()
	}
	b.InsertString(repl)
	return true
}

// splitPattern splits an OLD/NEW replace pattern.
func splitPattern(pattern string) (old, repl string, ok bool) {
	old, repl, found := strings.Cut(pattern, "/")
	if !found || old == "" || repl == "" {
		return "", "", false
	}
	return old, repl, true
}
