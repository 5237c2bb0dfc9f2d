package editbuf

import "github.com/dshills/stackedit/internal/engine/word"

// InsertChar inserts ch before the cursor. The cursor advances by one.
func (b *Buffer) InsertChar(ch byte) {
	b.store.Push(before, ch)
}

// InsertString inserts s before the cursor. The cursor advances by len(s).
func (b *Buffer) InsertString(s string) {
	for i := 0; i < len(s); i++ {
		b.InsertChar(s[i])
	}
}

// DeleteChar deletes the character after the cursor.
// Returns false at the end of the buffer.
func (b *Buffer) DeleteChar() bool {
	if b.store.IsEmpty(after) {
		return false
	}
	b.pop("delete", after)
	return true
}

// DeleteWord deletes any delimiters after the cursor and then the word that
// follows them. Returns the number of characters deleted.
func (b *Buffer) DeleteWord() int {
	return b.wordStep(after, b.DeleteChar)
}

// Copy stores up to n characters after the cursor in the clipboard.
// Returns the number of characters stored.
func (b *Buffer) Copy(n int) int {
	return b.take(n, false)
}

// Cut moves up to n characters after the cursor into the clipboard.
// Returns the number of characters stored.
func (b *Buffer) Cut(n int) int {
	return b.take(n, true)
}

// CopyWords stores the next n words after the cursor in the clipboard.
// Returns the number of characters stored.
func (b *Buffer) CopyWords(n int) int {
	return b.take(b.wordSpan(n), false)
}

// CutWords moves the next n words after the cursor into the clipboard.
// Returns the number of characters stored.
func (b *Buffer) CutWords(n int) int {
	return b.take(b.wordSpan(n), true)
}

// Paste inserts the clipboard contents before the cursor. The clipboard is
// left intact. Returns the number of characters inserted.
func (b *Buffer) Paste() int {
	text := b.clipboard.Get()
	b.InsertString(text)
	return len(text)
}

// take copies a run from the after side into the clipboard.
func (b *Buffer) take(n int, destructive bool) int {
	run := b.store.Run(after, n, false, destructive)
	b.clipboard.Set(run)
	return len(run)
}

// wordSpan counts the characters after the cursor covered by n words.
func (b *Buffer) wordSpan(n int) int {
	return word.Span(func(depth int) (byte, bool) {
		ch, err := b.store.PeekAt(after, depth)
		return ch, err == nil
	}, n)
}
