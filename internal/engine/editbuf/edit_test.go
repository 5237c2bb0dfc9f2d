package editbuf

import (
	"testing"

	"github.com/dshills/stackedit/internal/engine/store"
)

func TestDeleteWord(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		cursor   int
		wantText string
		wantN    int
	}{
		{"word then space", "hello world", 0, " world", 5},
		{"leading space", "hello world", 5, "hello", 6},
		{"partial word", "HELLO", 2, "HE", 3},
		{"at end", "abc", 3, "abc", 0},
		{"delimiters only", "ab   ", 2, "ab", 3},
		{"punctuation kept with word", "x, y", 0, " y", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachKind(t, func(t *testing.T, kind store.Kind) {
				b := newBufferAt(t, kind, tt.text, tt.cursor)
				if n := b.DeleteWord(); n != tt.wantN {
					t.Errorf("expected %d deleted, got %d", tt.wantN, n)
				}
				expectState(t, b, tt.wantText, tt.cursor)
			})
		})
	}
}

func TestCopyLeavesBufferUnchanged(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		b := newBufferAt(t, kind, "copy me please", 5)
		if n := b.Copy(2); n != 2 {
			t.Errorf("expected 2 copied, got %d", n)
		}
		expectState(t, b, "copy me please", 5)
		if b.Clipboard() != "me" {
			t.Errorf("expected clipboard %q, got %q", "me", b.Clipboard())
		}

		if n := b.Paste(); n != 2 {
			t.Errorf("expected 2 pasted, got %d", n)
		}
		expectState(t, b, "copy meme please", 7)
	})
}

func TestCopyClampsToAfterSide(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		b := newBufferAt(t, kind, "abcdef", 4)
		if n := b.Copy(100); n != 2 {
			t.Errorf("expected 2 copied, got %d", n)
		}
		before := b.Len()
		b.Paste()
		if b.Len() != before+2 {
			t.Errorf("paste grew buffer by %d, want 2", b.Len()-before)
		}
		expectState(t, b, "abcdefef", 6)

		if n := b.Copy(-3); n != 0 {
			t.Errorf("negative copy stored %d characters", n)
		}
		if b.Clipboard() != "" {
			t.Errorf("expected empty clipboard, got %q", b.Clipboard())
		}
	})
}

func TestCutPasteRestores(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		text := "cut and paste"
		for cursor := 0; cursor <= len(text); cursor++ {
			for n := 0; n <= 5; n++ {
				b := newBufferAt(t, kind, text, cursor)
				k := b.Cut(n)
				b.Paste()
				if b.Text() != text {
					t.Fatalf("cut(%d)+paste at %d gave %q", n, cursor, b.Text())
				}
				if b.Cursor() != cursor+k {
					t.Fatalf("cut(%d)+paste at %d left cursor at %d", n, cursor, b.Cursor())
				}
			}
		}
	})
}

func TestCutThenPasteAtCursor(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		b := newBufferAt(t, kind, "abcdef", 2)
		if n := b.Cut(3); n != 3 {
			t.Fatalf("expected 3 cut, got %d", n)
		}
		expectState(t, b, "abf", 2)
		if b.Clipboard() != "cde" {
			t.Errorf("expected clipboard %q, got %q", "cde", b.Clipboard())
		}

		b.Paste()
		expectState(t, b, "abcdef", 5)
		b.MoveBackward()
		b.MoveBackward()
		b.MoveBackward()
		expectState(t, b, "abcdef", 2)
	})
}

func TestPasteRepeats(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		b := newBufferAt(t, kind, "ab", 1)
		b.Copy(1)
		b.Paste()
		b.Paste()
		expectState(t, b, "abbb", 3)
		if b.Clipboard() != "b" {
			t.Errorf("paste consumed clipboard: %q", b.Clipboard())
		}
	})
}

func TestCopyWords(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		n      int
		want   string
	}{
		{"one word", "alpha beta gamma", 0, 1, "alpha"},
		{"two words", "alpha beta gamma", 0, 2, "alpha beta"},
		{"leading delimiter", "alpha beta gamma", 5, 1, " beta"},
		{"more than available", "alpha beta", 6, 4, "beta"},
		{"zero words", "alpha", 0, 0, ""},
		{"trailing delimiters", "alpha  ", 0, 2, "alpha  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachKind(t, func(t *testing.T, kind store.Kind) {
				b := newBufferAt(t, kind, tt.text, tt.cursor)
				if n := b.CopyWords(tt.n); n != len(tt.want) {
					t.Errorf("expected %d copied, got %d", len(tt.want), n)
				}
				if b.Clipboard() != tt.want {
					t.Errorf("expected clipboard %q, got %q", tt.want, b.Clipboard())
				}
				expectState(t, b, tt.text, tt.cursor)
			})
		})
	}
}

func TestCutWords(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		b := newBufferAt(t, kind, "one two three", 3)
		if n := b.CutWords(1); n != 4 {
			t.Errorf("expected 4 cut, got %d", n)
		}
		expectState(t, b, "one three", 3)
		if b.Clipboard() != " two" {
			t.Errorf("expected clipboard %q, got %q", " two", b.Clipboard())
		}

		b.MoveToEnd()
		b.Paste()
		expectState(t, b, "one three two", 13)
	})
}
