// Package render turns edit buffer state into something a person can look
// at: a one-line string for the command loop, or cells on a tcell screen.
package render

import (
	"strconv"
	"strings"
)

// DefaultMarker marks the cursor in formatted text.
const DefaultMarker = "|"

// Format returns text with marker inserted at cursor. Cursor values outside
// [0, len(text)] are clamped.
func Format(text string, cursor int, marker string) string {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	var sb strings.Builder
	sb.Grow(len(text) + len(marker))
	sb.WriteString(text[:cursor])
	sb.WriteString(marker)
	sb.WriteString(text[cursor:])
	return sb.String()
}

// Quote formats like Format and then escapes newlines and other control
// characters so the result stays on one line.
func Quote(text string, cursor int, marker string) string {
	s := strconv.Quote(Format(text, cursor, marker))
	return s[1 : len(s)-1]
}
