// Package word classifies characters for word-wise navigation.
//
// Only space and newline separate words. Punctuation belongs to the word it
// touches, so "foo.bar" is one word and "a, b" is two ("a," and "b").
package word

// Class is the word-boundary class of a character.
type Class uint8

const (
	Delimiter Class = iota // Space or newline
	Word                   // Anything else
)

// String returns the name of the class.
func (c Class) String() string {
	if c == Delimiter {
		return "delimiter"
	}
	return "word"
}

// IsDelimiter reports whether ch separates words.
func IsDelimiter(ch byte) bool {
	return ch == ' ' || ch == '\n'
}

// Classify returns the class of ch.
func Classify(ch byte) Class {
	if IsDelimiter(ch) {
		return Delimiter
	}
	return Word
}

// PeekFunc reads the character at depth from a head, reporting false once
// depth runs past the tail.
type PeekFunc func(depth int) (byte, bool)

// Span returns how many characters, starting at the head read by peek, are
// covered by n words. Each word is any run of delimiters followed by a run
// of word characters. Scanning stops early at the tail.
func Span(peek PeekFunc, n int) int {
	depth := 0
	for w := 0; w < n; w++ {
		start := depth
		depth = skip(peek, depth, Delimiter)
		depth = skip(peek, depth, Word)
		if depth == start {
			break
		}
	}
	return depth
}

// skip advances depth past consecutive characters of class c.
func skip(peek PeekFunc, depth int, c Class) int {
	for {
		ch, ok := peek(depth)
		if !ok || Classify(ch) != c {
			return depth
		}
		depth++
	}
}
