// Package clipboard provides the single-slot clipboard of an edit buffer.
package clipboard

// Clipboard holds the most recently copied or cut text.
// The zero value is an empty clipboard.
type Clipboard struct {
	text string
}

// New creates an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Set replaces the clipboard contents.
func (c *Clipboard) Set(text string) {
	c.text = text
}

// Get returns the clipboard contents without clearing them.
func (c *Clipboard) Get() string {
	return c.text
}

// Len returns the length of the contents in bytes.
func (c *Clipboard) Len() int {
	return len(c.text)
}

// IsEmpty reports whether the clipboard holds no text.
func (c *Clipboard) IsEmpty() bool {
	return c.text == ""
}
