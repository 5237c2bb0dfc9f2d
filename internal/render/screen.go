package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// State is what the screen renderer draws.
type State struct {
	Text      string
	Cursor    int
	Clipboard int    // Clipboard length
	Message   string // Shown in the status line
}

// Screen draws State onto a tcell screen. The last row is a status line; the
// rows above it show the text, wrapped at the screen width and scrolled so
// the cursor stays visible.
type Screen struct {
	screen      tcell.Screen
	textStyle   tcell.Style
	statusStyle tcell.Style
}

// NewScreen creates a renderer for an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen:      s,
		textStyle:   tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// cell is the layout position of one character.
type cell struct {
	x, y int
}

// Draw clears the screen, draws st and shows the result.
func (r *Screen) Draw(st State) {
	width, height := r.screen.Size()
	r.screen.Clear()
	if width <= 0 || height <= 0 {
		r.screen.Show()
		return
	}

	rows := height - 1
	cells, cursor := layout(st.Text, st.Cursor, width)

	top := 0
	if rows > 0 && cursor.y >= rows {
		top = cursor.y - rows + 1
	}

	for i, c := range cells {
		ch := st.Text[i]
		if ch == '\n' {
			continue
		}
		y := c.y - top
		if y < 0 || y >= rows {
			continue
		}
		r.screen.SetContent(c.x, y, displayRune(ch), nil, r.textStyle)
	}

	r.drawStatus(st, width, height-1)

	if rows > 0 {
		r.screen.ShowCursor(cursor.x, cursor.y-top)
	} else {
		r.screen.HideCursor()
	}
	r.screen.Show()
}

// drawStatus fills row y with the status line.
func (r *Screen) drawStatus(st State, width, y int) {
	status := fmt.Sprintf(" %d/%d  clip:%d", st.Cursor, len(st.Text), st.Clipboard)
	if st.Message != "" {
		status += "  " + st.Message
	}
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		r.screen.SetContent(x, y, ch, nil, r.statusStyle)
	}
}

// layout places every character of text, wrapping at width, and returns the
// position of the cursor.
func layout(text string, cursor, width int) ([]cell, cell) {
	cells := make([]cell, len(text))
	var pos, cur cell
	for i := 0; i < len(text); i++ {
		if pos.x >= width {
			pos = cell{y: pos.y + 1}
		}
		if i == cursor {
			cur = pos
		}
		cells[i] = pos
		if text[i] == '\n' {
			pos = cell{y: pos.y + 1}
			continue
		}
		pos.x++
	}
	if cursor >= len(text) {
		if pos.x >= width {
			pos = cell{y: pos.y + 1}
		}
		cur = pos
	}
	return cells, cur
}

// displayRune maps a byte to the rune drawn for it.
func displayRune(ch byte) rune {
	if ch < 0x20 || ch == 0x7f {
		return '?'
	}
	return rune(ch)
}
