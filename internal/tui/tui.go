// Package tui runs an interactive full-screen editor over an edit buffer.
//
// Key bindings:
//
//	Esc, Ctrl+Q          quit
//	Left, Right          move one character
//	Ctrl+Left/Right      move one word
//	Home, End            jump to start or end
//	Backspace            delete before the cursor
//	Delete               delete after the cursor
//	Ctrl+W               delete the word after the cursor
//	Ctrl+C               copy to the end of the buffer
//	Ctrl+X               cut the word after the cursor
//	Ctrl+K               cut to the end of the buffer
//	Ctrl+V               paste
//	Enter, Tab           insert a newline or tab
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/stackedit/internal/engine/editbuf"
	"github.com/dshills/stackedit/internal/logging"
	"github.com/dshills/stackedit/internal/render"
)

// View connects a tcell screen to a buffer.
type View struct {
	screen   tcell.Screen
	renderer *render.Screen
	buf      *editbuf.Buffer
	logger   *logging.Logger
	message  string
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a view. The screen must already be initialized; the caller
// owns it and is responsible for calling Fini.
func New(screen tcell.Screen, buf *editbuf.Buffer, opts ...Option) *View {
	v := &View{
		screen:   screen,
		renderer: render.NewScreen(screen),
		buf:      buf,
		logger:   logging.Null(),
		message:  "Esc to quit",
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithComponent("tui")
	return v
}

// Run draws the buffer and handles events until the user quits or ctx is
// done. Returns nil on quit and ctx.Err() on cancellation.
func (v *View) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
		case <-done:
		}
	}()

	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			// Screen finalized underneath us.
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				v.logger.Info("view cancelled")
				return err
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				v.logger.Info("view closed")
				return nil
			}
		}
		v.draw()
	}
}

// HandleKey applies one key event to the buffer. It reports whether the key
// asked to quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	b := v.buf
	v.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true

	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			b.MoveBackwardWord()
		} else if !b.MoveBackward() {
			v.message = "at start of buffer"
		}

	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			b.MoveForwardWord()
		} else if !b.MoveForward() {
			v.message = "at end of buffer"
		}

	case tcell.KeyHome:
		b.MoveToStart()

	case tcell.KeyEnd:
		b.MoveToEnd()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if b.MoveBackward() {
			b.DeleteChar()
		}

	case tcell.KeyDelete:
		b.DeleteChar()

	case tcell.KeyEnter:
		b.InsertChar('\n')

	case tcell.KeyTab:
		b.InsertChar('\t')

	case tcell.KeyCtrlW:
		b.DeleteWord()

	case tcell.KeyCtrlC:
		v.message = fmt.Sprintf("copied %d", b.Copy(len(b.After())))

	case tcell.KeyCtrlX:
		v.message = fmt.Sprintf("cut %d", b.CutWords(1))

	case tcell.KeyCtrlK:
		v.message = fmt.Sprintf("cut %d", b.Cut(len(b.After())))

	case tcell.KeyCtrlV:
		if b.Paste() == 0 {
			v.message = "clipboard is empty"
		}

	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x20 || r > 0xff {
			v.message = fmt.Sprintf("cannot insert %q", r)
			break
		}
		b.InsertChar(byte(r))

	default:
		v.logger.Debug("unbound key %s", ev.Name())
	}

	return false
}

// Message returns the status line message.
func (v *View) Message() string {
	return v.message
}

func (v *View) draw() {
	v.renderer.Draw(render.State{
		Text:      v.buf.Text(),
		Cursor:    v.buf.Cursor(),
		Clipboard: len(v.buf.Clipboard()),
		Message:   v.message,
	})
}
