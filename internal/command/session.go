package command

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dshills/stackedit/internal/engine/editbuf"
	"github.com/dshills/stackedit/internal/logging"
	"github.com/dshills/stackedit/internal/render"
)

// Session reads commands from a reader and prints the buffer after each.
type Session struct {
	id       string
	buf      *editbuf.Buffer
	exec     *Executor
	prompt   string
	marker   string
	showHelp bool
	logger   *logging.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPrompt sets the prompt printed before each command.
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithMarker sets the cursor marker.
func WithMarker(marker string) SessionOption {
	return func(s *Session) {
		if marker != "" {
			s.marker = marker
		}
	}
}

// WithHelp prints the command table when the session starts.
func WithHelp(show bool) SessionOption {
	return func(s *Session) {
		s.showHelp = show
	}
}

// WithScripter enables the lua command.
func WithScripter(sc Scripter) SessionOption {
	return func(s *Session) {
		s.exec.scripter = sc
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session editing buf.
func NewSession(buf *editbuf.Buffer, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.New().String(),
		buf:    buf,
		exec:   NewExecutor(buf, nil),
		prompt: "> ",
		marker: render.DefaultMarker,
		logger: logging.Null(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("repl").WithField("session", s.id)
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Run reads commands from in until quit, end of input or cancellation of
// ctx. Cancellation is noticed between lines. Returns nil on quit or end of
// input, ctx.Err() on cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	s.logger.Info("session started")

	if s.showHelp {
		fmt.Fprint(out, Help())
	}
	s.show(out)

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled")
			return err
		}

		fmt.Fprint(out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading commands: %w", err)
			}
			fmt.Fprintln(out)
			s.logger.Info("session ended: end of input")
			return nil
		}

		quit, err := s.Step(ctx, scanner.Text(), out)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			s.logger.Info("session ended: quit")
			return nil
		}
	}
}

// Step parses and executes one line, writing any message and the buffer
// state to out. It reports whether the session should end.
func (s *Session) Step(ctx context.Context, line string, out io.Writer) (bool, error) {
	cmd, err := Parse(line)
	if err != nil {
		s.logger.Debug("parse %q: %v", line, err)
		return false, err
	}

	res, err := s.exec.Execute(ctx, cmd)
	s.logger.WithFields(map[string]any{
		"op":     cmd.Op,
		"count":  cmd.Count,
		"cursor": s.buf.Cursor(),
		"len":    s.buf.Len(),
	}).Debug("executed")
	if err != nil {
		return false, err
	}
	if res.Quit {
		return true, nil
	}

	if res.Message != "" {
		fmt.Fprintln(out, res.Message)
	}
	s.show(out)
	return false, nil
}

// show prints the buffer with the cursor marker.
func (s *Session) show(out io.Writer) {
	fmt.Fprintln(out, render.Quote(s.buf.Text(), s.buf.Cursor(), s.marker))
}
