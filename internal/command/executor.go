package command

import (
	"context"
	"fmt"

	"github.com/dshills/stackedit/internal/engine/editbuf"
)

// Scripter runs Lua code against the session buffer.
type Scripter interface {
	DoString(ctx context.Context, code string) error
}

// Result is the outcome of one command.
type Result struct {
	Message string // Shown to the user, may be empty
	Quit    bool   // The session should end
}

// Executor applies commands to a buffer.
type Executor struct {
	buf      *editbuf.Buffer
	scripter Scripter
}

// NewExecutor creates an executor for buf. scripter may be nil, in which
// case the lua command reports that scripting is unavailable.
func NewExecutor(buf *editbuf.Buffer, scripter Scripter) *Executor {
	return &Executor{buf: buf, scripter: scripter}
}

// Execute applies cmd. Buffer operations never fail; the only error source
// is a Lua chunk.
func (e *Executor) Execute(ctx context.Context, cmd Command) (Result, error) {
	b := e.buf
	n := cmd.Count
	if n < 1 {
		n = 1
	}

	switch cmd.Op {
	case OpInsert:
		for i := 0; i < n; i++ {
			b.InsertChar(cmd.Arg[0])
		}

	case OpType:
		for i := 0; i < n; i++ {
			b.InsertString(cmd.Arg)
		}

	case OpAppend:
		b.MoveToEnd()
		for i := 0; i < n; i++ {
			b.InsertString(cmd.Arg)
		}

	case OpDelete:
		if repeat(n, b.DeleteChar) == 0 {
			return Result{Message: "nothing to delete"}, nil
		}

	case OpDeleteWord:
		total := 0
		for i := 0; i < n; i++ {
			total += b.DeleteWord()
		}
		if total == 0 {
			return Result{Message: "nothing to delete"}, nil
		}

	case OpForward:
		if repeat(n, b.MoveForward) == 0 {
			return Result{Message: "at end of buffer"}, nil
		}

	case OpBackward:
		if repeat(n, b.MoveBackward) == 0 {
			return Result{Message: "at start of buffer"}, nil
		}

	case OpForwardWord:
		for i := 0; i < n; i++ {
			if b.MoveForwardWord() == 0 {
				break
			}
		}

	case OpBackwardWord:
		for i := 0; i < n; i++ {
			if b.MoveBackwardWord() == 0 {
				break
			}
		}

	case OpStart:
		b.MoveToStart()

	case OpEnd:
		b.MoveToEnd()

	case OpCopy:
		return Result{Message: fmt.Sprintf("copied %d", b.Copy(n))}, nil

	case OpCut:
		return Result{Message: fmt.Sprintf("cut %d", b.Cut(n))}, nil

	case OpCopyWords:
		return Result{Message: fmt.Sprintf("copied %d", b.CopyWords(n))}, nil

	case OpCutWords:
		return Result{Message: fmt.Sprintf("cut %d", b.CutWords(n))}, nil

	case OpPaste:
		if b.Clipboard() == "" {
			return Result{Message: "clipboard is empty"}, nil
		}
		for i := 0; i < n; i++ {
			b.Paste()
		}

	case OpSearch:
		for i := 0; i < n; i++ {
			if !b.Search(cmd.Arg) {
				return Result{Message: fmt.Sprintf("not found: %q", cmd.Arg)}, nil
			}
		}

	case OpReplace:
		for i := 0; i < n; i++ {
			if !b.Replace(cmd.Arg) {
				return Result{Message: fmt.Sprintf("replace failed: %q", cmd.Arg)}, nil
			}
		}

	case OpLua:
		if e.scripter == nil {
			return Result{Message: "scripting unavailable"}, nil
		}
		for i := 0; i < n; i++ {
			if err := e.scripter.DoString(ctx, cmd.Arg); err != nil {
				return Result{}, err
			}
		}

	case OpHelp:
		return Result{Message: Help()}, nil

	case OpQuit:
		return Result{Quit: true}, nil

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownCommand, cmd.Op)
	}

	return Result{}, nil
}

// repeat calls step up to n times, stopping at the first false, and returns
// the number of successful calls.
func repeat(n int, step func() bool) int {
	done := 0
	for done < n && step() {
		done++
	}
	return done
}
