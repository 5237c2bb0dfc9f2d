package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stackedit/internal/engine/editbuf"
	"github.com/dshills/stackedit/internal/logging"
)

// DefaultTimeout bounds a single DoString or DoFile call.
const DefaultTimeout = 5 * time.Second

// Runner executes Lua with a buffer bound to the global "buf".
type Runner struct {
	L       *lua.LState
	buf     *editbuf.Buffer
	output  io.Writer
	timeout time.Duration
	logger  *logging.Logger
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.output = w
		}
	}
}

// WithTimeout sets the per-call execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Runner bound to buf.
func New(buf *editbuf.Buffer, opts ...Option) *Runner {
	r := &Runner{
		buf:     buf,
		output:  os.Stdout,
		timeout: DefaultTimeout,
		logger:  logging.Null(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(r.L)
	r.L.SetGlobal("print", r.L.NewFunction(r.print))
	newBufferModule(buf).register(r.L)

	return r
}

// openSafeLibraries opens the libraries scripts may use. io, os, debug and
// package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoString runs code.
func (r *Runner) DoString(ctx context.Context, code string) error {
	return r.run(ctx, "<string>", func() error {
		return r.L.DoString(code)
	})
}

// DoFile runs the Lua file at path.
func (r *Runner) DoFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &Error{Source: path, Err: err}
	}
	return r.run(ctx, path, func() error {
		fn, err := r.L.Load(bytes.NewReader(src), path)
		if err != nil {
			return err
		}
		r.L.Push(fn)
		return r.L.PCall(0, lua.MultRet, nil)
	})
}

// Close releases the Lua state. Further calls return ErrClosed.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

func (r *Runner) run(ctx context.Context, source string, fn func() error) (err error) {
	if r.closed {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		// PCall converts panics raised inside Lua calls; this catches the rest.
		if p := recover(); p != nil {
			err = &Error{Source: source, Err: fmt.Errorf("lua panic: %v", p)}
		}
	}()

	start := time.Now()
	if err := fn(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		r.logger.Warn("script %s failed: %v", source, err)
		return &Error{Source: source, Err: err}
	}
	r.logger.Debug("script %s finished in %s", source, time.Since(start))
	return nil
}

// print writes its arguments separated by tabs, like the stock print.
func (r *Runner) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(r.output, strings.Join(parts, "\t"))
	return 0
}
