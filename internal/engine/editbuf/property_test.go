package editbuf

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dshills/stackedit/internal/engine/store"
	"github.com/dshills/stackedit/internal/engine/word"
)

// model is a naive string-and-index edit buffer used as a reference.
type model struct {
	text   string
	cursor int
	clip   string
}

func (m *model) forward() {
	if m.cursor < len(m.text) {
		m.cursor++
	}
}

func (m *model) backward() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *model) insert(s string) {
	m.text = m.text[:m.cursor] + s + m.text[m.cursor:]
	m.cursor += len(s)
}

func (m *model) del(n int) {
	if n > len(m.text)-m.cursor {
		n = len(m.text) - m.cursor
	}
	m.text = m.text[:m.cursor] + m.text[m.cursor+n:]
}

func (m *model) wordForward() int {
	i := m.cursor
	for i < len(m.text) && word.IsDelimiter(m.text[i]) {
		i++
	}
	for i < len(m.text) && !word.IsDelimiter(m.text[i]) {
		i++
	}
	return i - m.cursor
}

func (m *model) wordBackward() int {
	i := m.cursor
	for i > 0 && word.IsDelimiter(m.text[i-1]) {
		i--
	}
	for i > 0 && !word.IsDelimiter(m.text[i-1]) {
		i--
	}
	return m.cursor - i
}

func randomText(r *rand.Rand, n int) string {
	const alphabet = "ab c\n.xy"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}

func TestBufferMatchesModel(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind store.Kind) {
		r := rand.New(rand.NewSource(42))
		b := New(WithStore(store.New(kind, 1)))
		m := &model{}

		for step := 0; step < 5000; step++ {
			op := r.Intn(14)
			switch op {
			case 0:
				b.MoveForward()
				m.forward()
			case 1:
				b.MoveBackward()
				m.backward()
			case 2:
				s := randomText(r, r.Intn(6))
				b.InsertString(s)
				m.insert(s)
			case 3:
				b.DeleteChar()
				m.del(1)
			case 4:
				n := m.wordForward()
				if got := b.MoveForwardWord(); got != n {
					t.Fatalf("step %d: MoveForwardWord = %d, want %d", step, got, n)
				}
				m.cursor += n
			case 5:
				n := m.wordBackward()
				if got := b.MoveBackwardWord(); got != n {
					t.Fatalf("step %d: MoveBackwardWord = %d, want %d", step, got, n)
				}
				m.cursor -= n
			case 6:
				n := m.wordForward()
				b.DeleteWord()
				m.del(n)
			case 7:
				n := r.Intn(8)
				b.Copy(n)
				if n > len(m.text)-m.cursor {
					n = len(m.text) - m.cursor
				}
				m.clip = m.text[m.cursor : m.cursor+n]
			case 8:
				n := r.Intn(8)
				b.Cut(n)
				if n > len(m.text)-m.cursor {
					n = len(m.text) - m.cursor
				}
				m.clip = m.text[m.cursor : m.cursor+n]
				m.del(n)
			case 9:
				b.Paste()
				m.insert(m.clip)
			case 10:
				q := randomText(r, 1+r.Intn(2))
				found := b.Search(q)
				idx := strings.Index(m.text[m.cursor:], q)
				if found != (idx >= 0) {
					t.Fatalf("step %d: Search(%q) = %v, model index %d", step, q, found, idx)
				}
				if idx >= 0 {
					m.cursor += idx + len(q)
				}
			case 11:
				b.MoveToStart()
				m.cursor = 0
			case 12:
				b.MoveToEnd()
				m.cursor = len(m.text)
			case 13:
				words := r.Intn(3)
				saved := m.cursor
				for i := 0; i < words; i++ {
					m.cursor += m.wordForward()
				}
				span := m.cursor - saved
				m.cursor = saved
				b.CutWords(words)
				m.clip = m.text[m.cursor : m.cursor+span]
				m.del(span)
			}

			if b.Text() != m.text || b.Cursor() != m.cursor {
				t.Fatalf("step %d (op %d): buffer %q@%d, model %q@%d",
					step, op, b.Text(), b.Cursor(), m.text, m.cursor)
			}
			if b.Clipboard() != m.clip {
				t.Fatalf("step %d (op %d): clipboard %q, model %q", step, op, b.Clipboard(), m.clip)
			}
		}
	})
}

// FuzzReplace checks that Replace either succeeds as described or leaves
// the buffer untouched.
func FuzzReplace(f *testing.F) {
	f.Add("hello world", 0, "world/there")
	f.Add("aaa", 1, "a/b")
	f.Add("abc", 0, "/")
	f.Add("abc", 3, "c/d")
	f.Add("", 0, "a/b")

	f.Fuzz(func(t *testing.T, text string, cursor int, pattern string) {
		if cursor < 0 || cursor > len(text) {
			cursor = 0
		}

		b := newBufferAt(t, store.KindDualStack, text, cursor)
		ok := b.Replace(pattern)

		old, repl, valid := strings.Cut(pattern, "/")
		idx := strings.Index(text[cursor:], old)
		want := valid && old != "" && repl != "" && idx >= 0
		if ok != want {
			t.Fatalf("Replace(%q) on %q@%d = %v, want %v", pattern, text, cursor, ok, want)
		}
		if !ok {
			expectState(t, b, text, cursor)
			return
		}
		at := cursor + idx
		expectState(t, b, text[:at]+repl+text[at+len(old):], at+len(repl))
	})
}
