package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stackedit/internal/engine/editbuf"
)

// bufferModule implements the buf table.
type bufferModule struct {
	buf *editbuf.Buffer
}

func newBufferModule(buf *editbuf.Buffer) *bufferModule {
	return &bufferModule{buf: buf}
}

// register installs the buf global.
func (m *bufferModule) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "len", L.NewFunction(m.bufLen))
	L.SetField(mod, "clipboard", L.NewFunction(m.clipboard))
	L.SetField(mod, "forward", L.NewFunction(m.forward))
	L.SetField(mod, "backward", L.NewFunction(m.backward))
	L.SetField(mod, "forward_word", L.NewFunction(m.forwardWord))
	L.SetField(mod, "backward_word", L.NewFunction(m.backwardWord))
	L.SetField(mod, "start", L.NewFunction(m.start))
	L.SetField(mod, "finish", L.NewFunction(m.finish))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "type", L.NewFunction(m.typeString))
	L.SetField(mod, "delete", L.NewFunction(m.deleteChar))
	L.SetField(mod, "delete_word", L.NewFunction(m.deleteWord))
	L.SetField(mod, "copy", L.NewFunction(m.copy))
	L.SetField(mod, "cut", L.NewFunction(m.cut))
	L.SetField(mod, "copy_words", L.NewFunction(m.copyWords))
	L.SetField(mod, "cut_words", L.NewFunction(m.cutWords))
	L.SetField(mod, "paste", L.NewFunction(m.paste))
	L.SetField(mod, "search", L.NewFunction(m.search))
	L.SetField(mod, "replace", L.NewFunction(m.replace))

	L.SetGlobal("buf", mod)
}

// text() -> string
func (m *bufferModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.buf.Text()))
	return 1
}

// cursor() -> number
func (m *bufferModule) cursor(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.Cursor()))
	return 1
}

// len() -> number
func (m *bufferModule) bufLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.Len()))
	return 1
}

// clipboard() -> string
func (m *bufferModule) clipboard(L *lua.LState) int {
	L.Push(lua.LString(m.buf.Clipboard()))
	return 1
}

// forward([n]) -> moved
// Moves up to n characters (default 1) and returns how many it moved.
func (m *bufferModule) forward(L *lua.LState) int {
	return m.repeat(L, m.buf.MoveForward)
}

// backward([n]) -> moved
func (m *bufferModule) backward(L *lua.LState) int {
	return m.repeat(L, m.buf.MoveBackward)
}

// forward_word() -> steps
func (m *bufferModule) forwardWord(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.MoveForwardWord()))
	return 1
}

// backward_word() -> steps
func (m *bufferModule) backwardWord(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.MoveBackwardWord()))
	return 1
}

// start() -> steps
func (m *bufferModule) start(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.MoveToStart()))
	return 1
}

// finish() -> steps
func (m *bufferModule) finish(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.MoveToEnd()))
	return 1
}

// insert(ch)
// Inserts the first byte of ch.
func (m *bufferModule) insert(L *lua.LState) int {
	s := L.CheckString(1)
	if s == "" {
		L.ArgError(1, "character expected")
		return 0
	}
	m.buf.InsertChar(s[0])
	return 0
}

// type(s)
func (m *bufferModule) typeString(L *lua.LState) int {
	m.buf.InsertString(L.CheckString(1))
	return 0
}

// delete([n]) -> deleted
func (m *bufferModule) deleteChar(L *lua.LState) int {
	return m.repeat(L, m.buf.DeleteChar)
}

// delete_word() -> deleted
func (m *bufferModule) deleteWord(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.DeleteWord()))
	return 1
}

// copy(n) -> stored
func (m *bufferModule) copy(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.Copy(L.CheckInt(1))))
	return 1
}

// cut(n) -> stored
func (m *bufferModule) cut(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.Cut(L.CheckInt(1))))
	return 1
}

// copy_words(n) -> stored
func (m *bufferModule) copyWords(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.CopyWords(L.CheckInt(1))))
	return 1
}

// cut_words(n) -> stored
func (m *bufferModule) cutWords(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.CutWords(L.CheckInt(1))))
	return 1
}

// paste() -> inserted
func (m *bufferModule) paste(L *lua.LState) int {
	L.Push(lua.LNumber(m.buf.Paste()))
	return 1
}

// search(s) -> found
func (m *bufferModule) search(L *lua.LState) int {
	L.Push(lua.LBool(m.buf.Search(L.CheckString(1))))
	return 1
}

// replace("old/new") -> replaced
func (m *bufferModule) replace(L *lua.LState) int {
	L.Push(lua.LBool(m.buf.Replace(L.CheckString(1))))
	return 1
}

// repeat calls step up to n times (argument 1, default 1), stopping at the
// first failure, and pushes the number of successful steps.
func (m *bufferModule) repeat(L *lua.LState, step func() bool) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "count must be non-negative")
		return 0
	}
	done := 0
	for done < n && step() {
		done++
	}
	L.Push(lua.LNumber(done))
	return 1
}
