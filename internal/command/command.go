package command

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCount bounds repeat counts.
const MaxCount = 1 << 20

// Op identifies a command.
type Op int

const (
	OpNone Op = iota
	OpInsert
	OpType
	OpAppend
	OpDelete
	OpDeleteWord
	OpForward
	OpBackward
	OpForwardWord
	OpBackwardWord
	OpStart
	OpEnd
	OpCopy
	OpCut
	OpCopyWords
	OpCutWords
	OpPaste
	OpSearch
	OpReplace
	OpLua
	OpHelp
	OpQuit
)

// entry describes one command letter.
type entry struct {
	op      Op
	letter  byte
	name    string
	needArg bool
	help    string
}

// entries is the command table in help order.
var entries = []entry{
	{OpInsert, 'i', "insert", true, "insert one character"},
	{OpType, 't', "type", true, "insert text at the cursor"},
	{OpAppend, 'a', "append", true, "insert text at the end"},
	{OpDelete, 'd', "delete", false, "delete the character after the cursor"},
	{OpDeleteWord, 'D', "delete-word", false, "delete the word after the cursor"},
	{OpForward, 'f', "forward", false, "move forward one character"},
	{OpBackward, 'b', "backward", false, "move backward one character"},
	{OpForwardWord, 'w', "word-forward", false, "move forward one word"},
	{OpBackwardWord, 'B', "word-backward", false, "move backward one word"},
	{OpStart, '^', "jump-start", false, "move to the start"},
	{OpEnd, '$', "jump-end", false, "move to the end"},
	{OpCopy, 'c', "copy", false, "copy N characters"},
	{OpCut, 'x', "cut", false, "cut N characters"},
	{OpCopyWords, 'C', "copy-words", false, "copy N words"},
	{OpCutWords, 'X', "cut-words", false, "cut N words"},
	{OpPaste, 'p', "paste", false, "paste the clipboard"},
	{OpSearch, 's', "search", true, "move past the next match"},
	{OpReplace, 'r', "replace", true, "replace OLD/NEW"},
	{OpLua, 'l', "lua", true, "run a Lua chunk against the buffer"},
	{OpHelp, 'h', "help", false, "show this help"},
	{OpQuit, 'q', "quit", false, "leave"},
}

var byLetter = func() map[byte]entry {
	m := make(map[byte]entry, len(entries))
	for _, s := range entries {
		m[s.letter] = s
	}
	return m
}()

var byOp = func() map[Op]entry {
	m := make(map[Op]entry, len(entries))
	for _, s := range entries {
		m[s.op] = s
	}
	return m
}()

// String returns the command name.
func (o Op) String() string {
	if s, ok := byOp[o]; ok {
		return s.name
	}
	return "none"
}

// Command is one parsed input line.
type Command struct {
	Op       Op
	Count    int    // Repeat count, 1 when not given
	HasCount bool   // Whether a count was typed
	Arg      string // Argument text
}

// Parse parses one input line.
func Parse(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}

	cmd := Command{Count: 1}
	if i > 0 {
		n, err := strconv.Atoi(line[:i])
		if err != nil || n <= 0 || n > MaxCount {
			return Command{}, fmt.Errorf("%w: %s", ErrInvalidCount, line[:i])
		}
		cmd.Count = n
		cmd.HasCount = true
	}

	if i >= len(line) {
		return Command{}, ErrEmptyCommand
	}

	s, ok := byLetter[line[i]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line[i])
	}
	cmd.Op = s.op

	arg := line[i+1:]
	if strings.HasPrefix(arg, " ") {
		arg = arg[1:]
	}
	if s.needArg && arg == "" {
		return Command{}, fmt.Errorf("%w: %s", ErrMissingArgument, s.name)
	}
	cmd.Arg = arg

	return cmd, nil
}

// Help returns the command table as text.
func Help() string {
	var sb strings.Builder
	sb.WriteString("Commands (prefix with a count to repeat):\n")
	for _, s := range entries {
		arg := ""
		if s.needArg {
			arg = " ARG"
		}
		fmt.Fprintf(&sb, "  %c%-4s %-14s %s\n", s.letter, arg, s.name, s.help)
	}
	return sb.String()
}
