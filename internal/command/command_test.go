package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"f", Command{Op: OpForward, Count: 1}},
		{"12b", Command{Op: OpBackward, Count: 12, HasCount: true}},
		{"tHello", Command{Op: OpType, Count: 1, Arg: "Hello"}},
		{"t Hello world", Command{Op: OpType, Count: 1, Arg: "Hello world"}},
		{"t  lead", Command{Op: OpType, Count: 1, Arg: " lead"}},
		{"3ix", Command{Op: OpInsert, Count: 3, HasCount: true, Arg: "x"}},
		{"r old/new\n", Command{Op: OpReplace, Count: 1, Arg: "old/new"}},
		{"5c", Command{Op: OpCopy, Count: 5, HasCount: true}},
		{"^", Command{Op: OpStart, Count: 1}},
		{"$", Command{Op: OpEnd, Count: 1}},
		{"q", Command{Op: OpQuit, Count: 1}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.line)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmptyCommand},
		{"\n", ErrEmptyCommand},
		{"42", ErrEmptyCommand},
		{"0f", ErrInvalidCount},
		{"99999999999999999999f", ErrInvalidCount},
		{"z", ErrUnknownCommand},
		{" f", ErrUnknownCommand},
		{"t", ErrMissingArgument},
		{"s ", ErrMissingArgument},
		{"r", ErrMissingArgument},
	}

	for _, tt := range tests {
		_, err := Parse(tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestOpString(t *testing.T) {
	if OpCutWords.String() != "cut-words" {
		t.Errorf("unexpected name %q", OpCutWords)
	}
	if OpNone.String() != "none" {
		t.Errorf("unexpected name %q", OpNone)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	help := Help()
	for _, s := range entries {
		if !strings.Contains(help, s.name) {
			t.Errorf("help is missing %s", s.name)
		}
	}
}
