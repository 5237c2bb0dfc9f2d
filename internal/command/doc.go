// Package command implements the line-oriented command loop for an edit
// buffer.
//
// Each input line holds one command: an optional repeat count, a command
// letter, and an optional argument.
//
//	tHello world     type "Hello world"
//	3b               move back three characters
//	2D               delete two words
//	5c               copy five characters
//	sworld           search for "world"
//	r world/there    replace "world" with "there"
//
// A single space between the letter and the argument is dropped, so "t x"
// and "tx" both type "x". Use two spaces to type a leading space.
//
// After every command the session prints the buffer with a cursor marker.
package command
