// Package script runs Lua against an edit buffer.
//
// A Runner owns a gopher-lua state with only the base, table, string and
// math libraries opened, and installs a global "buf" table whose functions
// drive the buffer:
//
//	buf.type("hello world")
//	buf.start()
//	if buf.replace("world/there") then
//	    print(buf.text(), buf.cursor()) -- hello there	11
//	end
//
// Functions that can fail at a boundary return a boolean or a count, the
// same values the buffer methods return. print writes to the Runner's
// output instead of stdout.
//
// gopher-lua states are not goroutine-safe; a Runner must be used from one
// goroutine.
package script
