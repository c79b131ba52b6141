package utils

import (
	"bytes"
	"runtime/debug"
)

// Stack returns the current goroutine stack with the first skip frames
// (each frame being a function line plus a file line) removed.
func Stack(skip int) []byte {
	stack := debug.Stack()
	// first line is the goroutine header
	lines := bytes.Split(stack, []byte("\n"))
	if len(lines) == 0 {
		return stack
	}
	drop := 1 + 2*skip
	if drop >= len(lines) {
		return stack
	}
	res := append([][]byte{lines[0]}, lines[drop:]...)
	return bytes.Join(res, []byte("\n"))
}
