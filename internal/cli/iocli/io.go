// Package iocli abstracts the terminal for interactive commands.
package iocli

import "errors"

//go:generate moq -out io_mock.go . IO

// ErrCancelled is returned by ReadInput when the user pressed Esc or closed
// the input stream.
var ErrCancelled = errors.New("input cancelled")

// IO
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
