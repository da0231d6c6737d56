package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// escape is the byte a terminal sends for the Esc key
const escape = "\x1b"

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio reads lines from in and writes to out
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput prints prompt and reads one line. The line is returned trimmed.
// A line containing Esc, or end of input before any text, gives ErrCancelled.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)

	input, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if strings.Contains(input, escape) {
		return "", ErrCancelled
	}
	if errors.Is(err, io.EOF) && input == "" {
		return "", ErrCancelled
	}

	return strings.TrimSpace(input), nil
}
