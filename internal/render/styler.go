package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styler renders emphasised text for an output medium
type Styler interface {
	Bold(s string) string
	Italic(s string) string
	Underline(s string) string
}

// PlainStyler drops emphasis, for files and pipes
type PlainStyler struct{}

func (PlainStyler) Bold(s string) string      { return s }
func (PlainStyler) Italic(s string) string    { return s }
func (PlainStyler) Underline(s string) string { return s }

// TermStyler renders emphasis with terminal escape sequences
type TermStyler struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	underline lipgloss.Style
}

// NewTermStyler creates a TermStyler with lipgloss styles
func NewTermStyler() TermStyler {
	return TermStyler{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		underline: lipgloss.NewStyle().Underline(true),
	}
}

func (s TermStyler) Bold(text string) string      { return s.bold.Render(text) }
func (s TermStyler) Italic(text string) string    { return s.italic.Render(text) }
func (s TermStyler) Underline(text string) string { return s.underline.Render(text) }

// StylerFor picks TermStyler when w is a terminal and PlainStyler otherwise
func StylerFor(w io.Writer) Styler {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewTermStyler()
	}
	return PlainStyler{}
}
