// Package render produces the printable view of a fiche.
package render

import (
	"regexp"
	"strings"
)

// SegmentKind classifies a piece of remark text
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentBold
	SegmentItalic
	SegmentUnderline
	SegmentLineBreak
)

// Segment is one interpreted piece of remark text. Text holds the content
// without markers; it is empty for line breaks.
type Segment struct {
	Text string
	Kind SegmentKind
}

// markupPattern recognises *bold*, _italic_, ~underline~, three spaces and
// newlines. Three spaces stand for a line break in single-line inputs.
var markupPattern = regexp.MustCompile(`\*[^*]+\*|_[^_]+_|~[^~]+~| {3}|\n`)

// Markup splits s into segments. Text between markers is kept literally.
func Markup(s string) []Segment {
	var segments []Segment

	last := 0
	for _, loc := range markupPattern.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Kind: SegmentText, Text: s[last:loc[0]]})
		}
		segments = append(segments, classify(s[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(s) {
		segments = append(segments, Segment{Kind: SegmentText, Text: s[last:]})
	}

	return segments
}

func classify(token string) Segment {
	switch {
	case token == "\n" || token == "   ":
		return Segment{Kind: SegmentLineBreak}
	case strings.HasPrefix(token, "*"):
		return Segment{Kind: SegmentBold, Text: token[1 : len(token)-1]}
	case strings.HasPrefix(token, "_"):
		return Segment{Kind: SegmentItalic, Text: token[1 : len(token)-1]}
	default:
		return Segment{Kind: SegmentUnderline, Text: token[1 : len(token)-1]}
	}
}

// RenderMarkup interprets s and renders every segment through styler.
// Line breaks become "\n".
func RenderMarkup(s string, styler Styler) string {
	var b strings.Builder
	for _, seg := range Markup(s) {
		switch seg.Kind {
		case SegmentBold:
			b.WriteString(styler.Bold(seg.Text))
		case SegmentItalic:
			b.WriteString(styler.Italic(seg.Text))
		case SegmentUnderline:
			b.WriteString(styler.Underline(seg.Text))
		case SegmentLineBreak:
			b.WriteString("\n")
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
