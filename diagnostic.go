package scriptlang

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kolkov/scriptlang/internal/token"
)

// Diagnostic styles, used when Config.Color is set.
var (
	styleLocation = lipgloss.NewStyle().Bold(true)
	styleMessage  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	styleGutter   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	styleCaret    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
)

// Diagnose renders err for humans. For a *SyntaxError the result names the
// location, then shows the offending source line with a caret underline
// beneath the error span:
//
//	main.sl:1:9: expected expression, got ';'
//	 1 | let x = ;
//	   |         ^
//
// Other errors render as err.Error(). The result has no trailing newline.
func Diagnose(err error, src string, config *Config) string {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return err.Error()
	}
	config = withDefaults(config)

	paint := func(s lipgloss.Style, text string) string {
		if !config.Color {
			return text
		}
		return s.Render(text)
	}

	filename := se.Filename
	if filename == "" {
		filename = config.Filename
	}
	if se.Line == 0 {
		return paint(styleMessage, se.Message)
	}

	pos := token.Position{Filename: filename, Line: se.Line, Column: se.Column}
	var sb strings.Builder
	sb.WriteString(paint(styleLocation, pos.String()+":"))
	sb.WriteString(" ")
	sb.WriteString(paint(styleMessage, se.Message))

	file := token.NewFile(filename, src)
	line := file.Line(se.Line)
	lineNo := strconv.Itoa(se.Line)
	pad := strings.Repeat(" ", len(lineNo))

	// Underline from the error column to the end of the span, clipped to
	// the line. Empty spans (end of input) get a single caret.
	start := min(se.Column-1, len(line))
	end := min(start+se.Span.Len(), len(line))
	prefix, _ := expandTabs(line[:start], 0, config.TabWidth)
	_, markWidth := expandTabs(line[start:end], len([]rune(prefix)), config.TabWidth)
	markWidth = max(markWidth, 1)
	text, _ := expandTabs(line, 0, config.TabWidth)

	fmt.Fprintf(&sb, "\n%s %s %s", paint(styleGutter, " "+lineNo), paint(styleGutter, "|"), text)
	fmt.Fprintf(&sb, "\n%s %s %s%s", paint(styleGutter, " "+pad), paint(styleGutter, "|"),
		strings.Repeat(" ", len([]rune(prefix))), paint(styleCaret, strings.Repeat("^", markWidth)))
	return sb.String()
}

// expandTabs replaces tabs in s with spaces up to the next tab stop, given
// that s starts at display column col. It returns the expanded text and
// the number of columns it occupies.
func expandTabs(s string, col, tabWidth int) (string, int) {
	var sb strings.Builder
	width := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - (col+width)%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			width += n
			continue
		}
		sb.WriteRune(r)
		width++
	}
	return sb.String(), width
}
