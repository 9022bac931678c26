package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Colors follow color.NoColor, which the CLI sets for non-terminals.
var (
	errorColor  = color.New(color.FgRed, color.Bold)
	gutterColor = color.New(color.FgCyan)
	hintColor   = color.New(color.FgCyan, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
)

// Format renders the error for a terminal:
//
//	error[E110]: Malformed document
//	  --> page.yaml:2:1
//	   |
//	 1 | tag: div
//	 2 | bogus: 1
//	   | ^
//	   = unknown key "bogus"
//	   = hint: ...
func (e *MarkupError) Format() string {
	var b strings.Builder

	b.WriteString(errorColor.Sprint(e.heading()))
	b.WriteString(": ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	width := gutterWidth(e.Excerpt)
	pad := strings.Repeat(" ", width)
	bar := gutterColor.Sprint("|")

	if e.Location != nil {
		fmt.Fprintf(&b, "%s%s %s\n", pad, gutterColor.Sprint("-->"), e.Location)
	}

	if len(e.Excerpt) > 0 {
		fmt.Fprintf(&b, "%s %s\n", pad, bar)
		for _, line := range e.Excerpt {
			num := gutterColor.Sprint(fmt.Sprintf("%*d", width, line.Number))
			fmt.Fprintf(&b, "%s %s %s\n", num, bar, line.Text)
			if e.Location != nil && line.Number == e.Location.Line && e.Location.Column > 0 {
				fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar,
					caretIndent(line.Text, e.Location.Column), errorColor.Sprint("^"))
			}
		}
	}

	note := func(label, text string) {
		fmt.Fprintf(&b, "%s %s %s%s\n", pad, gutterColor.Sprint("="), label, text)
	}
	if e.Detail != "" {
		note("", e.Detail)
	}
	if cause := e.cause(); cause != "" {
		note(dimColor.Sprint("caused by: "), cause)
	}
	if e.Suggestion != "" {
		note(hintColor.Sprint("hint: "), e.Suggestion)
	}

	return b.String()
}

// FormatCompact returns the error on one line, prefixed by its location.
func (e *MarkupError) FormatCompact() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	return msg
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Cause      string        `json:"cause,omitempty"`
}

// FormatJSON returns the error as a JSON object, as sent in HTTP and
// websocket failure bodies.
func (e *MarkupError) FormatJSON() string {
	body := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		Cause:      e.cause(),
	}
	if e.Location != nil {
		body.Location = &jsonLocation{File: e.Location.File, Line: e.Location.Line, Column: e.Location.Column}
	}

	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return fmt.Sprintf(`{"category":%q,"message":%q}`, e.Category, e.Message)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// PrintError writes err to w, formatted when it is a MarkupError.
func PrintError(w io.Writer, err error) {
	if me, ok := err.(*MarkupError); ok {
		fmt.Fprint(w, me.Format())
		return
	}
	fmt.Fprintf(w, "%s: %v\n", errorColor.Sprint("error"), err)
}

func (e *MarkupError) heading() string {
	if e.Code == "" {
		return "error"
	}
	return "error[" + e.Code + "]"
}

// cause is the text of a wrapped error that is not itself coded.
// Coded causes are already described by Detail.
func (e *MarkupError) cause() string {
	if e.Wrapped == nil {
		return ""
	}
	if _, ok := e.Wrapped.(*MarkupError); ok {
		return ""
	}
	if msg := e.Wrapped.Error(); !strings.Contains(e.Detail, msg) {
		return msg
	}
	return ""
}

func gutterWidth(lines []SourceLine) int {
	if len(lines) == 0 {
		return 2
	}
	return max(len(strconv.Itoa(lines[len(lines)-1].Number)), 2)
}

// caretIndent lines the caret up with column, keeping tabs so terminals
// expand them the same way as in the excerpt above.
func caretIndent(text string, column int) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	if n := column - 1 - len([]rune(text)); n > 0 {
		b.WriteString(strings.Repeat(" ", n))
	}
	return b.String()
}
