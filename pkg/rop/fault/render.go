package fault

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	kindColor    = color.New(color.FgRed, color.Bold)
	detailColor  = color.New(color.FgYellow)
	messageColor = color.New(color.Reset)
)

// Render returns err as an indented plain-text tree: one line per error with
// its kind, message and details, followed by inner and child errors.
func Render(err error) string {
	e := Convert(err)
	if e == nil {
		return ""
	}
	var sb strings.Builder
	render(&sb, e, 0, plain)
	return sb.String()
}

// Fprint writes the tree produced by Render to w using terminal colors.
// Colors are disabled automatically when w is not a terminal (see color.NoColor).
func Fprint(w io.Writer, err error) error {
	e := Convert(err)
	if e == nil {
		return nil
	}
	var sb strings.Builder
	render(&sb, e, 0, colored)
	_, werr := io.WriteString(w, sb.String())
	return werr
}

type painter struct {
	kind, detail, message func(a ...any) string
}

var (
	plain = painter{
		kind:    fmt.Sprint,
		detail:  fmt.Sprint,
		message: fmt.Sprint,
	}
	colored = painter{
		kind:    kindColor.Sprint,
		detail:  detailColor.Sprint,
		message: messageColor.Sprint,
	}
)

func render(sb *strings.Builder, e *Error, depth int, p painter) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(p.kind("[" + e.Code() + "]"))
	sb.WriteString(" ")
	sb.WriteString(p.message(e.message))

	var details []string
	if e.param != "" {
		details = append(details, "param="+e.param)
	}
	if e.actual != nil {
		details = append(details, fmt.Sprintf("actual=%v", e.actual))
	}
	if e.path != "" {
		details = append(details, "path="+e.path)
	}
	if len(details) > 0 {
		sb.WriteString(" ")
		sb.WriteString(p.detail("(" + strings.Join(details, ", ") + ")"))
	}
	sb.WriteString("\n")

	if e.inner != nil {
		render(sb, e.inner, depth+1, p)
	}
	for _, child := range e.errors {
		render(sb, child, depth+1, p)
	}
}
