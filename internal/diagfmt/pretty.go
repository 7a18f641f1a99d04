package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"zirc/internal/diag"
	"zirc/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgRed)
	noteColor    = color.New(color.FgBlue)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty renders diagnostics for humans. One block per diagnostic:
//
//	<path>:<line>:<col>: <severity>[<CODE>]: <message>
//	  <source line>
//	  <caret underline>
//
// Call bag.Sort() first if stable ordering matters.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	loc := fs.Describe(d.Primary)
	path := loc.Path
	if opts.PathMode == PathModeBasename {
		if f := fs.Get(d.Primary.File); f != nil {
			path = f.BaseName()
		}
	}

	sevText := d.Severity.String()
	codeText := d.Code.ID()
	if opts.Color {
		c := severityColor(d.Severity)
		sevText = c.Sprint(sevText)
		codeText = c.Sprint(codeText)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s[%s]: %s\n",
		path, loc.LineStart, loc.ColStart, sevText, codeText, d.Message)

	writeSource(w, d.Primary, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteLoc := fs.Describe(note.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %d:%d: %s\n", label, noteLoc.LineStart, noteLoc.ColStart, note.Msg)
		}
	}
}

// writeSource prints the first line of the span with a caret underline.
// Widths are measured in display cells so the caret lands correctly
// under tabs and wide runes.
func writeSource(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}
	loc := fs.Describe(span)
	lineText := f.Line(loc.LineStart)
	if lineText == "" && loc.Content == "" {
		return
	}

	prefix := ""
	if int(loc.ColStart)-1 <= len(lineText) {
		prefix = lineText[:loc.ColStart-1]
	}
	underlined := lineText[len(prefix):]
	if loc.LineStart == loc.LineStop {
		end := int(loc.ColStop) - 1
		if end > len(lineText) {
			end = len(lineText)
		}
		underlined = lineText[len(prefix):end]
	}

	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	width := runewidth.StringWidth(underlined)
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}

	fmt.Fprintf(w, "  %s\n", lineText)
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}
