package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ember/internal/diag"
	"ember/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form, one per block:
//
//	<path>:<line>:<col>: <SEVERITY> [<CODE>]: <message>
//	    <source line>
//	    ^~~~
//	note: <message>
//
// Call bag.Sort() first for deterministic order. Spans without a known
// file (external units, synthetic declarations) drop the location prefix.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, d, fs, opts)
		if opts.ShowPreview {
			writePreview(w, d.Primary, fs)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeNote(w, n, fs, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	if loc := location(d.Primary, fs, opts); loc != "" {
		fmt.Fprintf(w, "%s: ", loc)
	}
	fmt.Fprintf(w, "%s [%s]: %s\n", severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
}

func writeNote(w io.Writer, n diag.Note, fs *source.FileSet, opts PrettyOpts) {
	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	if loc := location(n.Span, fs, opts); loc != "" {
		fmt.Fprintf(w, "%s: %s: %s\n", label, loc, n.Msg)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, n.Msg)
}

// writePreview prints the first source line of the span with a caret
// underline sized by display width.
func writePreview(w io.Writer, sp source.Span, fs *source.FileSet) {
	if fs == nil || sp.Empty() {
		return
	}
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 || int(sp.Start) >= len(f.Content) {
		return
	}

	lineStart := int(sp.Start)
	for lineStart > 0 && f.Content[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := int(sp.Start)
	for lineEnd < len(f.Content) && f.Content[lineEnd] != '\n' {
		lineEnd++
	}
	line := string(f.Content[lineStart:lineEnd])

	spanEnd := int(sp.End)
	if spanEnd > lineEnd {
		spanEnd = lineEnd
	}
	prefix := runewidth.StringWidth(string(f.Content[lineStart:sp.Start]))
	width := runewidth.StringWidth(string(f.Content[sp.Start:spanEnd]))
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", prefix), strings.Repeat("~", width-1))
}

func location(sp source.Span, fs *source.FileSet, opts PrettyOpts) string {
	if fs == nil {
		return ""
	}
	f := fs.Get(sp.File)
	if f == nil {
		return ""
	}
	path := f.Path
	if opts.PathMode == PathModeBasename {
		path = filepath.Base(path)
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}
