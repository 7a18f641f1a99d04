package diag

import (
	"fmt"
	"sort"
	"strings"

	"zirc/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGolden renders diagnostics into a stable, one-line-per-entry form
// suitable for golden files and conformance fixtures:
//
//	ERROR SYN2003 1:2: expected member name or tuple index after '.'
//
// Entries are sorted deterministically; the path is omitted because
// fixtures run on inline sources.
func FormatGolden(diags []Diagnostic, fs *source.FileSet) string {
	rows := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		rows = append(rows, goldenDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Line != rows[j].Line {
			return rows[i].Line < rows[j].Line
		}
		if rows[i].Column != rows[j].Column {
			return rows[i].Column < rows[j].Column
		}
		return rows[i].Code < rows[j].Code
	})

	var sb strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s %s %d:%d: %s\n", r.Severity, r.Code, r.Line, r.Column, r.Message)
	}
	return sb.String()
}
