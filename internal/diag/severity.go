package diag

// Severity ranks how serious a diagnostic is. Only SevError affects
// parse outcomes and golden output; the other levels exist for tooling.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the uppercase name used in golden files and pretty output.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
