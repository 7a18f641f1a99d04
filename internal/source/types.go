package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Location is the external, line/column view of a Span. It is what the
// serialization bridge and fixtures see. ColStop is exclusive, so Content
// is exactly the text between [ColStart, ColStop) on LineStart..LineStop.
// Path is empty for virtual (inline/test) sources.
type Location struct {
	LineStart uint32 `json:"line_start"`
	LineStop  uint32 `json:"line_stop"`
	ColStart  uint32 `json:"col_start"`
	ColStop   uint32 `json:"col_stop"`
	Path      string `json:"path"`
	Content   string `json:"content"`
}
