package driver

import (
	"zirc/internal/diag"
	"zirc/internal/diagfmt"
	"zirc/internal/source"
)

// CheckResult is the outcome of checking one file, possibly served from
// the disk cache.
type CheckResult struct {
	Path        string
	Broken      bool
	Diagnostics string // golden form, empty when clean
	ExprJSON    []byte // nil when broken
	FromCache   bool
}

// Check parses a file, serving the result from the cache when the
// content hash matches a previous run. cache may be nil.
func Check(path string, cache *DiskCache, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	key := fs.Get(fileID).Hash
	if cache != nil {
		var payload DiskPayload
		hit, err := cache.Get(key, &payload)
		if err == nil && hit {
			return &CheckResult{
				Path:        path,
				Broken:      payload.Broken,
				Diagnostics: payload.Diagnostics,
				ExprJSON:    payload.ExprJSON,
				FromCache:   true,
			}, nil
		}
	}

	res, err := parseLoaded(fs, fileID, maxDiagnostics)
	if err != nil {
		return nil, err
	}

	out := &CheckResult{Path: path}
	if res.Bag.HasErrors() || !res.Expr.IsValid() {
		out.Broken = true
		out.Diagnostics = diag.FormatGolden(res.Bag.Items(), res.FileSet)
	} else {
		data, err := diagfmt.MarshalExpr(res.Builder, res.FileSet, res.Expr)
		if err != nil {
			return nil, err
		}
		out.ExprJSON = data
		if res.Bag.Len() > 0 {
			out.Diagnostics = diag.FormatGolden(res.Bag.Items(), res.FileSet)
		}
	}

	if cache != nil {
		payload := DiskPayload{
			Path:        path,
			ExprJSON:    out.ExprJSON,
			Diagnostics: out.Diagnostics,
			Broken:      out.Broken,
		}
		// A write failure only costs the next run a reparse.
		_ = cache.Put(key, &payload)
	}
	return out, nil
}
