package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"zirc/internal/ast"
	"zirc/internal/diag"
	"zirc/internal/lexer"
	"zirc/internal/parser"
	"zirc/internal/source"
)

// ParseDirResult is the outcome for one file of a directory parse.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Expr    ast.ExprID
	Bag     *diag.Bag
}

// listSourceFiles returns all *.zc files under dir, sorted for a
// deterministic result order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".zc") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every *.zc file under dir in parallel. Files are
// loaded into the shared FileSet up front; each worker only touches its
// own result slot, so no locking is needed past the load phase.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOReadFile, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			lx := lexer.New(file, lexer.Options{Reporter: &lexer.ReporterAdapter{Bag: bag}})
			builder := ast.NewBuilder(ast.Hints{})
			res := parser.ParseExpression(fileSet, lx, builder, parser.Options{
				Reporter: &diag.BagReporter{Bag: bag},
			})

			results[i] = ParseDirResult{
				Path:    path,
				FileID:  fileID,
				Builder: builder,
				Expr:    res.Expr,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
