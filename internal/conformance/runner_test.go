package conformance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFixturesAgainstGoldens(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.zc"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no fixtures under testdata")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			fx, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			got, err := Run(fx)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			goldenPath := strings.TrimSuffix(path, ".zc") + ".out"
			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("golden: %v", err)
			}

			if got != string(want) {
				t.Errorf("output differs from %s\ngot:\n%s\nwant:\n%s", goldenPath, got, want)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	fx, err := Parse("t", []byte("/*\nnamespace = \"ParseExpression\"\nexpectation = \"Pass\"\n*/\nx.y\n\nx.z\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fx.Header.Namespace != "ParseExpression" {
		t.Errorf("namespace = %q", fx.Header.Namespace)
	}
	if fx.Header.Expectation != ExpectationPass {
		t.Errorf("expectation = %q", fx.Header.Expectation)
	}
	if len(fx.Inputs) != 2 {
		t.Errorf("inputs = %v, want 2 lines", fx.Inputs)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no_comment", "x.y\n"},
		{"unterminated", "/*\nnamespace = \"ParseExpression\"\n"},
		{"bad_toml", "/*\nnamespace = =\n*/\nx\n"},
		{"no_namespace", "/*\nexpectation = \"Pass\"\n*/\nx\n"},
		{"bad_expectation", "/*\nnamespace = \"ParseExpression\"\nexpectation = \"Maybe\"\n*/\nx\n"},
		{"no_inputs", "/*\nnamespace = \"ParseExpression\"\nexpectation = \"Pass\"\n*/\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.name, []byte(tc.content)); err == nil {
				t.Errorf("Parse accepted malformed fixture")
			}
		})
	}
}

func TestRunRejectsUnknownNamespace(t *testing.T) {
	fx := &Fixture{
		Name:   "t",
		Header: Header{Namespace: "ParseStatement", Expectation: ExpectationPass},
		Inputs: []string{"x"},
	}
	if _, err := Run(fx); err == nil {
		t.Errorf("Run accepted unknown namespace")
	}
}

func TestRunDetectsExpectationMismatch(t *testing.T) {
	fail := &Fixture{
		Name:   "t",
		Header: Header{Namespace: "ParseExpression", Expectation: ExpectationFail},
		Inputs: []string{"x.y"},
	}
	if _, err := Run(fail); err == nil {
		t.Errorf("Run accepted a passing line in a Fail fixture")
	}

	pass := &Fixture{
		Name:   "t",
		Header: Header{Namespace: "ParseExpression", Expectation: ExpectationPass},
		Inputs: []string{"x."},
	}
	if _, err := Run(pass); err == nil {
		t.Errorf("Run accepted a failing line in a Pass fixture")
	}
}
