package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Expectation says whether every input line of a fixture must parse or
// must fail.
type Expectation string

const (
	ExpectationPass Expectation = "Pass"
	ExpectationFail Expectation = "Fail"
)

// Header is the TOML document inside the fixture's leading block comment.
type Header struct {
	Namespace   string      `toml:"namespace"`
	Expectation Expectation `toml:"expectation"`
}

// Fixture is one conformance file: a header plus one input per
// non-blank line.
type Fixture struct {
	Name   string
	Header Header
	Inputs []string
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, content)
}

// Parse splits a fixture into its TOML header and input lines. The file
// must open with a /* ... */ block whose body is the header document.
func Parse(name string, content []byte) (*Fixture, error) {
	text := strings.TrimLeft(string(content), " \t\r\n")
	if !strings.HasPrefix(text, "/*") {
		return nil, fmt.Errorf("conformance: fixture %s lacks a header comment", name)
	}
	end := strings.Index(text, "*/")
	if end < 0 {
		return nil, fmt.Errorf("conformance: fixture %s has an unterminated header comment", name)
	}

	var header Header
	if err := toml.Unmarshal([]byte(text[2:end]), &header); err != nil {
		return nil, fmt.Errorf("conformance: fixture %s header: %w", name, err)
	}
	if header.Namespace == "" {
		return nil, fmt.Errorf("conformance: fixture %s header lacks a namespace", name)
	}
	switch header.Expectation {
	case ExpectationPass, ExpectationFail:
	default:
		return nil, fmt.Errorf("conformance: fixture %s has unknown expectation %q", name, header.Expectation)
	}

	var inputs []string
	for _, line := range strings.Split(text[end+2:], "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("conformance: fixture %s has no inputs", name)
	}

	return &Fixture{Name: name, Header: header, Inputs: inputs}, nil
}
