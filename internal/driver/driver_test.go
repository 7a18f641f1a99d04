package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"zirc/internal/diag"
	"zirc/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "expr.zc", "x.y.0")

	res, err := Parse(path, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Expr.IsValid() {
		t.Fatalf("expression id is invalid")
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", res.Bag.Len())
	}
	if _, ok := res.Builder.Exprs.TupleIndex(res.Expr); !ok {
		t.Fatalf("want tuple access at the top")
	}
}

func TestParseSourceReportsErrors(t *testing.T) {
	res, err := ParseSource("inline.zc", []byte("x."), 0)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Expr.IsValid() {
		t.Fatalf("broken input produced a valid expression")
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.SynInvalidMemberToken {
			found = true
		}
	}
	if !found {
		t.Fatalf("bag lacks SYN2003")
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "toks.zc", "x.y()")

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []token.Kind{token.Ident, token.Dot, token.Ident, token.LParen, token.RParen, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Fatalf("token %d = %s, want %s", i, res.Tokens[i].Kind, k)
		}
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.zc", "x.y")
	writeFile(t, dir, "b.zc", "f(a, b)")
	writeFile(t, dir, "c.zc", "x.")
	writeFile(t, dir, "skip.txt", "not parsed")

	_, results, err := ParseDir(context.Background(), dir, 0, 2)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	// Sorted by path: a.zc, b.zc, c.zc.
	if !results[0].Expr.IsValid() || !results[1].Expr.IsValid() {
		t.Errorf("clean files failed to parse")
	}
	if results[2].Expr.IsValid() || !results[2].Bag.HasErrors() {
		t.Errorf("broken file parsed cleanly")
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, results, err := ParseDir(context.Background(), t.TempDir(), 0, 0)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := [32]byte{1, 2, 3}
	in := DiskPayload{
		Path:        "a.zc",
		ExprJSON:    []byte(`{"Identifier":{}}`),
		Diagnostics: "",
		Broken:      false,
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Path != in.Path || string(out.ExprJSON) != string(in.ExprJSON) {
		t.Fatalf("payload mismatch: %+v", out)
	}

	var miss DiskPayload
	hit, err = cache.Get([32]byte{9}, &miss)
	if err != nil || hit {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}
}

func TestCheckUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "expr.zc", "x.y")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	first, err := Check(path, cache, 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if first.FromCache || first.Broken {
		t.Fatalf("first check: %+v", first)
	}
	if len(first.ExprJSON) == 0 {
		t.Fatalf("first check produced no serialization")
	}

	second, err := Check(path, cache, 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !second.FromCache {
		t.Fatalf("second check missed the cache")
	}
	if string(second.ExprJSON) != string(first.ExprJSON) {
		t.Fatalf("cached serialization differs")
	}
}

func TestCheckBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.zc", "x.")

	res, err := Check(path, nil, 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Broken {
		t.Fatalf("broken file checked clean")
	}
	if res.Diagnostics == "" {
		t.Fatalf("broken file produced no diagnostics")
	}
}
