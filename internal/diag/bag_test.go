package diag

import (
	"testing"

	"zirc/internal/source"
)

func TestBag_AddAndCap(t *testing.T) {
	b := NewBag(2)

	if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "two")) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(NewError(SynUnexpectedToken, source.Span{}, "three")) {
		t.Fatal("Add past the cap should fail")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestBag_ZeroCapIsUnlimited(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 100; i++ {
		if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "x")) {
			t.Fatalf("Add %d failed with an unlimited bag", i)
		}
	}
	if b.Len() != 100 {
		t.Errorf("Len() = %d, want 100", b.Len())
	}
}

func TestBag_HasErrors(t *testing.T) {
	b := NewBag(8)
	if b.HasErrors() {
		t.Fatal("empty bag should have no errors")
	}

	b.Add(New(SevWarning, SynInfo, source.Span{}, "warn"))
	if b.HasErrors() {
		t.Fatal("warning-only bag should have no errors")
	}
	if !b.HasWarnings() {
		t.Fatal("expected HasWarnings")
	}

	b.Add(NewError(SynInvalidMemberToken, source.Span{}, "err"))
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	b := NewBag(8)
	sp := func(start uint32) source.Span { return source.Span{File: 0, Start: start, End: start + 1} }

	b.Add(NewError(SynInvalidIndex, sp(5), "later"))
	b.Add(NewError(SynUnexpectedToken, sp(1), "earlier"))
	b.Add(NewError(SynUnexpectedToken, sp(1), "earlier"))

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("after dedup len = %d, want 2", len(items))
	}
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Errorf("unexpected order: %q then %q", items[0].Message, items[1].Message)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SynUnterminatedGroup, "SYN2002"},
		{SynInvalidMemberToken, "SYN2003"},
		{SynInvalidIndex, "SYN2004"},
		{IOReadFile, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("", []byte("x."))

	diags := []Diagnostic{
		NewError(SynInvalidMemberToken, source.Span{File: id, Start: 1, End: 2}, "expected member name or tuple index after '.'"),
	}
	got := FormatGolden(diags, fs)
	want := "ERROR SYN2003 1:2: expected member name or tuple index after '.'\n"
	if got != want {
		t.Errorf("FormatGolden = %q, want %q", got, want)
	}
}
