package token_test

import (
	"testing"

	"zirc/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  token.Kind
		ok    bool
	}{
		{"circuit", token.KwCircuit, true},
		{"function", token.KwFunction, true},
		{"self", token.KwSelf, true},
		{"Self", token.KwBigSelf, true},
		{"u32", token.KwU32, true},
		{"field", token.KwField, true},
		{"Circuit", 0, false}, // case sensitive
		{"x", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			k, ok := token.LookupKeyword(tt.ident)
			if ok != tt.ok {
				t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			}
			if ok && k != tt.kind {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, k, tt.kind)
			}
		})
	}
}
