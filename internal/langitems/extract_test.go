package langitems

import (
	"testing"

	"ember/internal/ast"
	"ember/internal/source"
)

func attrOf(in *source.Interner, key, value string) ast.Attr {
	a := ast.Attr{Key: in.Intern(key)}
	if value != "" {
		a.Value = in.Intern(value)
	}
	return a
}

func TestExtractFirstMatchWins(t *testing.T) {
	in := source.NewInterner()
	attrs := []ast.Attr{
		attrOf(in, "lang", "drop"),
		attrOf(in, "lang", "eq"),
	}

	value, ok := ExtractLangName(in, attrs)
	if !ok {
		t.Fatal("extract must find the marker")
	}
	if value != "drop" {
		t.Errorf("extract = %q, want %q (first match wins)", value, "drop")
	}
}

func TestExtractSkipsOtherKeys(t *testing.T) {
	in := source.NewInterner()
	attrs := []ast.Attr{
		attrOf(in, "deprecated", "soon"),
		attrOf(in, "lang", "add"),
	}

	value, ok := ExtractLangName(in, attrs)
	if !ok || value != "add" {
		t.Errorf("extract = %q, ok=%v, want add", value, ok)
	}
}

func TestExtractNoMarker(t *testing.T) {
	in := source.NewInterner()
	attrs := []ast.Attr{
		attrOf(in, "pure", ""),
		attrOf(in, "packed", ""),
	}

	if _, ok := ExtractLangName(in, attrs); ok {
		t.Error("extract must miss when no lang annotation exists")
	}
	if _, ok := ExtractLangName(in, nil); ok {
		t.Error("extract must miss on an empty annotation list")
	}
}

func TestExtractValuelessMarkerSkipped(t *testing.T) {
	in := source.NewInterner()
	attrs := []ast.Attr{
		attrOf(in, "lang", ""), // bare @lang, not a key/value pair
		attrOf(in, "lang", "sub"),
	}

	value, ok := ExtractLangName(in, attrs)
	if !ok || value != "sub" {
		t.Errorf("valueless marker must be skipped, got %q ok=%v", value, ok)
	}
}
