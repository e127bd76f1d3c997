package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewNormalizesTerms(t *testing.T) {
	tax := New([]Category{
		{Name: "ki_bildung", Terms: []string{"ChatGPT", "  KI-Tools ", ""}},
	})

	terms := tax.Terms("ki_bildung")
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %d (%v)", len(terms), terms)
	}
	if terms[0] != "chatgpt" || terms[1] != "ki-tools" {
		t.Fatalf("terms not lower-cased/trimmed: %v", terms)
	}
}

func TestNewDedupesTermsWithinCategory(t *testing.T) {
	tax := New([]Category{
		{Name: "hochschule", Terms: []string{"Universität", "universität", " campus", "campus"}},
	})

	terms := tax.Terms("hochschule")
	if len(terms) != 2 {
		t.Fatalf("expected 2 distinct terms, got %v", terms)
	}
	if terms[0] != "universität" || terms[1] != "campus" {
		t.Fatalf("unexpected terms: %v", terms)
	}
}

func TestTermsUnknownCategory(t *testing.T) {
	tax := Default()
	if terms := tax.Terms("does_not_exist"); len(terms) != 0 {
		t.Fatalf("unknown category should yield no terms, got %v", terms)
	}
}

func TestKnownIncludesFallback(t *testing.T) {
	tax := New([]Category{{Name: "a", Terms: []string{"x"}}})

	known := tax.Known()
	if len(known) != 2 {
		t.Fatalf("expected 2 known categories, got %v", known)
	}
	if known[len(known)-1] != General {
		t.Fatalf("fallback category missing from Known: %v", known)
	}
}

func TestDefaultCategoriesStable(t *testing.T) {
	a := Default().Categories()
	b := Default().Categories()

	if len(a) != 15 {
		t.Fatalf("expected 15 built-in categories, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("category order not stable at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestLoadFileSortsCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	yaml := "zuletzt:\n  - foo\nanfang:\n  - Bar\n  - baz\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write taxonomy file: %v", err)
	}

	tax, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	cats := tax.Categories()
	if len(cats) != 2 || cats[0] != "anfang" || cats[1] != "zuletzt" {
		t.Fatalf("categories not sorted by name: %v", cats)
	}
	terms := tax.Terms("anfang")
	if len(terms) != 2 || terms[0] != "bar" {
		t.Fatalf("unexpected terms: %v", terms)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte(""), 0o644); err != nil {
		t.Fatalf("write empty file: %v", err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Fatalf("expected error for empty taxonomy")
	}
}
