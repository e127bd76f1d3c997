package taxonomy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// General is the implicit fallback category for texts matching no keyword.
const General = "allgemein"

// Category pairs a category name with its keyword phrases.
type Category struct {
	Name  string
	Terms []string
}

// Taxonomy is the fixed category -> keyword mapping driving classification.
// It is built once at startup and never mutated afterwards.
type Taxonomy struct {
	order []string
	terms map[string][]string
}

// New builds a taxonomy from ordered categories. Terms are lower-cased so
// matching stays case-insensitive regardless of how the data was written, and
// deduplicated per category so a phrase listed twice cannot score twice.
func New(categories []Category) *Taxonomy {
	t := &Taxonomy{
		order: make([]string, 0, len(categories)),
		terms: make(map[string][]string, len(categories)),
	}
	for _, c := range categories {
		normalized := make([]string, 0, len(c.Terms))
		seen := make(map[string]struct{}, len(c.Terms))
		for _, term := range c.Terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			normalized = append(normalized, term)
		}
		if _, dup := t.terms[c.Name]; !dup {
			t.order = append(t.order, c.Name)
		}
		t.terms[c.Name] = normalized
	}
	return t
}

// LoadFile reads a YAML `category: [terms...]` mapping. Category order in the
// file is not significant; categories are sorted by name so enumeration stays
// deterministic across loads.
func LoadFile(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}

	var m map[string][]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("taxonomy %s contains no categories", path)
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, Category{Name: name, Terms: m[name]})
	}
	return New(categories), nil
}

// Categories returns the category names in their fixed enumeration order.
func (t *Taxonomy) Categories() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Terms returns the keyword phrases of a category. Unknown categories yield
// an empty slice, never an error.
func (t *Taxonomy) Terms(category string) []string {
	terms, ok := t.terms[category]
	if !ok {
		return nil
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// Known returns every category a persisted item can carry: all taxonomy
// categories plus the implicit fallback. Used to zero-fill report stats.
func (t *Taxonomy) Known() []string {
	return append(t.Categories(), General)
}
