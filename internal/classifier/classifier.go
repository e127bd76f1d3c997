package classifier

import (
	"strings"

	"github.com/bildungswerk/edumonitor/internal/taxonomy"
)

// MaxTags bounds the tag set persisted per item.
const MaxTags = 5

// Classifier scores free text against a keyword taxonomy. It is pure and
// deterministic: identical text and taxonomy always yield identical results.
type Classifier struct {
	tax *taxonomy.Taxonomy
}

func New(tax *taxonomy.Taxonomy) *Classifier {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Classifier{tax: tax}
}

// Classify returns the category whose keywords have the most distinct
// substring hits in text. Ties go to the lexicographically smallest category
// name so the result does not depend on enumeration order. Zero hits yield
// the implicit fallback category.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)

	best := taxonomy.General
	bestScore := 0
	for _, category := range c.tax.Categories() {
		score := 0
		for _, term := range c.tax.Terms(category) {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && category < best) {
			best = category
			bestScore = score
		}
	}
	return best
}

// ExtractTags returns the first MaxTags distinct keyword phrases found in
// text, enumerated in taxonomy order (categories first, then their terms).
func (c *Classifier) ExtractTags(text string) []string {
	lower := strings.ToLower(text)

	tags := make([]string, 0, MaxTags)
	seen := make(map[string]struct{})
	for _, category := range c.tax.Categories() {
		for _, term := range c.tax.Terms(category) {
			if _, dup := seen[term]; dup {
				continue
			}
			if strings.Contains(lower, term) {
				seen[term] = struct{}{}
				tags = append(tags, term)
				if len(tags) == MaxTags {
					return tags
				}
			}
		}
	}
	return tags
}
