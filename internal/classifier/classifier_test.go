package classifier

import (
	"strings"
	"testing"

	"github.com/bildungswerk/edumonitor/internal/taxonomy"
)

func TestClassifyKeywordHit(t *testing.T) {
	cls := New(taxonomy.New([]taxonomy.Category{
		{Name: "ki_bildung", Terms: []string{"chatgpt"}},
		{Name: "hochschule", Terms: []string{"universitaet"}},
	}))

	got := cls.Classify("Schulen diskutieren ChatGPT im Unterricht")
	if got != "ki_bildung" {
		t.Fatalf("Classify = %q, want %q", got, "ki_bildung")
	}
}

func TestClassifyNoMatchFallsBack(t *testing.T) {
	cls := New(taxonomy.New([]taxonomy.Category{
		{Name: "hochschule", Terms: []string{"universitaet"}},
	}))

	if got := cls.Classify("Nichts Relevantes hier"); got != taxonomy.General {
		t.Fatalf("Classify = %q, want fallback %q", got, taxonomy.General)
	}
}

func TestClassifyPicksHighestScore(t *testing.T) {
	cls := New(taxonomy.New([]taxonomy.Category{
		{Name: "digitalisierung", Terms: []string{"digital", "e-learning", "lernplattform"}},
		{Name: "hochschule", Terms: []string{"studium"}},
	}))

	text := "Digital lernen: die Lernplattform ersetzt das klassische Studium"
	if got := cls.Classify(text); got != "digitalisierung" {
		t.Fatalf("Classify = %q, want %q", got, "digitalisierung")
	}
}

func TestClassifyCountsRepeatedTermsOnce(t *testing.T) {
	// A term listed twice in the data must not count as two hits.
	cls := New(taxonomy.New([]taxonomy.Category{
		{Name: "aaa", Terms: []string{"ki", "ki"}},
		{Name: "bbb", Terms: []string{"schule", "lernen"}},
	}))

	if got := cls.Classify("ki in der schule: lernen neu gedacht"); got != "bbb" {
		t.Fatalf("Classify = %q, want %q", got, "bbb")
	}
}

func TestClassifyTieBreaksLexicographically(t *testing.T) {
	// taxonomy order deliberately reversed relative to the names
	cls := New(taxonomy.New([]taxonomy.Category{
		{Name: "zebra", Terms: []string{"bildung"}},
		{Name: "alpha", Terms: []string{"unterricht"}},
	}))

	if got := cls.Classify("Bildung und Unterricht"); got != "alpha" {
		t.Fatalf("tie should go to smallest name, got %q", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	cls := New(nil) // built-in taxonomy
	text := "Weiterbildung und Foerderung an der Volkshochschule"

	first := cls.Classify(text)
	for i := 0; i < 50; i++ {
		if got := cls.Classify(text); got != first {
			t.Fatalf("Classify not deterministic: %q vs %q", first, got)
		}
	}
}

func TestExtractTagsBoundedAndVerbatim(t *testing.T) {
	cls := New(nil)
	text := "Digitalisierung, E-Learning und KI: Weiterbildung, Foerderung, Inklusion und Nachhaltigkeit an der Hochschule"

	tags := cls.ExtractTags(text)
	if len(tags) != MaxTags {
		t.Fatalf("expected %d tags, got %d (%v)", MaxTags, len(tags), tags)
	}

	lower := strings.ToLower(text)
	seen := map[string]bool{}
	for _, tag := range tags {
		if !strings.Contains(lower, tag) {
			t.Fatalf("tag %q not present in input", tag)
		}
		if seen[tag] {
			t.Fatalf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
}

func TestExtractTagsStableOrder(t *testing.T) {
	cls := New(taxonomy.New([]taxonomy.Category{
		{Name: "b", Terms: []string{"zwei", "drei"}},
		{Name: "a", Terms: []string{"eins"}},
	}))

	tags := cls.ExtractTags("eins zwei drei")
	// taxonomy order, not alphabetical: category b first, then a
	want := []string{"zwei", "drei", "eins"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestExtractTagsEmptyInput(t *testing.T) {
	cls := New(nil)
	if tags := cls.ExtractTags(""); len(tags) != 0 {
		t.Fatalf("expected no tags for empty input, got %v", tags)
	}
}
