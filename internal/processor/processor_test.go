package processor

import (
	"strings"
	"testing"
	"time"

	"github.com/bildungswerk/edumonitor/internal/classifier"
	"github.com/bildungswerk/edumonitor/internal/collector"
	"github.com/bildungswerk/edumonitor/internal/taxonomy"
)

func testProcessor() *Processor {
	tax := taxonomy.New([]taxonomy.Category{
		{Name: "ki_bildung", Terms: []string{"chatgpt", "ki-tools"}},
		{Name: "hochschule", Terms: []string{"universitaet"}},
	})
	return New(classifier.New(tax))
}

func TestProcessClassifiesAndTags(t *testing.T) {
	p := testProcessor()

	out := p.Process([]collector.NewsItem{
		{
			Title:   "  Schulen diskutieren ChatGPT  ",
			Source:  "Testquelle",
			URL:     "https://example.org/a",
			Date:    "2025-06-10",
			Summary: "Neue KI-Tools im Unterricht.",
		},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	it := out[0]
	if it.Title != "Schulen diskutieren ChatGPT" {
		t.Fatalf("title not trimmed: %q", it.Title)
	}
	if it.Category != "ki_bildung" {
		t.Fatalf("unexpected category: %q", it.Category)
	}
	if len(it.Tags) != 2 || it.Tags[0] != "chatgpt" || it.Tags[1] != "ki-tools" {
		t.Fatalf("unexpected tags: %v", it.Tags)
	}
	if it.Date != "2025-06-10" {
		t.Fatalf("date changed: %q", it.Date)
	}
}

func TestProcessDeduplicatesByURL(t *testing.T) {
	p := testProcessor()

	out := p.Process([]collector.NewsItem{
		{Title: "Erste Fassung", URL: "https://example.org/1"},
		{Title: "Zweite Fassung, gleiche URL", URL: "https://example.org/1"},
		{Title: "Andere Meldung", URL: "https://example.org/2"},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 items after dedupe, got %d", len(out))
	}
	if out[0].Title != "Erste Fassung" {
		t.Fatalf("first occurrence should win, got %q", out[0].Title)
	}
}

func TestProcessDropsItemsWithoutURL(t *testing.T) {
	p := testProcessor()

	out := p.Process([]collector.NewsItem{
		{Title: "Ohne URL"},
		{Title: "Mit URL", URL: "https://example.org/x"},
	})

	if len(out) != 1 || out[0].URL != "https://example.org/x" {
		t.Fatalf("items without URL should be dropped: %+v", out)
	}
}

func TestProcessFillsMissingDate(t *testing.T) {
	p := testProcessor()

	out := p.Process([]collector.NewsItem{
		{Title: "Ohne Datum", URL: "https://example.org/x"},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if out[0].Date != time.Now().Format(collector.DateLayout) {
		t.Fatalf("missing date should default to today, got %q", out[0].Date)
	}
}

func TestProcessTruncatesLongSummaries(t *testing.T) {
	p := testProcessor()
	long := strings.Repeat("ü", collector.SummaryMaxRunes+100)

	out := p.Process([]collector.NewsItem{
		{Title: "Lange Meldung", URL: "https://example.org/x", Summary: long},
	})

	if n := len([]rune(out[0].Summary)); n != collector.SummaryMaxRunes {
		t.Fatalf("summary length = %d runes, want %d", n, collector.SummaryMaxRunes)
	}
}

func TestProcessUnmatchedTextGetsFallbackCategory(t *testing.T) {
	p := testProcessor()

	out := p.Process([]collector.NewsItem{
		{Title: "Voellig anderes Thema", URL: "https://example.org/x"},
	})

	if out[0].Category != taxonomy.General {
		t.Fatalf("unmatched text should land in %q, got %q", taxonomy.General, out[0].Category)
	}
	if len(out[0].Tags) != 0 {
		t.Fatalf("unmatched text should carry no tags, got %v", out[0].Tags)
	}
}
