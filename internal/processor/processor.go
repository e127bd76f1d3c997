package processor

import (
	"strings"
	"time"

	"github.com/bildungswerk/edumonitor/internal/classifier"
	"github.com/bildungswerk/edumonitor/internal/collector"
)

// Item is the classified record handed to the storage layer.
type Item struct {
	Title    string
	Source   string
	URL      string
	Date     string // YYYY-MM-DD
	Category string
	Summary  string
	Tags     []string
}

// Processor normalizes candidate records and attaches their classification.
type Processor struct {
	cls *classifier.Classifier
}

func New(cls *classifier.Classifier) *Processor {
	return &Processor{cls: cls}
}

// Process drops unusable candidates, dedups within the batch by URL, bounds
// the summary length, and classifies title plus summary. Cross-cycle dedup
// stays with the store's URL uniqueness constraint.
func (p *Processor) Process(items []collector.NewsItem) []Item {
	out := make([]Item, 0, len(items))
	seen := make(map[string]struct{})

	for _, it := range items {
		url := strings.TrimSpace(it.URL)
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}

		date := it.Date
		if date == "" {
			date = time.Now().Format(collector.DateLayout)
		}

		title := strings.TrimSpace(it.Title)
		summary := collector.TruncateRunes(it.Summary, collector.SummaryMaxRunes)
		fulltext := title + " " + summary

		out = append(out, Item{
			Title:    title,
			Source:   it.Source,
			URL:      url,
			Date:     date,
			Category: p.cls.Classify(fulltext),
			Summary:  summary,
			Tags:     p.cls.ExtractTags(fulltext),
		})
	}

	return out
}
