package collector

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const feedClientTimeout = 15 * time.Second

// FeedFetcher reads one RSS/Atom endpoint and maps its newest entries into
// candidate records.
type FeedFetcher struct {
	FeedURL string
	parser  *gofeed.Parser
}

func NewFeedFetcher(feedURL string) *FeedFetcher {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: feedClientTimeout}
	p.UserAgent = browserUserAgent
	return &FeedFetcher{FeedURL: feedURL, parser: p}
}

func (f *FeedFetcher) Name() string {
	return "feed:" + f.FeedURL
}

// Fetch parses the endpoint and returns up to 10 entries. Errors are returned
// as-is; the caller isolates them to this one source.
func (f *FeedFetcher) Fetch() ([]NewsItem, error) {
	feed, err := f.parser.ParseURL(f.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.FeedURL, err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = f.FeedURL
	}

	entries := feed.Items
	if len(entries) > maxItemsPerSource {
		entries = entries[:maxItemsPerSource]
	}

	out := make([]NewsItem, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}
		out = append(out, NewsItem{
			Title:   strings.TrimSpace(entry.Title),
			Source:  source,
			URL:     strings.TrimSpace(entry.Link),
			Date:    entryDate(entry),
			Summary: TruncateRunes(summary, SummaryMaxRunes),
		})
	}
	return out, nil
}

// entryDate resolves the publication date: published, then updated, then the
// ingestion day when the feed exposes neither.
func entryDate(entry *gofeed.Item) string {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed.Format(DateLayout)
	}
	if entry.UpdatedParsed != nil {
		return entry.UpdatedParsed.Format(DateLayout)
	}
	return time.Now().Format(DateLayout)
}
