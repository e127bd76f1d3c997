package collector

// FromSources builds the fetcher set for one cycle: feed endpoints first,
// then scraped pages.
func FromSources(feeds, pages []string) []Fetcher {
	fetchers := make([]Fetcher, 0, len(feeds)+len(pages))
	for _, feedURL := range feeds {
		fetchers = append(fetchers, NewFeedFetcher(feedURL))
	}
	for _, pageURL := range pages {
		fetchers = append(fetchers, NewPageFetcher(pageURL))
	}
	return fetchers
}
