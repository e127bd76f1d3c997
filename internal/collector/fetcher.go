package collector

import "strings"

// DateLayout is the calendar-date form used across collection and storage.
const DateLayout = "2006-01-02"

// SummaryMaxRunes bounds the summary length of a candidate record.
const SummaryMaxRunes = 200

const (
	// maxItemsPerSource caps how many candidates one source contributes per cycle.
	maxItemsPerSource = 10

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// NewsItem is the uniform candidate record every source reduces to.
// Classification (category, tags) happens downstream in the processor.
type NewsItem struct {
	Title   string
	Source  string
	URL     string
	Date    string // YYYY-MM-DD, best effort; empty means "ingestion date"
	Summary string
}

// Fetcher abstracts one configured source (a feed endpoint or a scraped page).
type Fetcher interface {
	Name() string
	Fetch() ([]NewsItem, error)
}

// TruncateRunes cuts s to at most limit runes, so multi-byte text cannot
// overflow database column limits.
func TruncateRunes(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 || s == "" {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}
