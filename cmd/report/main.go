package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bildungswerk/edumonitor/internal/config"
	"github.com/bildungswerk/edumonitor/internal/storage"
	"github.com/bildungswerk/edumonitor/internal/taxonomy"
)

const defaultReportDays = 7

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0969DA")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#39D353")).Bold(true)
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#58A6FF")).Underline(true)
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A371F7")).Italic(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E7681"))
)

// Console report over the accumulated history: per-category counts and
// listings for a chosen window, or an ad-hoc search with -search.
func main() {
	searchTerm := flag.String("search", "", "search title/summary instead of printing the report")
	limit := flag.Int("limit", 10, "maximum search results")
	flag.Parse()

	cfg := config.Load()

	tax := taxonomy.Default()
	if cfg.TaxonomyFile != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyFile)
		if err != nil {
			log.Fatalf("load taxonomy failed: %v", err)
		}
		tax = loaded
	}

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr, tax.Known())
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	if *searchTerm != "" {
		runSearch(store, *searchTerm, *limit)
		return
	}

	days := promptDays(os.Stdin, defaultReportDays)
	runReport(store, days)
}

// promptDays asks for the report window, re-prompting on invalid input.
// Empty input keeps the default.
func promptDays(in io.Reader, def int) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Printf("Report window in days (default %d): ", def)
		if !scanner.Scan() {
			return def
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return def
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 {
			fmt.Println("Please enter a positive number.")
			continue
		}
		return n
	}
}

func runReport(store *storage.Store, days int) {
	stats, err := store.StatsSince(days)
	if err != nil {
		log.Fatalf("report failed: %v", err)
	}

	var total int64
	names := make([]string, 0, len(stats))
	for name, count := range stats {
		total += count
		names = append(names, name)
	}
	// most items first, ties alphabetically
	sort.Slice(names, func(i, j int) bool {
		if stats[names[i]] != stats[names[j]] {
			return stats[names[i]] > stats[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Println(headerStyle.Render(fmt.Sprintf("Report: last %d days", days)))
	fmt.Printf("Total: %d items\n\n", total)

	for _, name := range names {
		if stats[name] == 0 {
			continue
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("### %s (%d items) ###", strings.ToUpper(name), stats[name])))

		items, err := store.ItemsSince(days, name, 500)
		if err != nil {
			log.Fatalf("list category %s failed: %v", name, err)
		}
		for i, it := range items {
			printItem(i+1, it)
		}
		fmt.Println()
	}

	fmt.Println(headerStyle.Render("Categories without matches"))
	empty := make([]string, 0, len(names))
	for _, name := range names {
		if stats[name] == 0 {
			empty = append(empty, name)
		}
	}
	sort.Strings(empty)
	for _, name := range empty {
		fmt.Printf("  - %s\n", name)
	}
}

func runSearch(store *storage.Store, term string, limit int) {
	items, err := store.Search(term, limit)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Search: %q (%d hits)", term, len(items))))
	for i, it := range items {
		printItem(i+1, it)
	}
}

func printItem(rank int, it storage.News) {
	fmt.Printf("%d. %s\n", rank, titleStyle.Render(it.Title))
	fmt.Printf("   %s | %s | %s\n", dimStyle.Render(it.Source), dateStyle.Render(it.Date), dimStyle.Render(it.Category))
	if len(it.Tags) > 0 {
		fmt.Printf("   %s\n", dimStyle.Render(strings.Join([]string(it.Tags), ", ")))
	}
	fmt.Printf("   %s\n", linkStyle.Render(it.URL))
}
