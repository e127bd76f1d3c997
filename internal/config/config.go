package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppPort string

	PostgresDSN string
	RedisAddr   string

	CronSpec string

	BasicAuthUser string
	BasicAuthPass string

	// TaxonomyFile optionally replaces the built-in category set.
	TaxonomyFile string

	// Feeds and Pages are the sources one collection cycle visits.
	Feeds []string
	Pages []string
}

// sourcesFile is the YAML shape of an optional SOURCES_FILE.
type sourcesFile struct {
	Feeds []string `yaml:"feeds"`
	Pages []string `yaml:"pages"`
}

// Load reads env vars with defaults and, when SOURCES_FILE is set, replaces
// the default source lists with the file's contents.
func Load() *Config {
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "9000"),
		PostgresDSN:   getEnv("POSTGRES_DSN", "host=localhost user=edumonitor password=edumonitor dbname=edumonitor port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		CronSpec:      getEnv("CRON_SPEC", "@every 60m"),
		BasicAuthUser: getEnv("APP_BASIC_USER", ""),
		BasicAuthPass: getEnv("APP_BASIC_PASS", ""),
		TaxonomyFile:  getEnv("TAXONOMY_FILE", ""),
		Feeds:         defaultFeeds(),
		Pages:         defaultPages(),
	}

	if path := os.Getenv("SOURCES_FILE"); path != "" {
		if err := cfg.loadSources(path); err != nil {
			log.Printf("warn: sources file %s: %v (keeping defaults)", path, err)
		}
	}

	log.Printf("config loaded: port=%s cron=%s feeds=%d pages=%d", cfg.AppPort, cfg.CronSpec, len(cfg.Feeds), len(cfg.Pages))
	return cfg
}

func (c *Config) loadSources(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sf sourcesFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(sf.Feeds) == 0 && len(sf.Pages) == 0 {
		return fmt.Errorf("no sources defined")
	}
	c.Feeds = sf.Feeds
	c.Pages = sf.Pages
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// defaultFeeds covers the German education press plus Google News queries for
// adult-education topics.
func defaultFeeds() []string {
	return []string{
		"https://www.bildungsserver.de/news.rss",
		"https://www.news4teachers.de/feed/",
		"https://deutsches-schulportal.de/feed/",
		"https://www.bildungsspiegel.de/feed/",
		"https://www.wissenschaft.de/feed/",
		"https://www.bibb.de/de/pressemitteilungen_3.rss",
		"https://www.e-teaching.org/news/rss",
		"https://www.die-bonn.de/id/37623/rss.xml",
		"https://news.google.com/rss/search?q=Volkshochschule+OR+VHS+when:7d&hl=de&gl=DE&ceid=DE:de",
		"https://news.google.com/rss/search?q=%22katholische+erwachsenenbildung%22+OR+KEB+when:7d&hl=de&gl=DE&ceid=DE:de",
		"https://news.google.com/rss/search?q=%22evangelische+erwachsenenbildung%22+when:7d&hl=de&gl=DE&ceid=DE:de",
		"https://news.google.com/rss/search?q=Weiterbildung+Deutschland+when:7d&hl=de&gl=DE&ceid=DE:de",
	}
}

// defaultPages are association sites without usable feeds.
func defaultPages() []string {
	return []string{
		"https://www.keb-deutschland.de/aktuelles/",
		"https://www.dvv-vhs.de/startseite/",
		"https://www.deae.de/startseite/",
	}
}
