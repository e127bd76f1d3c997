package main

import (
	"log"

	"github.com/bildungswerk/edumonitor/internal/classifier"
	"github.com/bildungswerk/edumonitor/internal/collector"
	"github.com/bildungswerk/edumonitor/internal/config"
	"github.com/bildungswerk/edumonitor/internal/processor"
	"github.com/bildungswerk/edumonitor/internal/scheduler"
	"github.com/bildungswerk/edumonitor/internal/storage"
	"github.com/bildungswerk/edumonitor/internal/taxonomy"
)

// Runs exactly one collection cycle and exits: suited for manual triggering
// and external schedulers.
func main() {
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

	fetchers := collector.FromSources(cfg.Feeds, cfg.Pages)
	p := processor.New(classifier.New(tax))

	s, err := scheduler.New(cfg.CronSpec, fetchers, p, store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}

	s.RunOnce()
}
