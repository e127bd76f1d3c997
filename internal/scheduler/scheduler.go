package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bildungswerk/edumonitor/internal/collector"
	"github.com/bildungswerk/edumonitor/internal/processor"
)

// Saver is the slice of the store a collection cycle needs.
type Saver interface {
	InsertNew(items []processor.Item) (int, error)
}

// Scheduler drives recurring collection cycles. Cycles never overlap: a slow
// cycle makes the next tick skip, so the store always sees a single writer.
type Scheduler struct {
	cron      *cron.Cron
	fetchers  []collector.Fetcher
	processor *processor.Processor
	store     Saver
}

func New(spec string, fetchers []collector.Fetcher, p *processor.Processor, store Saver) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	s := &Scheduler{
		cron:      c,
		fetchers:  fetchers,
		processor: p,
		store:     store,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs the first cycle immediately and synchronously, then hands off to
// the cron spec.
func (s *Scheduler) Start() {
	s.runOnce()
	s.cron.Start()
}

// Stop halts scheduling and waits for a cycle in flight to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunOnce executes a single cycle, for manual triggering.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	start := time.Now()
	log.Printf("[%s] start collection cycle...", start.Format("2006-01-02 15:04:05"))

	items := s.collectAll()
	processed := s.processor.Process(items)
	if len(processed) == 0 {
		log.Printf("collection cycle done, no usable items (fetched=%d)", len(items))
		return
	}

	inserted, err := s.store.InsertNew(processed)
	if err != nil {
		// The batch retries wholesale on the next cycle; URLs already
		// written are absorbed by the uniqueness constraint.
		log.Printf("persist cycle error: %v", err)
		return
	}

	log.Printf("-> %d new items added (fetched=%d, took %s)", inserted, len(items), time.Since(start).Round(time.Millisecond))
}

// collectAll fans out to every configured source and merges the results.
// One failing source logs a warning and contributes nothing; it never stops
// the others. Persistence happens after the merge, so fetch concurrency does
// not introduce a second writer.
func (s *Scheduler) collectAll() []collector.NewsItem {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		all []collector.NewsItem
	)

	for _, f := range s.fetchers {
		fetcher := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := fetcher.Fetch()
			if err != nil {
				log.Printf("warn: fetch %s: %v", fetcher.Name(), err)
				return
			}
			if len(items) == 0 {
				log.Printf("fetch %s got 0 items", fetcher.Name())
				return
			}
			mu.Lock()
			all = append(all, items...)
			mu.Unlock()
		}()
	}

	wg.Wait()
	return all
}
