package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bildungswerk/edumonitor/internal/collector"
	"github.com/bildungswerk/edumonitor/internal/processor"
)

// News is a persisted, classified, deduplicated item. Rows are immutable
// after insertion; the only lifecycle event is creation.
type News struct {
	ID       uint                        `gorm:"primaryKey" json:"id"`
	Title    string                      `gorm:"size:512" json:"title"`
	Source   string                      `gorm:"size:256;index" json:"source"`
	URL      string                      `gorm:"size:1024;uniqueIndex" json:"url"`
	Date     string                      `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Category string                      `gorm:"size:64;index" json:"category"`
	Summary  string                      `gorm:"size:600" json:"summary"`
	Tags     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client

	// categories every report must list, even at count 0
	categories []string
}

const readCacheTTL = 5 * time.Minute

// NewStore opens Postgres, migrates the schema and connects the Redis read
// cache. Redis being down is a warning, not a startup failure.
func NewStore(dsn, redisAddr string, categories []string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&News{}); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb, categories: categories}, nil
}

// toValidUTF8 normalizes scraped text so Postgres never sees an invalid byte
// sequence (association pages occasionally serve mixed encodings).
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunesDB truncates by rune count as a final guard against column
// overflow, independent of what the processor already did.
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

// InsertNew persists a batch, relying on the URL uniqueness constraint for
// deduplication: an already-known URL is skipped silently. Returns the number
// of rows actually inserted. A connection-level error aborts the batch; the
// next cycle retries the whole set.
func (s *Store) InsertNew(items []processor.Item) (int, error) {
	inserted := 0
	for _, it := range items {
		n := &News{
			Title:    truncateRunesDB(toValidUTF8(it.Title), 512),
			Source:   truncateRunesDB(toValidUTF8(it.Source), 256),
			URL:      it.URL,
			Date:     it.Date,
			Category: it.Category,
			Summary:  truncateRunesDB(toValidUTF8(it.Summary), 600),
			Tags:     datatypes.NewJSONSlice(it.Tags),
		}

		res := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoNothing: true,
		}).Create(n)
		if res.Error != nil {
			return inserted, fmt.Errorf("insert %s: %w", it.URL, res.Error)
		}
		inserted += int(res.RowsAffected)
	}
	return inserted, nil
}

// StatsSince counts items with date >= today-days, grouped by category.
// Every known category appears in the result, zero-filled if absent; rows
// with categories outside the current taxonomy are kept so the counts always
// sum to the total. Results are cached briefly in Redis.
func (s *Store) StatsSince(days int) (map[string]int64, error) {
	cutoff := cutoffDate(days)

	ctx := context.Background()
	cacheKey := fmt.Sprintf("edu:stats:%d:%s", days, cutoff)
	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached map[string]int64
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var rows []struct {
		Category string
		Count    int64
	}
	err := s.DB.Model(&News{}).
		Select("category, COUNT(*) AS count").
		Where("date >= ?", cutoff).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("stats since %s: %w", cutoff, err)
	}

	stats := mergeStats(rows, s.categories)

	if s.Redis != nil {
		if bs, err := json.Marshal(stats); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, readCacheTTL).Err()
		}
	}
	return stats, nil
}

// ItemsSince lists items with date >= today-days, newest first, optionally
// restricted to one category.
func (s *Store) ItemsSince(days int, category string, limit int) ([]News, error) {
	if limit <= 0 || limit > 1000 {
		limit = 20
	}

	var list []News
	db := s.DB.Model(&News{}).Where("date >= ?", cutoffDate(days))
	if category != "" {
		db = db.Where("category = ?", category)
	}
	err := db.Order("date DESC").Order("id DESC").Limit(limit).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Search matches term case-insensitively against title or summary, newest
// first. Results are cached briefly since the report CLI and the API tend to
// repeat the same queries.
func (s *Store) Search(term string, limit int) ([]News, error) {
	if limit <= 0 || limit > 1000 {
		limit = 10
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("edu:search:%s:%d", term, limit)
	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []News
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	var list []News
	err := s.DB.Model(&News{}).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(summary) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("date DESC").Order("id DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && len(list) > 0 {
		if bs, err := json.Marshal(list); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, readCacheTTL).Err()
		}
	}
	return list, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in a user-supplied search term so
// "100%" matches the literal text, not every row starting with "100".
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// mergeStats zero-fills the known categories and overlays the grouped counts.
func mergeStats(rows []struct {
	Category string
	Count    int64
}, known []string) map[string]int64 {
	stats := make(map[string]int64, len(known))
	for _, c := range known {
		stats[c] = 0
	}
	for _, r := range rows {
		stats[r.Category] = r.Count
	}
	return stats
}

func cutoffDate(days int) string {
	if days < 0 {
		days = 0
	}
	return time.Now().AddDate(0, 0, -days).Format(collector.DateLayout)
}
