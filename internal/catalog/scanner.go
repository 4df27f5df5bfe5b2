package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Filter decides which catalog items are worth ingesting.
type Filter struct {
	MinYear            int
	MinDurationMinutes float64
}

// Accepts reports whether the item passes both the recency and duration checks.
func (f Filter) Accepts(it Item) bool {
	return it.PublishedAt.Year() >= f.MinYear && it.DurationMinutes >= f.MinDurationMinutes
}

// Scanner walks every catalog page and returns the items passing its filter.
type Scanner struct {
	provider Provider
	filter   Filter
	logger   *slog.Logger
}

func NewScanner(p Provider, f Filter, logger *slog.Logger) *Scanner {
	return &Scanner{provider: p, filter: f, logger: logger}
}

// Scan paginates until the provider reports no further cursor. A provider
// error aborts the whole scan; nothing partial is returned.
func (s *Scanner) Scan(ctx context.Context, sourceID string) ([]Item, error) {
	var (
		items  []Item
		cursor string
		pages  int
		seen   int
	)

	for {
		page, err := s.provider.ListItems(ctx, sourceID, cursor)
		if err != nil {
			return nil, fmt.Errorf("list catalog page %d: %w", pages+1, err)
		}
		pages++

		for _, raw := range page.Items {
			seen++
			it := Item{
				ID:              raw.ID,
				Title:           raw.Title,
				URL:             WatchURL(raw.ID),
				DurationMinutes: ParseDuration(raw.DurationCode),
				PublishedAt:     raw.PublishedAt,
			}
			if s.filter.Accepts(it) {
				items = append(items, it)
			}
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	s.logger.Info("catalog scanned",
		"source_id", sourceID,
		"pages", pages,
		"seen", seen,
		"accepted", len(items),
	)
	return items, nil
}
