package catalog

import (
	"context"
	"time"
)

// Item is a video discovered in the channel catalog.
type Item struct {
	ID              string
	Title           string
	URL             string
	DurationMinutes float64
	PublishedAt     time.Time
}

// RawItem is one catalog entry as the provider reports it.
type RawItem struct {
	ID           string
	Title        string
	PublishedAt  time.Time
	DurationCode string // ISO-8601 duration, e.g. "PT1H2M3S"
}

// Page is one page of catalog results. An empty NextCursor means the last page.
type Page struct {
	Items      []RawItem
	NextCursor string
}

// Provider lists a channel's videos page by page.
type Provider interface {
	ListItems(ctx context.Context, sourceID, cursor string) (Page, error)
}

// WatchURL derives the public video link from its ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
