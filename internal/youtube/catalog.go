package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/MikeSquared-Agency/mitra/internal/catalog"
)

const pageSize = 50

// UploadsPlaylistID maps a channel ID (UC...) to its uploads playlist (UU...).
// Anything else is assumed to already be a playlist ID.
func UploadsPlaylistID(channelID string) string {
	if strings.HasPrefix(channelID, "UC") {
		return "UU" + channelID[2:]
	}
	return channelID
}

// Catalog lists a playlist through the YouTube Data API. Durations are not
// part of playlist items, so every page is followed by a videos.list lookup.
type Catalog struct {
	svc    *yt.Service
	logger *slog.Logger
}

func NewCatalog(ctx context.Context, apiKey string, logger *slog.Logger, opts ...option.ClientOption) (*Catalog, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Catalog{svc: svc, logger: logger}, nil
}

func (c *Catalog) ListItems(ctx context.Context, playlistID, cursor string) (catalog.Page, error) {
	call := c.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		Context(ctx)
	if cursor != "" {
		call = call.PageToken(cursor)
	}

	resp, err := call.Do()
	if err != nil {
		return catalog.Page{}, fmt.Errorf("playlist items: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, it := range resp.Items {
		if id := videoID(it); id != "" {
			ids = append(ids, id)
		}
	}

	durations, err := c.durations(ctx, ids)
	if err != nil {
		return catalog.Page{}, err
	}

	page := catalog.Page{NextCursor: resp.NextPageToken}
	for _, it := range resp.Items {
		id := videoID(it)
		if id == "" {
			continue
		}
		page.Items = append(page.Items, catalog.RawItem{
			ID:           id,
			Title:        it.Snippet.Title,
			PublishedAt:  publishedAt(it),
			DurationCode: durations[id],
		})
	}

	c.logger.Debug("catalog page listed",
		"playlist_id", playlistID,
		"items", len(page.Items),
		"has_next", page.NextCursor != "",
	)
	return page, nil
}

func (c *Catalog) durations(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	resp, err := c.svc.Videos.List([]string{"contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}
	for _, v := range resp.Items {
		if v.ContentDetails != nil {
			out[v.Id] = v.ContentDetails.Duration
		}
	}
	return out, nil
}

func videoID(it *yt.PlaylistItem) string {
	if it.ContentDetails != nil && it.ContentDetails.VideoId != "" {
		return it.ContentDetails.VideoId
	}
	if it.Snippet != nil && it.Snippet.ResourceId != nil {
		return it.Snippet.ResourceId.VideoId
	}
	return ""
}

// publishedAt prefers the video's own publish time over the time it was
// added to the playlist. Unparseable values yield the zero time.
func publishedAt(it *yt.PlaylistItem) time.Time {
	raw := ""
	if it.ContentDetails != nil {
		raw = it.ContentDetails.VideoPublishedAt
	}
	if raw == "" && it.Snippet != nil {
		raw = it.Snippet.PublishedAt
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
