package telegram

import (
	"context"
	"strconv"
	"time"
)

const (
	pollTimeout  = 50 // seconds, server side
	pollBackoff  = 3 * time.Second
	updatesLimit = 100
)

// Message is an inbound text message.
type Message struct {
	ChatID string
	Text   string
}

type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
}

func (c *Client) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	var updates []update
	err := c.call(ctx, "getUpdates", map[string]any{
		"offset":          offset,
		"timeout":         pollTimeout,
		"limit":           updatesLimit,
		"allowed_updates": []string{"message"},
	}, &updates)
	return updates, err
}

// Poll long-polls for updates until ctx is done and hands every text message
// to handle in its own goroutine.
func (c *Client) Poll(ctx context.Context, handle func(ctx context.Context, msg Message)) {
	var offset int64
	for {
		if ctx.Err() != nil {
			return
		}

		updates, err := c.getUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("telegram poll failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(pollBackoff):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message == nil || u.Message.Text == "" {
				continue
			}
			msg := Message{
				ChatID: strconv.FormatInt(u.Message.Chat.ID, 10),
				Text:   u.Message.Text,
			}
			go handle(ctx, msg)
		}
	}
}
