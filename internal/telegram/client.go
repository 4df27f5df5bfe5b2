package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const defaultAPIURL = "https://api.telegram.org"

// maxMessageRunes is Telegram's limit for a single sendMessage text.
const maxMessageRunes = 4096

type Client struct {
	token  string
	apiURL string
	client *http.Client
	logger *slog.Logger
}

func NewClient(token string, logger *slog.Logger) *Client {
	return &Client{
		token:  token,
		apiURL: defaultAPIURL,
		// Long polls hold the connection for up to pollTimeout seconds.
		client: &http.Client{Timeout: 70 * time.Second},
		logger: logger,
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("parse telegram response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram error %d: %s", apiResp.ErrorCode, apiResp.Description)
	}
	if out != nil {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("parse %s result: %w", method, err)
		}
	}
	return nil
}

// Send delivers text to a chat, splitting it into several messages when it
// exceeds Telegram's size limit.
func (c *Client) Send(ctx context.Context, chatID, text string) error {
	for _, chunk := range splitMessage(text, maxMessageRunes) {
		if err := c.call(ctx, "sendMessage", map[string]any{
			"chat_id": chatID,
			"text":    chunk,
		}, nil); err != nil {
			return err
		}
	}
	c.logger.Debug("message sent", "chat_id", chatID, "len", len(text))
	return nil
}

// splitMessage cuts text into chunks of at most limit runes, preferring to
// break after a newline.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		if i := lastIndexRune(runes[:limit], '\n'); i > limit/2 {
			cut = i + 1
		}
		chunks = append(chunks, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

func lastIndexRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
