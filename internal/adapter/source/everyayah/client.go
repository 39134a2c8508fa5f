// Package everyayah fetches per-verse recitation audio from everyayah.com.
package everyayah

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albayan/bayan/internal/adapter/source/httpx"
	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

// DefaultBaseURL is the public audio host
const DefaultBaseURL = "https://everyayah.com"

// Client implements domain.AudioSource
type Client struct {
	baseURL string
	http    *httpx.Client
	logger  *slog.Logger
}

var _ domain.AudioSource = (*Client)(nil)

// NewClient creates a new everyayah client
func NewClient(baseURL string, http *httpx.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http,
		logger:  logger.With("provider", "everyayah"),
	}
}

// VerseURL builds the audio URL of one verse. Unknown narrators resolve to
// the default narrator.
func (c *Client) VerseURL(narratorID string, surahID, verse int) string {
	n := catalog.NarratorOrDefault(narratorID)
	return fmt.Sprintf("%s/data/%s/%03d%03d.mp3", c.baseURL, n.Subfolder, surahID, verse)
}

// FetchVerseAudio downloads the audio payload of one verse
func (c *Client) FetchVerseAudio(ctx context.Context, narratorID string, surahID, verse int) ([]byte, error) {
	blob, err := c.http.Get(ctx, c.VerseURL(narratorID, surahID, verse))
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty audio for %s:%d:%d", domain.ErrMalformedContent, narratorID, surahID, verse)
	}
	return blob, nil
}
