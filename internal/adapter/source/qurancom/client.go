// Package qurancom is the quran.com v4 commentary client, used as the
// secondary per-verse commentary provider.
package qurancom

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albayan/bayan/internal/adapter/source/httpx"
	"github.com/albayan/bayan/internal/domain"
)

// DefaultBaseURL is the public API endpoint
const DefaultBaseURL = "https://api.quran.com"

// DefaultTafsirID is Tafsir al-Muyassar, used for unmapped editions
const DefaultTafsirID = 169

// tafsirIDs maps alquran.cloud edition ids to quran.com resource ids
var tafsirIDs = map[string]int{
	"ar.muyassar": 169,
	"ar.jalalayn": 164,
	"ar.qurtubi":  167,
}

// TafsirID returns the quran.com resource id for an edition
func TafsirID(edition string) int {
	if id, ok := tafsirIDs[edition]; ok {
		return id
	}
	return DefaultTafsirID
}

// Client implements domain.CommentaryProvider
type Client struct {
	baseURL string
	http    *httpx.Client
	logger  *slog.Logger
}

var _ domain.CommentaryProvider = (*Client)(nil)

// NewClient creates a new quran.com client
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
		logger:  logger.With("provider", "qurancom"),
	}
}

// Name identifies the provider
func (c *Client) Name() string { return "quran.com" }

// FetchCommentary fetches the commentary of one verse with markup removed
func (c *Client) FetchCommentary(ctx context.Context, edition string, surahID, verse int) (string, error) {
	url := fmt.Sprintf("%s/api/v4/tafsirs/%d/by_ayah/%d:%d", c.baseURL, TafsirID(edition), surahID, verse)

	var resp TafsirResponse
	if err := c.http.GetJSON(ctx, url, &resp); err != nil {
		return "", err
	}

	text := httpx.StripHTML(resp.Tafsir.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty commentary for %d:%d", domain.ErrMalformedContent, surahID, verse)
	}
	return text, nil
}
