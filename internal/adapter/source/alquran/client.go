// Package alquran is the api.alquran.cloud client: full-corpus documents,
// surah metadata, per-surah and per-page text, and per-ayah commentary.
package alquran

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/albayan/bayan/internal/adapter/source/httpx"
	"github.com/albayan/bayan/internal/domain"
)

// DefaultBaseURL is the public API endpoint
const DefaultBaseURL = "https://api.alquran.cloud"

// scriptEdition is the Uthmani script text edition
const scriptEdition = "quran-uthmani"

// Client implements domain.ScriptureSource, domain.CommentaryCorpusSource
// and domain.CommentaryProvider
type Client struct {
	baseURL string
	http    *httpx.Client
	logger  *slog.Logger
}

var (
	_ domain.ScriptureSource        = (*Client)(nil)
	_ domain.CommentaryCorpusSource = (*Client)(nil)
	_ domain.CommentaryProvider     = (*Client)(nil)
)

// NewClient creates a new alquran.cloud client
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
		logger:  logger.With("provider", "alquran"),
	}
}

// Name identifies the provider
func (c *Client) Name() string { return "alquran.cloud" }

func (c *Client) get(ctx context.Context, path string, dest interface{ OK() bool }) error {
	if err := c.http.GetJSON(ctx, c.baseURL+path, dest); err != nil {
		return err
	}
	if !dest.OK() {
		return fmt.Errorf("%w: %s: status not OK", domain.ErrUpstreamFetchFailed, path)
	}
	return nil
}

// FetchCorpus downloads the whole scripture in one document
func (c *Client) FetchCorpus(ctx context.Context) ([]domain.CorpusSurah, error) {
	var env Envelope[Quran]
	if err := c.get(ctx, "/v1/quran/"+scriptEdition, &env); err != nil {
		return nil, err
	}
	if len(env.Data.Surahs) == 0 {
		return nil, fmt.Errorf("%w: corpus document has no surahs", domain.ErrMalformedContent)
	}
	c.logger.Debug("fetched corpus", "surahs", len(env.Data.Surahs))
	return MapCorpus(env.Data), nil
}

// FetchSurahIndex downloads the per-surah metadata used to size audio batches
func (c *Client) FetchSurahIndex(ctx context.Context) ([]domain.SurahInfo, error) {
	var env Envelope[Meta]
	if err := c.get(ctx, "/v1/meta", &env); err != nil {
		return nil, err
	}
	refs := env.Data.Surahs.References
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: meta document has no surah references", domain.ErrMalformedContent)
	}
	out := make([]domain.SurahInfo, 0, len(refs))
	for _, r := range refs {
		out = append(out, MapSurahInfo(r))
	}
	return out, nil
}

// FetchSurah downloads the verses of one surah
func (c *Client) FetchSurah(ctx context.Context, id int) ([]domain.Verse, error) {
	var env Envelope[Surah]
	path := fmt.Sprintf("/v1/surah/%d/%s", id, scriptEdition)
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	if len(env.Data.Ayahs) == 0 {
		return nil, fmt.Errorf("%w: surah %d has no verses", domain.ErrMalformedContent, id)
	}
	return MapVerses(env.Data.Ayahs), nil
}

// FetchPage downloads one mushaf page with its surah headers
func (c *Client) FetchPage(ctx context.Context, number int) (*domain.PageRecord, error) {
	var env Envelope[Page]
	path := fmt.Sprintf("/v1/page/%d/%s", number, scriptEdition)
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	if len(env.Data.Ayahs) == 0 {
		return nil, fmt.Errorf("%w: page %d has no verses", domain.ErrMalformedContent, number)
	}
	page := MapPage(env.Data)
	page.Number = number
	return page, nil
}

// FetchCommentaryCorpus downloads a whole commentary edition in one document
func (c *Client) FetchCommentaryCorpus(ctx context.Context, edition string) ([]domain.CommentaryRecord, error) {
	var env Envelope[Quran]
	if err := c.get(ctx, "/v1/quran/"+url.PathEscape(edition), &env); err != nil {
		return nil, err
	}
	if len(env.Data.Surahs) == 0 {
		return nil, fmt.Errorf("%w: edition %s has no surahs", domain.ErrMalformedContent, edition)
	}
	return MapCommentaryCorpus(edition, env.Data), nil
}

// FetchCommentary fetches the commentary of one verse
func (c *Client) FetchCommentary(ctx context.Context, edition string, surahID, verse int) (string, error) {
	var env Envelope[Ayah]
	path := fmt.Sprintf("/v1/ayah/%d:%d/%s", surahID, verse, url.PathEscape(edition))
	if err := c.get(ctx, path, &env); err != nil {
		return "", err
	}
	text := httpx.StripHTML(env.Data.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty commentary for %d:%d", domain.ErrMalformedContent, surahID, verse)
	}
	return text, nil
}
