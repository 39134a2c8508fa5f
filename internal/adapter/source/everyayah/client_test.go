package everyayah

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albayan/bayan/internal/adapter/source/httpx"
	"github.com/albayan/bayan/internal/domain"
)

func TestVerseURL(t *testing.T) {
	c := NewClient("", nil, nil)

	tests := []struct {
		narrator string
		surah    int
		verse    int
		want     string
	}{
		{"alafasy", 1, 1, "https://everyayah.com/data/Alafasy_128kbps/001001.mp3"},
		{"husary", 2, 255, "https://everyayah.com/data/Husary_128kbps/002255.mp3"},
		{"sudais", 114, 6, "https://everyayah.com/data/Abdurrahmaan_As-Sudais_192kbps/114006.mp3"},
		{"nobody", 18, 10, "https://everyayah.com/data/Alafasy_128kbps/018010.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VerseURL(tt.narrator, tt.surah, tt.verse))
		})
	}
}

func TestFetchVerseAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/Alafasy_128kbps/001001.mp3":
			w.Header().Set("Content-Type", "audio/mpeg")
			_, _ = w.Write([]byte("ID3-fake-mp3"))
		case "/data/Alafasy_128kbps/001002.mp3":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := NewClient(server.URL, httpx.New(httpx.Options{Timeout: 2 * time.Second}, nil), nil)
	ctx := context.Background()

	blob, err := c.FetchVerseAudio(ctx, "alafasy", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-fake-mp3"), blob)

	_, err = c.FetchVerseAudio(ctx, "alafasy", 1, 2)
	assert.ErrorIs(t, err, domain.ErrMalformedContent)

	_, err = c.FetchVerseAudio(ctx, "alafasy", 1, 3)
	assert.ErrorIs(t, err, domain.ErrUpstreamFetchFailed)
}
