package offline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albayan/bayan/internal/adapter"
	"github.com/albayan/bayan/internal/domain"
	"github.com/albayan/bayan/internal/store"
	"github.com/albayan/bayan/internal/testutil"
)

type fixture struct {
	handle     *store.Handle
	scripture  *testutil.Scripture
	commentary *testutil.CommentaryCorpus
	audio      *testutil.Audio
	svc        *Service
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		handle:     testutil.NewHandle(t),
		scripture:  testutil.NewScripture(),
		commentary: &testutil.CommentaryCorpus{},
		audio:      &testutil.Audio{},
	}
	f.svc = NewService(f.handle, f.scripture, f.commentary, f.audio, opts, adapter.NullLogger())
	return f
}

func (f *fixture) count(t *testing.T, c domain.Collection) int {
	t.Helper()
	st, err := f.handle.Open(context.Background())
	require.NoError(t, err)
	n, err := st.Count(context.Background(), c)
	require.NoError(t, err)
	return n
}

// shortIndex limits the corpus to a few short surahs that still include
// both audio sentinels.
func shortIndex(all []domain.CorpusSurah) []domain.CorpusSurah {
	return []domain.CorpusSurah{all[0], all[111], all[112], all[113]}
}

func TestLoadFullScripture(t *testing.T) {
	ctx := context.Background()

	t.Run("caches every surah and page", func(t *testing.T) {
		f := newFixture(t, Options{})

		var messages []string
		err := f.svc.LoadFullScripture(ctx, func(p domain.Progress) {
			messages = append(messages, p.Message)
		})
		require.NoError(t, err)
		assert.NotEmpty(t, messages)
		assert.True(t, f.svc.IsScriptureCached(ctx))

		verses, ok := f.svc.GetSurah(ctx, 2)
		require.True(t, ok)
		require.Len(t, verses, 286)
		assert.Equal(t, 8, verses[0].ID)
		assert.Equal(t, testutil.VerseText(2, 255), verses[254].Text)
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := newFixture(t, Options{})

		require.NoError(t, f.svc.LoadFullScripture(ctx, nil))
		pages := f.count(t, domain.CollectionPages)
		before, ok := f.svc.GetPage(ctx, 50)
		require.True(t, ok)

		require.NoError(t, f.svc.LoadFullScripture(ctx, nil))
		assert.Equal(t, domain.SurahCount, f.count(t, domain.CollectionSurahs))
		assert.Equal(t, pages, f.count(t, domain.CollectionPages))

		after, ok := f.svc.GetPage(ctx, 50)
		require.True(t, ok)
		assert.Equal(t, before, after)
	})

	t.Run("fetch failure writes nothing", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Offline = true

		err := f.svc.LoadFullScripture(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrUpstreamFetchFailed)
		assert.Zero(t, f.count(t, domain.CollectionSurahs))
		assert.Zero(t, f.count(t, domain.CollectionPages))
		assert.False(t, f.svc.IsScriptureCached(ctx))
	})

	t.Run("fetch failure keeps a previous download", func(t *testing.T) {
		f := newFixture(t, Options{})
		require.NoError(t, f.svc.LoadFullScripture(ctx, nil))
		pages := f.count(t, domain.CollectionPages)

		f.scripture.Offline = true
		require.Error(t, f.svc.LoadFullScripture(ctx, nil))

		assert.True(t, f.svc.IsScriptureCached(ctx))
		assert.Equal(t, pages, f.count(t, domain.CollectionPages))
	})

	t.Run("incomplete store is not reported as cached", func(t *testing.T) {
		f := newFixture(t, Options{})
		partial := testutil.Corpus()[:domain.SurahCount-1]

		st, err := f.handle.Open(ctx)
		require.NoError(t, err)
		require.NoError(t, st.SaveScripture(ctx, domain.SurahRecords(partial), domain.PageRecords(partial)))

		assert.Equal(t, domain.SurahCount-1, f.count(t, domain.CollectionSurahs))
		assert.False(t, f.svc.IsScriptureCached(ctx))
	})

	malformed := []struct {
		name   string
		mangle func(corpus []domain.CorpusSurah) []domain.CorpusSurah
	}{
		{"missing surah", func(c []domain.CorpusSurah) []domain.CorpusSurah { return c[:domain.SurahCount-1] }},
		{"surah id out of range", func(c []domain.CorpusSurah) []domain.CorpusSurah {
			c[domain.SurahCount-1].Info.ID = 0
			return c
		}},
		{"repeated surah id", func(c []domain.CorpusSurah) []domain.CorpusSurah {
			c[1].Info.ID = 1
			return c
		}},
		{"page tag out of range", func(c []domain.CorpusSurah) []domain.CorpusSurah {
			c[0].Verses[0].Page = domain.PageCount + 1
			return c
		}},
	}
	for _, tt := range malformed {
		t.Run("rejects corpus with "+tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			f.scripture.Corpus = tt.mangle(f.scripture.Corpus)

			err := f.svc.LoadFullScripture(ctx, nil)
			assert.ErrorIs(t, err, domain.ErrMalformedContent)
			assert.Zero(t, f.count(t, domain.CollectionSurahs))
			assert.Zero(t, f.count(t, domain.CollectionPages))
			assert.False(t, f.svc.IsScriptureCached(ctx))
		})
	}

	t.Run("empty corpus is malformed", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Corpus = nil

		err := f.svc.LoadFullScripture(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrMalformedContent)
	})
}

func TestPageSpanningTwoSurahs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	require.NoError(t, f.svc.LoadFullScripture(ctx, nil))

	page, ok := f.svc.GetPage(ctx, 50)
	require.True(t, ok)
	assert.Len(t, page.Surahs, 2)
	assert.Equal(t, []int{2, 3}, page.SurahIDs())

	first := page.Verses[0]
	require.NotNil(t, first.Surah)
	assert.Equal(t, 2, first.Surah.ID)
	assert.Equal(t, 3, page.Verses[len(page.Verses)-1].Surah.ID)
}

func TestClearScripture(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	require.NoError(t, f.svc.LoadFullScripture(ctx, nil))

	require.NoError(t, f.svc.ClearScripture(ctx))

	_, ok := f.svc.GetSurah(ctx, 1)
	assert.False(t, ok)
	_, ok = f.svc.GetPage(ctx, 1)
	assert.False(t, ok)
	assert.False(t, f.svc.IsScriptureCached(ctx))
	assert.Zero(t, f.count(t, domain.CollectionPages))
}

func TestLoadFullCommentary(t *testing.T) {
	ctx := context.Background()

	t.Run("caches the configured edition", func(t *testing.T) {
		f := newFixture(t, Options{})
		require.NoError(t, f.svc.LoadFullCommentary(ctx, nil))
		assert.True(t, f.svc.IsCommentaryCached(ctx))
		assert.Equal(t, DefaultEdition, f.svc.Edition())

		text, ok := f.svc.GetCommentaryText(ctx, 2, 255, DefaultEdition)
		require.True(t, ok)
		assert.Equal(t, testutil.CommentaryText(DefaultEdition, 2, 255), text)

		_, ok = f.svc.GetCommentaryText(ctx, 2, 255, "ar.jalalayn")
		assert.False(t, ok, "only the cached edition can hit")

		_, ok = f.svc.GetCommentaryText(ctx, 1, 8, DefaultEdition)
		assert.False(t, ok, "verse beyond the surah")
	})

	t.Run("switching edition replaces the old one", func(t *testing.T) {
		f := newFixture(t, Options{})
		require.NoError(t, f.svc.LoadFullCommentary(ctx, nil))

		other := NewService(f.handle, f.scripture, f.commentary, f.audio, Options{Edition: "ar.jalalayn"}, adapter.NullLogger())
		require.NoError(t, other.LoadFullCommentary(ctx, nil))

		_, ok := f.svc.GetCommentaryText(ctx, 1, 1, DefaultEdition)
		assert.False(t, ok)
		text, ok := other.GetCommentaryText(ctx, 1, 1, "ar.jalalayn")
		require.True(t, ok)
		assert.Equal(t, testutil.CommentaryText("ar.jalalayn", 1, 1), text)
		assert.Equal(t, domain.SurahCount, f.count(t, domain.CollectionCommentary))
	})

	t.Run("fetch failure", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.commentary.Offline = true

		assert.ErrorIs(t, f.svc.LoadFullCommentary(ctx, nil), domain.ErrUpstreamFetchFailed)
		assert.False(t, f.svc.IsCommentaryCached(ctx))
	})

	t.Run("clear", func(t *testing.T) {
		f := newFixture(t, Options{})
		require.NoError(t, f.svc.LoadFullCommentary(ctx, nil))
		require.NoError(t, f.svc.ClearCommentary(ctx))

		assert.False(t, f.svc.IsCommentaryCached(ctx))
		_, ok := f.svc.GetCommentaryText(ctx, 1, 1, DefaultEdition)
		assert.False(t, ok)
	})
}

func TestLoadNarratorAudio(t *testing.T) {
	ctx := context.Background()

	t.Run("stores every verse surah by surah", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Corpus = shortIndex(f.scripture.Corpus)
		f.audio.Delay = 2 * time.Millisecond

		var last domain.Progress
		summary, err := f.svc.LoadNarratorAudio(ctx, "alafasy", func(p domain.Progress) { last = p })
		require.NoError(t, err)

		assert.NotEmpty(t, summary.RunID)
		assert.Equal(t, 4, summary.Surahs)
		assert.Equal(t, 22, summary.Attempted)
		assert.Equal(t, 22, summary.Stored)
		assert.Zero(t, summary.Failed)
		assert.Equal(t, 100, last.Percent())

		assert.Equal(t, 1, f.audio.MaxSurahsInFlight(), "a surah starts only after the previous one settled")
		assert.True(t, f.svc.IsAudioCached(ctx, "alafasy"))

		key := domain.AudioKey{Narrator: "alafasy", Surah: 113, Verse: 4}
		blob, ok := f.svc.GetAudioBlob(ctx, "alafasy", 113, 4)
		require.True(t, ok)
		assert.Equal(t, testutil.Blob(key), blob)
	})

	t.Run("verse failures are tolerated", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Corpus = shortIndex(f.scripture.Corpus)
		missing := domain.AudioKey{Narrator: "alafasy", Surah: 113, Verse: 3}
		f.audio.Fail = func(key domain.AudioKey) bool { return key == missing }

		summary, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
		require.NoError(t, err)
		assert.Equal(t, 21, summary.Stored)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, []domain.AudioKey{missing}, summary.Failures)

		_, ok := f.svc.GetAudioBlob(ctx, "alafasy", 113, 3)
		assert.False(t, ok)
		assert.True(t, f.svc.IsAudioCached(ctx, "alafasy"), "sentinels do not see interior gaps")
	})

	t.Run("in-flight cap", func(t *testing.T) {
		f := newFixture(t, Options{MaxInFlight: 2})
		f.scripture.Corpus = shortIndex(f.scripture.Corpus)
		f.audio.Delay = 2 * time.Millisecond

		_, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, f.audio.MaxConcurrency(), 2)
	})

	t.Run("unknown narrator", func(t *testing.T) {
		f := newFixture(t, Options{})

		_, err := f.svc.LoadNarratorAudio(ctx, "nobody", nil)
		assert.ErrorIs(t, err, domain.ErrUnknownNarrator)
		assert.Zero(t, f.scripture.IndexCalls.Load())
	})

	for _, count := range []int{-1, 0, domain.MaxSurahVerses + 1, 1 << 30} {
		t.Run(fmt.Sprintf("rejects index with %d verses", count), func(t *testing.T) {
			f := newFixture(t, Options{})
			f.scripture.Corpus = shortIndex(f.scripture.Corpus)
			f.scripture.Corpus[1].Info.VersesCount = count

			summary, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
			assert.ErrorIs(t, err, domain.ErrMalformedContent)
			assert.Zero(t, summary.Attempted)
			assert.Zero(t, f.audio.Calls.Load())
			assert.Zero(t, f.count(t, domain.CollectionAudio))
		})
	}

	t.Run("rejects index with an unknown surah", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Corpus = shortIndex(f.scripture.Corpus)
		f.scripture.Corpus[2].Info.ID = domain.SurahCount + 1

		_, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
		assert.ErrorIs(t, err, domain.ErrMalformedContent)
		assert.Zero(t, f.audio.Calls.Load())
	})

	t.Run("index failure", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Offline = true

		_, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
		assert.ErrorIs(t, err, domain.ErrUpstreamFetchFailed)
		assert.Zero(t, f.audio.Calls.Load())
	})

	t.Run("cancellation stops before the next surah", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Corpus = shortIndex(f.scripture.Corpus)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var mu sync.Mutex
		seen := map[int]bool{}
		f.audio.OnFetch = func(key domain.AudioKey) {
			mu.Lock()
			seen[key.Surah] = true
			mu.Unlock()
			if key.Surah == 112 {
				cancel()
			}
		}

		summary, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 2, summary.Surahs)

		mu.Lock()
		defer mu.Unlock()
		assert.False(t, seen[113])
		assert.False(t, seen[114])

		_, ok := f.svc.GetAudioBlob(context.Background(), "alafasy", 1, 7)
		assert.True(t, ok, "work finished before cancellation is kept")
	})

	t.Run("clear removes every narrator", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.scripture.Corpus = shortIndex(f.scripture.Corpus)

		_, err := f.svc.LoadNarratorAudio(ctx, "alafasy", nil)
		require.NoError(t, err)
		_, err = f.svc.LoadNarratorAudio(ctx, "husary", nil)
		require.NoError(t, err)

		require.NoError(t, f.svc.ClearAudio(ctx))
		assert.False(t, f.svc.IsAudioCached(ctx, "alafasy"))
		assert.False(t, f.svc.IsAudioCached(ctx, "husary"))
	})
}

func TestAudioSentinelApproximation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	st, err := f.handle.Open(ctx)
	require.NoError(t, err)
	for _, key := range []domain.AudioKey{
		{Narrator: "narratorX", Surah: 1, Verse: 1},
		{Narrator: "narratorX", Surah: 114, Verse: 6},
	} {
		require.NoError(t, st.PutAudio(ctx, key, testutil.Blob(key)))
	}

	assert.True(t, f.svc.IsAudioCached(ctx, "narratorX"))
	_, ok := f.svc.GetAudioBlob(ctx, "narratorX", 55, 10)
	assert.False(t, ok)
	assert.False(t, f.svc.IsAudioCached(ctx, "narratorY"))
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	require.NoError(t, f.svc.LoadFullScripture(ctx, nil))
	require.NoError(t, f.svc.LoadFullCommentary(ctx, nil))

	status := f.svc.Status(ctx, []string{"alafasy"})
	assert.True(t, status.Available)
	assert.True(t, status.Scripture)
	assert.True(t, status.Commentary)
	assert.Equal(t, DefaultEdition, status.Edition)
	assert.Equal(t, store.LatestVersion, status.Schema)
	assert.Equal(t, map[string]bool{"alafasy": false}, status.Audio)
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	scripture := testutil.NewScripture()
	audio := &testutil.Audio{}
	svc := NewService(testutil.UnavailableHandle(), scripture, &testutil.CommentaryCorpus{}, audio, Options{}, adapter.NullLogger())

	assert.ErrorIs(t, svc.LoadFullScripture(ctx, nil), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, svc.LoadFullCommentary(ctx, nil), domain.ErrStoreUnavailable)
	_, err := svc.LoadNarratorAudio(ctx, "alafasy", nil)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Zero(t, scripture.CorpusCalls.Load())
	assert.Zero(t, audio.Calls.Load())

	assert.ErrorIs(t, svc.ClearScripture(ctx), domain.ErrStoreUnavailable)
	assert.ErrorIs(t, svc.ClearAudio(ctx), domain.ErrStoreUnavailable)

	_, ok := svc.GetSurah(ctx, 1)
	assert.False(t, ok)
	_, ok = svc.GetPage(ctx, 1)
	assert.False(t, ok)
	assert.False(t, svc.IsScriptureCached(ctx))
	assert.False(t, svc.IsAudioCached(ctx, "alafasy"))
	assert.False(t, svc.Status(ctx, []string{"alafasy"}).Available)
}

func TestInvalidKeysMissWithoutIO(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testutil.UnavailableHandle(), nil, nil, nil, Options{}, adapter.NullLogger())

	_, ok := svc.GetSurah(ctx, 0)
	assert.False(t, ok)
	_, ok = svc.GetSurah(ctx, 115)
	assert.False(t, ok)
	_, ok = svc.GetPage(ctx, 605)
	assert.False(t, ok)
	_, ok = svc.GetAudioBlob(ctx, "alafasy", 1, 0)
	assert.False(t, ok)
}
