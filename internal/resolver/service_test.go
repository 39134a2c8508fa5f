package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albayan/bayan/internal/adapter"
	"github.com/albayan/bayan/internal/domain"
	"github.com/albayan/bayan/internal/fallback"
	"github.com/albayan/bayan/internal/offline"
	"github.com/albayan/bayan/internal/testutil"
)

type fixture struct {
	offline   *offline.Service
	scripture *testutil.Scripture
	resolver  *Service
}

func newFixture(t *testing.T, providers ...domain.CommentaryProvider) *fixture {
	t.Helper()
	scripture := testutil.NewScripture()
	cache := offline.NewService(testutil.NewHandle(t), scripture, &testutil.CommentaryCorpus{}, &testutil.Audio{}, offline.Options{}, adapter.NullLogger())

	static, err := fallback.Load()
	require.NoError(t, err)

	r, err := NewService(cache, static, scripture, providers, Options{MemoryCacheSize: 16}, adapter.NullLogger())
	require.NoError(t, err)
	return &fixture{offline: cache, scripture: scripture, resolver: r}
}

func TestResolveSurah(t *testing.T) {
	ctx := context.Background()

	t.Run("cache before network", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.offline.LoadFullScripture(ctx, nil))

		verses, layer := f.resolver.ResolveSurah(ctx, 2)
		assert.Equal(t, LayerCache, layer)
		assert.Len(t, verses, 286)
		assert.Zero(t, f.scripture.SurahCalls.Load())
	})

	t.Run("static dataset before network", func(t *testing.T) {
		f := newFixture(t)

		verses, layer := f.resolver.ResolveSurah(ctx, 1)
		assert.Equal(t, LayerStatic, layer)
		assert.Len(t, verses, 7)
		assert.Zero(t, f.scripture.SurahCalls.Load())
	})

	t.Run("network answers are not written back", func(t *testing.T) {
		f := newFixture(t)

		verses, ok := f.resolver.Surah(ctx, 2)
		require.True(t, ok)
		assert.Len(t, verses, 286)
		assert.EqualValues(t, 1, f.scripture.SurahCalls.Load())

		_, ok = f.offline.GetSurah(ctx, 2)
		assert.False(t, ok)
	})

	t.Run("every layer misses", func(t *testing.T) {
		f := newFixture(t)
		f.scripture.Offline = true

		_, ok := f.resolver.Surah(ctx, 2)
		assert.False(t, ok)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)

		_, layer := f.resolver.ResolveSurah(ctx, 115)
		assert.Equal(t, LayerNone, layer)
		assert.Zero(t, f.scripture.SurahCalls.Load())
	})
}

func TestResolvePage(t *testing.T) {
	ctx := context.Background()

	t.Run("cache", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.offline.LoadFullScripture(ctx, nil))

		page, layer := f.resolver.ResolvePage(ctx, 50)
		assert.Equal(t, LayerCache, layer)
		assert.Equal(t, []int{2, 3}, page.SurahIDs())
		assert.Zero(t, f.scripture.PageCalls.Load())
	})

	t.Run("cache wins over the static dataset", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.offline.LoadFullScripture(ctx, nil))

		page, layer := f.resolver.ResolvePage(ctx, 1)
		assert.Equal(t, LayerCache, layer)
		assert.Equal(t, testutil.VerseText(1, 1), page.Verses[0].Text)
		assert.Zero(t, f.scripture.PageCalls.Load())
	})

	t.Run("static dataset", func(t *testing.T) {
		f := newFixture(t)

		page, layer := f.resolver.ResolvePage(ctx, domain.PageCount)
		assert.Equal(t, LayerStatic, layer)
		assert.Equal(t, []int{112, 113, 114}, page.SurahIDs())
		assert.Zero(t, f.scripture.PageCalls.Load())
	})

	t.Run("network", func(t *testing.T) {
		f := newFixture(t)

		page, ok := f.resolver.Page(ctx, 50)
		require.True(t, ok)
		assert.Equal(t, 50, page.Number)
		assert.EqualValues(t, 1, f.scripture.PageCalls.Load())

		_, ok = f.offline.GetPage(ctx, 50)
		assert.False(t, ok)
	})

	t.Run("without optional layers", func(t *testing.T) {
		scripture := testutil.NewScripture()
		r, err := NewService(nil, nil, scripture, nil, Options{}, adapter.NullLogger())
		require.NoError(t, err)

		_, layer := r.ResolvePage(ctx, 1)
		assert.Equal(t, LayerNetwork, layer)
	})
}

func TestResolveCommentary(t *testing.T) {
	ctx := context.Background()
	const arabic = "هذه الآية تدل على وجوب الحمد لله"

	t.Run("persistent cache first", func(t *testing.T) {
		provider := testutil.AnswerWith("first", arabic)
		f := newFixture(t, provider)
		require.NoError(t, f.offline.LoadFullCommentary(ctx, nil))

		text, layer := f.resolver.ResolveCommentary(ctx, 1, 1, offline.DefaultEdition)
		assert.Equal(t, LayerCache, layer)
		assert.Equal(t, testutil.CommentaryText(offline.DefaultEdition, 1, 1), text)
		assert.Zero(t, provider.Calls.Load())
	})

	t.Run("implausible answer falls through to the next provider", func(t *testing.T) {
		english := testutil.AnswerWith("first", "The quick brown fox jumps")
		second := testutil.AnswerWith("second", arabic)
		f := newFixture(t, english, second)

		text, layer := f.resolver.ResolveCommentary(ctx, 2, 255, "ar.jalalayn")
		assert.Equal(t, LayerNetwork, layer)
		assert.Equal(t, arabic, text)
		assert.EqualValues(t, 1, english.Calls.Load())
		assert.EqualValues(t, 1, second.Calls.Load())
	})

	t.Run("unreachable provider falls through", func(t *testing.T) {
		second := testutil.AnswerWith("second", arabic)
		f := newFixture(t, testutil.Unreachable("first"), second)

		assert.Equal(t, arabic, f.resolver.Commentary(ctx, 2, 255, offline.DefaultEdition))
	})

	t.Run("memory cache prevents a second request", func(t *testing.T) {
		provider := testutil.AnswerWith("first", arabic)
		f := newFixture(t, provider)

		_, layer := f.resolver.ResolveCommentary(ctx, 3, 7, offline.DefaultEdition)
		assert.Equal(t, LayerNetwork, layer)
		_, layer = f.resolver.ResolveCommentary(ctx, 3, 7, offline.DefaultEdition)
		assert.Equal(t, LayerMemory, layer)
		assert.EqualValues(t, 1, provider.Calls.Load())

		_, layer = f.resolver.ResolveCommentary(ctx, 3, 7, "ar.qurtubi")
		assert.Equal(t, LayerNetwork, layer, "editions are cached separately")
	})

	t.Run("placeholder when every provider fails", func(t *testing.T) {
		first, second := testutil.Unreachable("first"), testutil.AnswerWith("second", "Not Found page body")
		f := newFixture(t, first, second)

		text, layer := f.resolver.ResolveCommentary(ctx, 1, 1, offline.DefaultEdition)
		assert.Equal(t, LayerNone, layer)
		assert.Equal(t, OfflinePlaceholder, text)

		f.resolver.Commentary(ctx, 1, 1, offline.DefaultEdition)
		assert.EqualValues(t, 2, first.Calls.Load(), "placeholders are not remembered")
	})

	t.Run("cancelled context skips providers", func(t *testing.T) {
		provider := testutil.AnswerWith("first", arabic)
		f := newFixture(t, provider)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Equal(t, OfflinePlaceholder, f.resolver.Commentary(cctx, 1, 1, offline.DefaultEdition))
		assert.Zero(t, provider.Calls.Load())
	})
}
