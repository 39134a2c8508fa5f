package testutil

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/albayan/bayan/internal/domain"
)

func unreachable(what string) error {
	return fmt.Errorf("%w: %s: network unreachable", domain.ErrUpstreamFetchFailed, what)
}

// Scripture is a fake domain.ScriptureSource backed by an in-memory corpus.
type Scripture struct {
	Corpus  []domain.CorpusSurah
	Offline bool

	CorpusCalls atomic.Int32
	IndexCalls  atomic.Int32
	SurahCalls  atomic.Int32
	PageCalls   atomic.Int32
}

var _ domain.ScriptureSource = (*Scripture)(nil)

// NewScripture serves the full synthetic corpus.
func NewScripture() *Scripture {
	return &Scripture{Corpus: Corpus()}
}

func (s *Scripture) FetchCorpus(ctx context.Context) ([]domain.CorpusSurah, error) {
	s.CorpusCalls.Add(1)
	if s.Offline {
		return nil, unreachable("corpus")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Corpus, nil
}

func (s *Scripture) FetchSurahIndex(ctx context.Context) ([]domain.SurahInfo, error) {
	s.IndexCalls.Add(1)
	if s.Offline {
		return nil, unreachable("meta")
	}
	out := make([]domain.SurahInfo, 0, len(s.Corpus))
	for _, cs := range s.Corpus {
		out = append(out, cs.Info)
	}
	return out, nil
}

func (s *Scripture) FetchSurah(ctx context.Context, id int) ([]domain.Verse, error) {
	s.SurahCalls.Add(1)
	if s.Offline {
		return nil, unreachable("surah")
	}
	for _, rec := range domain.SurahRecords(s.Corpus) {
		if rec.ID == id {
			return rec.Verses, nil
		}
	}
	return nil, fmt.Errorf("%w: surah %d: status 404", domain.ErrUpstreamFetchFailed, id)
}

func (s *Scripture) FetchPage(ctx context.Context, number int) (*domain.PageRecord, error) {
	s.PageCalls.Add(1)
	if s.Offline {
		return nil, unreachable("page")
	}
	for _, p := range domain.PageRecords(s.Corpus) {
		if p.Number == number {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: page %d: status 404", domain.ErrUpstreamFetchFailed, number)
}

// CommentaryCorpus is a fake domain.CommentaryCorpusSource.
type CommentaryCorpus struct {
	Offline bool
	Calls   atomic.Int32
}

var _ domain.CommentaryCorpusSource = (*CommentaryCorpus)(nil)

func (c *CommentaryCorpus) FetchCommentaryCorpus(ctx context.Context, edition string) ([]domain.CommentaryRecord, error) {
	c.Calls.Add(1)
	if c.Offline {
		return nil, unreachable("commentary corpus")
	}
	return CommentaryRecords(edition), nil
}

// Commentary is a fake domain.CommentaryProvider. Answer decides the reply;
// a nil Answer means the provider is unreachable.
type Commentary struct {
	ProviderName string
	Answer       func(edition string, surahID, verse int) (string, error)
	Calls        atomic.Int32
}

var _ domain.CommentaryProvider = (*Commentary)(nil)

// AnswerWith returns a provider that always replies with text.
func AnswerWith(name, text string) *Commentary {
	return &Commentary{
		ProviderName: name,
		Answer: func(string, int, int) (string, error) {
			return text, nil
		},
	}
}

// Unreachable returns a provider that always fails.
func Unreachable(name string) *Commentary {
	return &Commentary{ProviderName: name}
}

func (c *Commentary) Name() string { return c.ProviderName }

func (c *Commentary) FetchCommentary(ctx context.Context, edition string, surahID, verse int) (string, error) {
	c.Calls.Add(1)
	if c.Answer == nil {
		return "", unreachable(c.ProviderName)
	}
	return c.Answer(edition, surahID, verse)
}

// Audio is a fake domain.AudioSource. It records how many distinct surahs
// have requests in flight at the same time.
type Audio struct {
	// Fail reports whether a verse should fail; nil means none fail.
	Fail func(key domain.AudioKey) bool
	// OnFetch runs before every fetch returns.
	OnFetch func(key domain.AudioKey)
	Delay   time.Duration

	Calls atomic.Int32

	mu             sync.Mutex
	inFlight       map[int]int
	maxSurahs      int
	maxConcurrency int
	current        int
}

var _ domain.AudioSource = (*Audio)(nil)

// Blob is the payload the fake serves for a verse.
func Blob(key domain.AudioKey) []byte {
	return []byte("ID3:" + key.String())
}

func (a *Audio) FetchVerseAudio(ctx context.Context, narratorID string, surahID, verse int) ([]byte, error) {
	a.Calls.Add(1)
	key := domain.AudioKey{Narrator: narratorID, Surah: surahID, Verse: verse}

	a.enter(surahID)
	defer a.leave(surahID)

	if a.Delay > 0 {
		select {
		case <-time.After(a.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if a.OnFetch != nil {
		a.OnFetch(key)
	}
	if a.Fail != nil && a.Fail(key) {
		return nil, fmt.Errorf("%w: %s: status 404", domain.ErrUpstreamFetchFailed, key)
	}
	return Blob(key), nil
}

// MaxSurahsInFlight is the largest number of distinct surahs observed
// with concurrent requests.
func (a *Audio) MaxSurahsInFlight() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maxSurahs
}

// MaxConcurrency is the largest number of concurrent requests observed.
func (a *Audio) MaxConcurrency() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.maxConcurrency
}

func (a *Audio) enter(surahID int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inFlight == nil {
		a.inFlight = make(map[int]int)
	}
	a.inFlight[surahID]++
	a.current++
	a.maxSurahs = max(a.maxSurahs, len(a.inFlight))
	a.maxConcurrency = max(a.maxConcurrency, a.current)
}

func (a *Audio) leave(surahID int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current--
	if a.inFlight[surahID]--; a.inFlight[surahID] == 0 {
		delete(a.inFlight, surahID)
	}
}
