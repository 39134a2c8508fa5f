package domain

import (
	"context"
)

// ScriptureSource provides scripture text from the network
type ScriptureSource interface {
	// FetchCorpus returns the full scripture document (all surahs, every verse
	// tagged with page and juz). The document is fetched completely or not at all.
	FetchCorpus(ctx context.Context) ([]CorpusSurah, error)

	// FetchSurahIndex returns the lightweight per-surah metadata (verse counts)
	FetchSurahIndex(ctx context.Context) ([]SurahInfo, error)

	// FetchSurah returns the verses of one surah
	FetchSurah(ctx context.Context, id int) ([]Verse, error)

	// FetchPage returns one mushaf page with its surah headers
	FetchPage(ctx context.Context, number int) (*PageRecord, error)
}

// CommentaryCorpusSource provides a whole commentary edition in one document
type CommentaryCorpusSource interface {
	FetchCommentaryCorpus(ctx context.Context, edition string) ([]CommentaryRecord, error)
}

// CommentaryProvider answers per-verse commentary lookups.
// Implementations return plain text with markup already removed.
type CommentaryProvider interface {
	// Name identifies the provider in logs
	Name() string

	FetchCommentary(ctx context.Context, edition string, surahID, verse int) (string, error)
}

// AudioSource provides per-verse recitation audio
type AudioSource interface {
	FetchVerseAudio(ctx context.Context, narratorID string, surahID, verse int) ([]byte, error)
}
