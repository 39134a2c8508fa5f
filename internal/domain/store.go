package domain

import "context"

// Store is the persistent offline cache.
// Reads return (value, false, nil) on a miss; a non-nil error is a storage fault.
type Store interface {
	// === Scripture (surahs + pages are always written together) ===
	SaveScripture(ctx context.Context, surahs []SurahRecord, pages []PageRecord) error
	Surah(ctx context.Context, id int) (*SurahRecord, bool, error)
	Page(ctx context.Context, number int) (*PageRecord, bool, error)

	// === Commentary (one edition at a time) ===
	SaveCommentary(ctx context.Context, edition string, records []CommentaryRecord) error
	Commentary(ctx context.Context, surahID int) (*CommentaryRecord, bool, error)
	CommentaryEdition(ctx context.Context) (string, error)

	// === Audio (raw blobs under composite keys) ===
	PutAudio(ctx context.Context, key AudioKey, blob []byte) error
	Audio(ctx context.Context, key AudioKey) ([]byte, bool, error)

	// === Bookkeeping ===
	Count(ctx context.Context, c Collection) (int, error)
	Clear(ctx context.Context, collections ...Collection) error
	SchemaVersion(ctx context.Context) (int, error)

	Close() error
}
