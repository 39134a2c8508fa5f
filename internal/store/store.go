package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/albayan/bayan/internal/domain"
)

// Bucket names
var (
	bucketMeta    = []byte("meta")
	bucketSurahs  = []byte(domain.CollectionSurahs)
	bucketPages   = []byte(domain.CollectionPages)
	bucketTafseer = []byte(domain.CollectionCommentary)
	bucketAudio   = []byte(domain.CollectionAudio)
)

var (
	keySchemaVersion = []byte("schema_version")
	keyEdition       = []byte("commentary_edition")
)

// boltSchema is the ordered bucket history. Upgrading applies every step
// above the stored version; existing buckets are never touched.
var boltSchema = []struct {
	version int
	buckets [][]byte
}{
	{version: 1, buckets: [][]byte{bucketSurahs, bucketPages}},
	{version: 2, buckets: [][]byte{bucketTafseer}},
	{version: 3, buckets: [][]byte{bucketAudio}},
}

// BoltStore implements domain.Store using BoltDB.
type BoltStore struct {
	db *bolt.DB
}

var _ domain.Store = (*BoltStore)(nil)

func openBolt(path string, timeout time.Duration, version int) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error { return migrateBolt(tx, version) }); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate bolt db: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func migrateBolt(tx *bolt.Tx, target int) error {
	meta, err := tx.CreateBucketIfNotExists(bucketMeta)
	if err != nil {
		return err
	}

	current := 0
	if v := meta.Get(keySchemaVersion); v != nil {
		if current, err = strconv.Atoi(string(v)); err != nil {
			return fmt.Errorf("corrupt schema version %q", v)
		}
	}

	for _, step := range boltSchema {
		if step.version > target {
			break
		}
		// Buckets are created even at or below the recorded version so a
		// store missing one (manual surgery, partial copy) heals on open.
		for _, name := range step.buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
	}

	if target > current {
		return meta.Put(keySchemaVersion, []byte(strconv.Itoa(target)))
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// === Generic helpers ===

func bucketFor(c domain.Collection) ([]byte, error) {
	switch c {
	case domain.CollectionSurahs:
		return bucketSurahs, nil
	case domain.CollectionPages:
		return bucketPages, nil
	case domain.CollectionCommentary:
		return bucketTafseer, nil
	case domain.CollectionAudio:
		return bucketAudio, nil
	}
	return nil, fmt.Errorf("unknown collection %q", c)
}

func intKey(n int) []byte {
	return []byte(strconv.Itoa(n))
}

// get copies the value out of the read transaction.
func (s *BoltStore) get(bucket, key []byte) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get(key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data, err
}

func encodeJSON(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

func decodeJSON(data []byte, dest interface{}) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedContent, err)
	}
	return nil
}

func (s *BoltStore) getJSON(bucket, key []byte, dest interface{}) (bool, error) {
	data, err := s.get(bucket, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := decodeJSON(data, dest); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

func putJSON(b *bolt.Bucket, key []byte, value interface{}) error {
	data, err := encodeJSON(value)
	if err != nil {
		return err
	}
	return b.Put(key, data)
}

// resetBucket empties a bucket inside the caller's transaction.
func resetBucket(tx *bolt.Tx, name []byte) error {
	if tx.Bucket(name) != nil {
		if err := tx.DeleteBucket(name); err != nil {
			return err
		}
	}
	_, err := tx.CreateBucket(name)
	return err
}

// === Scripture ===

func (s *BoltStore) SaveScripture(ctx context.Context, surahs []domain.SurahRecord, pages []domain.PageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		sb := tx.Bucket(bucketSurahs)
		pb := tx.Bucket(bucketPages)
		if sb == nil || pb == nil {
			return fmt.Errorf("scripture buckets missing")
		}
		for i := range surahs {
			if err := putJSON(sb, intKey(surahs[i].ID), &surahs[i]); err != nil {
				return err
			}
		}
		for i := range pages {
			if err := putJSON(pb, intKey(pages[i].Number), &pages[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Surah(ctx context.Context, id int) (*domain.SurahRecord, bool, error) {
	var rec domain.SurahRecord
	ok, err := s.getJSON(bucketSurahs, intKey(id), &rec)
	if !ok {
		return nil, false, err
	}
	return &rec, true, nil
}

func (s *BoltStore) Page(ctx context.Context, number int) (*domain.PageRecord, bool, error) {
	var rec domain.PageRecord
	ok, err := s.getJSON(bucketPages, intKey(number), &rec)
	if !ok {
		return nil, false, err
	}
	return &rec, true, nil
}

// === Commentary ===

func (s *BoltStore) SaveCommentary(ctx context.Context, edition string, records []domain.CommentaryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		if prev := meta.Get(keyEdition); prev != nil && string(prev) != edition {
			if err := resetBucket(tx, bucketTafseer); err != nil {
				return err
			}
		}
		b := tx.Bucket(bucketTafseer)
		if b == nil {
			return fmt.Errorf("commentary bucket missing")
		}
		for _, rec := range records {
			rec.Edition = edition
			if err := putJSON(b, intKey(rec.ID), &rec); err != nil {
				return err
			}
		}
		return meta.Put(keyEdition, []byte(edition))
	})
}

func (s *BoltStore) Commentary(ctx context.Context, surahID int) (*domain.CommentaryRecord, bool, error) {
	var rec domain.CommentaryRecord
	ok, err := s.getJSON(bucketTafseer, intKey(surahID), &rec)
	if !ok {
		return nil, false, err
	}
	return &rec, true, nil
}

func (s *BoltStore) CommentaryEdition(ctx context.Context) (string, error) {
	v, err := s.get(bucketMeta, keyEdition)
	return string(v), err
}

// === Audio ===

func (s *BoltStore) PutAudio(ctx context.Context, key domain.AudioKey, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAudio)
		if b == nil {
			return fmt.Errorf("audio bucket missing")
		}
		return b.Put([]byte(key.String()), blob)
	})
}

func (s *BoltStore) Audio(ctx context.Context, key domain.AudioKey) ([]byte, bool, error) {
	data, err := s.get(bucketAudio, []byte(key.String()))
	if err != nil || data == nil {
		return nil, false, err
	}
	return data, true, nil
}

// === Bookkeeping ===

// Count reads the key count from bucket statistics; values are not decoded.
func (s *BoltStore) Count(ctx context.Context, c domain.Collection) (int, error) {
	name, err := bucketFor(c)
	if err != nil {
		return 0, err
	}
	n := 0
	err = s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(name); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

// Clear empties every named collection in one transaction.
func (s *BoltStore) Clear(ctx context.Context, collections ...domain.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	names := make([][]byte, 0, len(collections))
	for _, c := range collections {
		name, err := bucketFor(c)
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range names {
			if err := resetBucket(tx, name); err != nil {
				return err
			}
			if string(name) == string(bucketTafseer) {
				if err := tx.Bucket(bucketMeta).Delete(keyEdition); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *BoltStore) SchemaVersion(ctx context.Context) (int, error) {
	v, err := s.get(bucketMeta, keySchemaVersion)
	if err != nil || v == nil {
		return 0, err
	}
	return strconv.Atoi(string(v))
}
