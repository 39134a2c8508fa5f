package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/albayan/bayan/internal/domain"
	"github.com/albayan/bayan/internal/store/migrations"

	// Import SQLite driver for database/sql
	_ "modernc.org/sqlite"
)

const metaEditionKey = "commentary_edition"

// table describes how one collection maps onto SQL.
type table struct {
	name   string
	keyCol string
}

func tableFor(c domain.Collection) (table, error) {
	switch c {
	case domain.CollectionSurahs:
		return table{"surahs", "id"}, nil
	case domain.CollectionPages:
		return table{"pages", "number"}, nil
	case domain.CollectionCommentary:
		return table{"tafseer", "id"}, nil
	case domain.CollectionAudio:
		return table{"audio", "key"}, nil
	}
	return table{}, fmt.Errorf("unknown collection %q", c)
}

// SQLStore implements domain.Store on an embedded SQLite database.
// Records are stored as JSON documents, audio as raw blobs.
type SQLStore struct {
	db *sql.DB
}

var _ domain.Store = (*SQLStore)(nil)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// openSQLite opens the database and migrates it to version (0 = latest).
func openSQLite(path string, timeout time.Duration, version uint) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.ToSlash(absPath), timeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db, version); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Serialize writers; audio downloads write from many goroutines.
	db.SetMaxOpenConns(1)

	return &SQLStore{db: db}, nil
}

func runMigrations(db *sql.DB, version uint) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialise migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	defer func() {
		_ = sourceDriver.Close()
	}()

	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if version == 0 {
		err = migrator.Up()
	} else {
		err = migrator.Migrate(version)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// === Generic helpers ===

func exec(ctx context.Context, runner execer, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = runner.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback error: %w)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func readData(ctx context.Context, runner queryRower, t table, key interface{}) ([]byte, bool, error) {
	query, args, err := sq.Select("data").From(t.name).Where(sq.Eq{t.keyCol: key}).ToSql()
	if err != nil {
		return nil, false, err
	}
	var data []byte
	err = runner.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", t.name, err)
	}
	return data, true, nil
}

func readJSON(ctx context.Context, runner queryRower, t table, key interface{}, dest interface{}) (bool, error) {
	data, ok, err := readData(ctx, runner, t, key)
	if !ok {
		return false, err
	}
	if err := decodeJSON(data, dest); err != nil {
		return false, fmt.Errorf("decode %s/%v: %w", t.name, key, err)
	}
	return true, nil
}

func replaceJSON(ctx context.Context, runner execer, t table, key interface{}, value interface{}) error {
	data, err := encodeJSON(value)
	if err != nil {
		return err
	}
	return exec(ctx, runner, sq.Replace(t.name).Columns(t.keyCol, "data").Values(key, data))
}

func readMeta(ctx context.Context, runner queryRower, key string) (string, error) {
	query, args, err := sq.Select("value").From("meta").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", err
	}
	var value string
	err = runner.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// === Scripture ===

func (s *SQLStore) SaveScripture(ctx context.Context, surahs []domain.SurahRecord, pages []domain.PageRecord) error {
	surahTable, _ := tableFor(domain.CollectionSurahs)
	pageTable, _ := tableFor(domain.CollectionPages)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range surahs {
			if err := replaceJSON(ctx, tx, surahTable, surahs[i].ID, &surahs[i]); err != nil {
				return fmt.Errorf("failed to save surah %d: %w", surahs[i].ID, err)
			}
		}
		for i := range pages {
			if err := replaceJSON(ctx, tx, pageTable, pages[i].Number, &pages[i]); err != nil {
				return fmt.Errorf("failed to save page %d: %w", pages[i].Number, err)
			}
		}
		return nil
	})
}

func (s *SQLStore) Surah(ctx context.Context, id int) (*domain.SurahRecord, bool, error) {
	t, _ := tableFor(domain.CollectionSurahs)
	var rec domain.SurahRecord
	ok, err := readJSON(ctx, s.db, t, id, &rec)
	if !ok {
		return nil, false, err
	}
	return &rec, true, nil
}

func (s *SQLStore) Page(ctx context.Context, number int) (*domain.PageRecord, bool, error) {
	t, _ := tableFor(domain.CollectionPages)
	var rec domain.PageRecord
	ok, err := readJSON(ctx, s.db, t, number, &rec)
	if !ok {
		return nil, false, err
	}
	return &rec, true, nil
}

// === Commentary ===

func (s *SQLStore) SaveCommentary(ctx context.Context, edition string, records []domain.CommentaryRecord) error {
	t, _ := tableFor(domain.CollectionCommentary)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		prev, err := readMeta(ctx, tx, metaEditionKey)
		if err != nil {
			return fmt.Errorf("failed to read cached edition: %w", err)
		}
		if prev != "" && prev != edition {
			if err := exec(ctx, tx, sq.Delete(t.name)); err != nil {
				return fmt.Errorf("failed to drop edition %s: %w", prev, err)
			}
		}
		for _, rec := range records {
			rec.Edition = edition
			if err := replaceJSON(ctx, tx, t, rec.ID, &rec); err != nil {
				return fmt.Errorf("failed to save commentary %d: %w", rec.ID, err)
			}
		}
		return exec(ctx, tx, sq.Replace("meta").Columns("key", "value").Values(metaEditionKey, edition))
	})
}

func (s *SQLStore) Commentary(ctx context.Context, surahID int) (*domain.CommentaryRecord, bool, error) {
	t, _ := tableFor(domain.CollectionCommentary)
	var rec domain.CommentaryRecord
	ok, err := readJSON(ctx, s.db, t, surahID, &rec)
	if !ok {
		return nil, false, err
	}
	return &rec, true, nil
}

func (s *SQLStore) CommentaryEdition(ctx context.Context) (string, error) {
	return readMeta(ctx, s.db, metaEditionKey)
}

// === Audio ===

func (s *SQLStore) PutAudio(ctx context.Context, key domain.AudioKey, blob []byte) error {
	t, _ := tableFor(domain.CollectionAudio)
	return exec(ctx, s.db, sq.Replace(t.name).Columns(t.keyCol, "data").Values(key.String(), blob))
}

func (s *SQLStore) Audio(ctx context.Context, key domain.AudioKey) ([]byte, bool, error) {
	t, _ := tableFor(domain.CollectionAudio)
	return readData(ctx, s.db, t, key.String())
}

// === Bookkeeping ===

func (s *SQLStore) Count(ctx context.Context, c domain.Collection) (int, error) {
	t, err := tableFor(c)
	if err != nil {
		return 0, err
	}
	query, args, err := sq.Select("COUNT(*)").From(t.name).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// Clear empties every named collection in one transaction.
func (s *SQLStore) Clear(ctx context.Context, collections ...domain.Collection) error {
	tables := make([]table, 0, len(collections))
	for _, c := range collections {
		t, err := tableFor(c)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, t := range tables {
			if err := exec(ctx, tx, sq.Delete(t.name)); err != nil {
				return fmt.Errorf("failed to clear %s: %w", t.name, err)
			}
			if t.name == "tafseer" {
				if err := exec(ctx, tx, sq.Delete("meta").Where(sq.Eq{"key": metaEditionKey})); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *SQLStore) SchemaVersion(ctx context.Context) (int, error) {
	query, args, err := sq.Select("version").From("schema_migrations").Limit(1).ToSql()
	if err != nil {
		return 0, err
	}
	var v int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return v, err
}
