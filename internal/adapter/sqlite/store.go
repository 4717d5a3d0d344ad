// Package sqlite implements the phrase dictionary on an embedded SQLite
// database: a packaged read-only main table set plus a writable user table
// set that lives in an attached in-memory database and is flushed back to
// disk by a deferred backup job.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // database/sql driver

	"github.com/inkstone-im/pinwheel/internal/domain"
)

const (
	maxPhraseLen = domain.MaxPhraseLen

	cacheSize     = 5000
	backupTimeout = 60 * time.Second

	userDictFile = "user-1.0.db"
	userDictVer  = "1.2.0"
)

// Config parameterizes Open.
type Config struct {
	// MainDictPaths is probed in order; the first openable file wins.
	MainDictPaths []string

	// UserDataDir receives the persisted user dictionary. Created with
	// mode 0750 if absent.
	UserDataDir string

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Clock defaults to the real clock; tests inject a fake one to drive
	// the backup timer.
	Clock clockwork.Clock
}

// Store is the dictionary handle shared by all contexts of a process.
// Callers must serialize access per the single-writer ownership model; the
// internal mutex only shields the backup job from concurrent learning.
type Store struct {
	log   *slog.Logger
	clock clockwork.Clock

	userDir  string
	userPath string

	mu     sync.Mutex
	db     *sql.DB
	closed bool

	timerArmed bool
	lastWrite  time.Time
	stopBackup chan struct{}
	wg         sync.WaitGroup
}

// Open locates the main dictionary, tunes the connection, and restores the
// persisted user dictionary into the attached in-memory userdb. It returns
// domain.ErrMainDictMissing when no probe path yields an openable file.
func Open(cfg Config) (*Store, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	db, path, err := openMainDict(cfg.MainDictPaths)
	if err != nil {
		return nil, err
	}
	log.Debug("main dictionary opened", "path", path)

	s := &Store{
		log:        log,
		clock:      clock,
		userDir:    cfg.UserDataDir,
		userPath:   filepath.Join(cfg.UserDataDir, userDictFile),
		db:         db,
		stopBackup: make(chan struct{}),
	}

	// Prefer speed over crash durability: the user data is periodically
	// backed up and the main tables are read-only.
	pragmas := fmt.Sprintf(
		"PRAGMA synchronous=OFF; PRAGMA cache_size=%d; PRAGMA locking_mode=EXCLUSIVE;",
		cacheSize)
	if _, err := db.Exec(pragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: set pragmas: %w", err)
	}

	if err := s.loadUserDB(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: load user dictionary: %w", err)
	}

	return s, nil
}

// openMainDict probes the path list and returns the first connection that
// answers a ping.
func openMainDict(paths []string) (*sql.DB, string, error) {
	for _, path := range paths {
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			continue
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			continue
		}
		// The attached userdb lives on one connection; keep the pool at a
		// single connection so every statement sees it.
		db.SetMaxOpenConns(1)
		if err := db.Ping(); err != nil {
			db.Close()
			continue
		}
		return db, path, nil
	}
	return nil, "", domain.ErrMainDictMissing
}

// loadUserDB attaches an empty in-memory userdb, migrates the persisted
// file, and restores its rows. A persisted file that cannot be opened or
// migrated degrades to an empty in-memory dictionary.
func (s *Store) loadUserDB() error {
	if _, err := s.db.Exec(`ATTACH DATABASE ':memory:' AS userdb`); err != nil {
		return fmt.Errorf("attach userdb: %w", err)
	}
	if _, err := s.db.Exec(userSchemaSQL("userdb.")); err != nil {
		return fmt.Errorf("create userdb schema: %w", err)
	}

	if err := s.prepareUserFile(); err != nil {
		s.log.Warn("user dictionary unavailable, learning in memory only",
			"path", s.userPath, "error", err)
		return nil
	}

	if err := s.restoreUserDB(); err != nil {
		s.log.Warn("restore user dictionary failed", "path", s.userPath, "error", err)
	}
	return nil
}

// prepareUserFile creates the data directory and brings the persisted file
// schema up to date, stamping the desc table on first creation.
func (s *Store) prepareUserFile() error {
	if err := os.MkdirAll(s.userDir, 0o750); err != nil {
		return fmt.Errorf("create user data dir: %w", err)
	}

	db, err := sql.Open("sqlite", s.userPath)
	if err != nil {
		return fmt.Errorf("open user file: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	now := s.clock.Now().Format(time.DateTime)
	hostname, _ := os.Hostname()
	desc := [][2]string{
		{"version", userDictVer},
		{"uuid", uuid.NewString()},
		{"hostname", hostname},
		{"username", username()},
		{"create-time", now},
		{"attach-time", now},
	}
	for _, kv := range desc {
		query, args, err := sq.Insert("desc").
			Options("OR IGNORE").
			Columns("name", "value").
			Values(kv[0], kv[1]).
			ToSql()
		if err != nil {
			return fmt.Errorf("build desc insert: %w", err)
		}
		if _, err := db.Exec(query, args...); err != nil {
			return fmt.Errorf("stamp desc: %w", err)
		}
	}
	return nil
}

func username() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}

// restoreUserDB copies the persisted rows into the attached in-memory
// database.
func (s *Store) restoreUserDB() error {
	if _, err := s.db.Exec(`ATTACH DATABASE '` + s.userPath + `' AS persisted`); err != nil {
		return fmt.Errorf("attach persisted: %w", err)
	}
	defer s.db.Exec(`DETACH DATABASE persisted`)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO userdb.desc SELECT name, value FROM persisted.desc`); err != nil {
		return fmt.Errorf("restore desc: %w", err)
	}
	for i := 1; i <= maxPhraseLen; i++ {
		stmt := fmt.Sprintf(`INSERT INTO %s SELECT * FROM %s`,
			phraseTable("userdb.", i), phraseTable("persisted.", i))
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("restore %s: %w", phraseTable("", i), err)
		}
	}
	return tx.Commit()
}

// saveUserDB writes the in-memory user dictionary to a temp file next to
// the persisted one and renames it into place.
func (s *Store) saveUserDB() error {
	if err := os.MkdirAll(s.userDir, 0o750); err != nil {
		return fmt.Errorf("create user data dir: %w", err)
	}
	tmp := s.userPath + "-tmp"
	os.Remove(tmp)

	if _, err := s.db.Exec(`VACUUM userdb INTO '` + tmp + `'`); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("vacuum userdb: %w", err)
	}
	if err := os.Rename(tmp, s.userPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace user file: %w", err)
	}
	return nil
}

// modified records a learning write and arms the one-shot backup timer.
// Callers hold s.mu.
func (s *Store) modified() {
	s.lastWrite = s.clock.Now()
	if s.timerArmed {
		return
	}
	s.timerArmed = true
	s.wg.Add(1)
	go s.backupLoop()
}

// backupLoop waits out the quiet period and persists the user dictionary.
// It re-fires until a backup succeeds after a full quiet period, then
// disarms.
func (s *Store) backupLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.stopBackup:
			return
		case <-s.clock.After(backupTimeout):
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		if s.clock.Since(s.lastWrite) >= backupTimeout {
			if err := s.saveUserDB(); err != nil {
				s.log.Warn("user dictionary backup failed", "error", err)
			} else {
				s.timerArmed = false
				s.mu.Unlock()
				return
			}
		}
		s.mu.Unlock()
	}
}

// Learn records committed phrases: each phrase is inserted (ignoring
// duplicates) and its user frequency bumped; a multi-phrase commit also
// records the concatenation so the composition surfaces as a single
// candidate next time. One transaction covers the batch.
func (s *Store) Learn(phrases []domain.Phrase) error {
	if len(phrases) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin learn: %w", err)
	}
	defer tx.Rollback()

	for _, p := range phrases {
		if err := learnOne(tx, p); err != nil {
			return err
		}
	}
	if len(phrases) > 1 {
		if err := learnOne(tx, domain.ConcatAll(phrases)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit learn: %w", err)
	}

	s.modified()
	return nil
}

func learnOne(tx *sql.Tx, p domain.Phrase) error {
	if p.Empty() || p.Len() > maxPhraseLen {
		return fmt.Errorf("%w: phrase of %d syllables", domain.ErrInvalidArgument, p.Len())
	}
	table := phraseTable("userdb.", p.Len())

	cols := append([]string{"user_freq", "phrase", "freq"}, colNames(p.Len())...)
	vals := []any{0, p.Text, p.Freq}
	for _, id := range p.ID {
		vals = append(vals, id.Sheng, id.Yun)
	}

	query, args, err := sq.Insert(table).Options("OR IGNORE").Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build insert: %w", err)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("sqlite: insert phrase: %w", err)
	}

	query, args, err = sq.Update(table).
		Set("user_freq", sq.Expr("user_freq+1")).
		Where(phraseEq(p)).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build update: %w", err)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("sqlite: bump user_freq: %w", err)
	}
	return nil
}

// Remove deletes the exact phrase row from the user dictionary.
func (s *Store) Remove(p domain.Phrase) error {
	if p.Empty() || p.Len() > maxPhraseLen {
		return fmt.Errorf("%w: phrase of %d syllables", domain.ErrInvalidArgument, p.Len())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrClosed
	}

	query, args, err := sq.Delete(phraseTable("userdb.", p.Len())).Where(phraseEq(p)).ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build delete: %w", err)
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("sqlite: remove phrase: %w", err)
	}

	s.modified()
	return nil
}

// phraseEq matches a phrase row by its full id sequence and text.
func phraseEq(p domain.Phrase) sq.Eq {
	eq := sq.Eq{"phrase": p.Text}
	for i, id := range p.ID {
		eq[fmt.Sprintf("s%d", i)] = id.Sheng
		eq[fmt.Sprintf("y%d", i)] = id.Yun
	}
	return eq
}

// Close stops the backup job, forcing one final save if writes are
// pending, and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.stopBackup)

	var saveErr error
	if s.timerArmed {
		saveErr = s.saveUserDB()
		s.timerArmed = false
	}
	db := s.db
	s.mu.Unlock()

	s.wg.Wait()

	if saveErr != nil {
		s.log.Warn("final user dictionary backup failed", "error", saveErr)
	}
	return db.Close()
}
