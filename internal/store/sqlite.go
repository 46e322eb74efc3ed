package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/thinkflow/thinkflow/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		context     TEXT NOT NULL,
		result      TEXT,
		version     INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_version ON sessions(version DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_deleted ON sessions(deleted_at);

	CREATE VIRTUAL TABLE IF NOT EXISTS sessions_fts USING fts5(
		context,
		content=sessions,
		content_rowid=rowid
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// FTS5 triggers for automatic sync
	s.db.Exec(`CREATE TRIGGER IF NOT EXISTS sessions_ai AFTER INSERT ON sessions BEGIN
		INSERT INTO sessions_fts(rowid, context) VALUES (new.rowid, new.context);
	END`)
	s.db.Exec(`CREATE TRIGGER IF NOT EXISTS sessions_ad AFTER DELETE ON sessions BEGIN
		INSERT INTO sessions_fts(sessions_fts, rowid, context) VALUES('delete', old.rowid, old.context);
	END`)

	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, p SaveParams) (*model.Session, error) {
	now := time.Now().UTC()
	id := s.newID()

	var resultJSON *string
	if p.Result != nil {
		b, err := json.Marshal(p.Result)
		if err != nil {
			return nil, fmt.Errorf("marshal result: %w", err)
		}
		str := string(b)
		resultJSON = &str
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var prevVersion int
	err = tx.QueryRowContext(ctx,
		`SELECT version FROM sessions WHERE deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`).Scan(&prevVersion)
	version := 1
	if err == nil {
		version = prevVersion + 1
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, context, result, version, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, p.Context, resultJSON, version, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Session{
		ID:        id,
		Context:   p.Context,
		Result:    p.Result,
		Version:   version,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) Current(ctx context.Context) (*model.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, context, result, version, created_at FROM sessions
		 WHERE deleted_at IS NULL ORDER BY version DESC LIMIT 1`)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no current session")
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SQLiteStore) History(ctx context.Context, limit int) ([]model.Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, context, result, version, created_at FROM sessions
		 WHERE deleted_at IS NULL ORDER BY version DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Session, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.context, s.result, s.version, s.created_at
		 FROM sessions_fts f
		 JOIN sessions s ON s.rowid = f.rowid
		 WHERE sessions_fts MATCH ? AND s.deleted_at IS NULL
		 ORDER BY rank LIMIT ?`, p.Query, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (s *SQLiteStore) Reset(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET deleted_at = ? WHERE deleted_at IS NULL`, now)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row scanner) (model.Session, error) {
	var sess model.Session
	var resultJSON sql.NullString
	var createdAt string

	err := row.Scan(&sess.ID, &sess.Context, &resultJSON, &sess.Version, &createdAt)
	if err != nil {
		return sess, err
	}

	sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if resultJSON.Valid {
		var res model.AnalysisResult
		if err := json.Unmarshal([]byte(resultJSON.String), &res); err == nil {
			sess.Result = &res
		}
	}
	return sess, nil
}

func collectSessions(rows *sql.Rows) ([]model.Session, error) {
	var sessions []model.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
