// Package store persists analysis sessions in SQLite.
package store

import (
	"context"

	"github.com/thinkflow/thinkflow/internal/model"
)

// SaveParams holds parameters for storing an analysis pass.
type SaveParams struct {
	Context string
	Result  *model.AnalysisResult
}

// SearchParams holds parameters for searching session history.
type SearchParams struct {
	Query string
	Limit int
}

// Store defines the session storage interface. A session is replaced
// wholesale per analysis pass; earlier passes stay as history versions.
type Store interface {
	// Save stores one analysis pass as the new current session version.
	Save(ctx context.Context, p SaveParams) (*model.Session, error)

	// Current returns the latest session version, or an error if none.
	Current(ctx context.Context) (*model.Session, error)

	// History lists stored versions, newest first.
	History(ctx context.Context, limit int) ([]model.Session, error)

	// Search does a full-text search over stored session contexts.
	Search(ctx context.Context, p SearchParams) ([]model.Session, error)

	// Reset discards all session versions.
	Reset(ctx context.Context) error

	// Close closes the store.
	Close() error
}
