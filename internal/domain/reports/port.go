package reports

import (
	"context"
	"errors"
)

// ErrNotFound indicates no report exists under the requested id.
var ErrNotFound = errors.New("report not found")

// Repository port (interface for persistence). Implementations: the
// single-key file store (device semantics) and the MySQL/Postgres repos
// (server-side sync target).
type Repository interface {
	Save(ctx context.Context, r *Report) error
	Get(ctx context.Context, id ReportID) (*Report, error)
	List(ctx context.Context) ([]*Report, error)
	Delete(ctx context.Context, id ReportID) error
}

// ArchiveStore port for uploading rendered report exports.
type ArchiveStore interface {
	UploadHTML(ctx context.Context, key string, html []byte) (string, error)
}
