package ports

import (
	"context"

	"github.com/techvantage/edu-platform/internal/core/domain"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// List returns the most recent entries, newest first.
	List(ctx context.Context, skip, limit int) ([]*domain.AuditEntry, error)
}

// AuditRecorder is the fire-and-forget side consumed by services. The
// implementation (a sharded worker pool) persists entries asynchronously;
// Record never blocks on storage and never returns an error.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
