package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/techvantage/edu-platform/internal/api/metrics"
	"github.com/techvantage/edu-platform/internal/core/domain"
	"github.com/techvantage/edu-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher fans audit entries out to a fixed set of workers using
// consistent hashing on the actor, so one actor's entries are persisted in
// the order they were recorded.
type AuditDispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for asynchronous persistence. It never blocks:
// when the shard's buffer is full the entry is dropped and logged, keeping
// request handling independent of audit storage.
func (d *AuditDispatcher) Record(entry domain.AuditEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.Actor == "" {
		entry.Actor = "anonymous"
	}

	idx := d.shardIndex(entry.Actor)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("actor", entry.Actor).Str("action", entry.Action).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(actor string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actor))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &entry); err != nil {
				d.log.Error().Err(err).
					Str("actor", entry.Actor).
					Int("worker_id", id).
					Msg("audit entry persistence failed")
			}
		}
	}
}
