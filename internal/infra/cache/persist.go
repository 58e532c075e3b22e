package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booknow/internal/errors"
	"booknow/internal/infra/resilience"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type persistedEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	TTL       time.Duration   `json:"ttl"`
	Version   string          `json:"version,omitempty"`
}

// Persister mirrors a Manager into a blob bucket as one snapshot object.
// Writes are best-effort: failures are logged and the cache keeps serving from memory.
type Persister struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewPersister wraps an open bucket.
func NewPersister(bucket *blob.Bucket, logger *slog.Logger) *Persister {
	return &Persister{bucket: bucket, logger: logger}
}

func snapshotKey(m *Manager) string {
	return "cache/" + m.name + ".json"
}

// Save writes the current entries of m if anything changed since the last save.
func (p *Persister) Save(ctx context.Context, m *Manager) error {
	m.mu.Lock()
	if !m.dirty {
		m.mu.Unlock()

		return nil
	}

	snapshot := make(map[string]persistedEntry, len(m.entries))
	for k, e := range m.entries {
		raw, err := json.Marshal(e.data)
		if err != nil {
			// unserializable values stay memory-only
			continue
		}
		snapshot[k] = persistedEntry{Data: raw, Timestamp: e.timestamp, TTL: e.ttl, Version: e.version}
	}
	m.dirty = false
	m.mu.Unlock()

	body, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to encode cache snapshot")
	}

	if err := p.bucket.WriteAll(ctx, snapshotKey(m), body, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		m.mu.Lock()
		m.dirty = true
		m.mu.Unlock()

		return errors.Wrapf(err, "failed to write cache snapshot %s", m.name)
	}

	return nil
}

// Load restores the snapshot of m, skipping entries that have already expired.
// A missing snapshot is not an error.
func (p *Persister) Load(ctx context.Context, m *Manager) (int, error) {
	body, err := p.bucket.ReadAll(ctx, snapshotKey(m))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return 0, nil
		}

		return 0, errors.Wrapf(err, "failed to read cache snapshot %s", m.name)
	}

	var snapshot map[string]persistedEntry
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return 0, errors.Wrapf(err, "failed to decode cache snapshot %s", m.name)
	}

	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	restored := 0
	for k, pe := range snapshot {
		e := &entry{data: pe.Data, timestamp: pe.Timestamp, ttl: pe.TTL, version: pe.Version}
		if !e.validAt(now) {
			continue
		}
		if _, exists := m.entries[k]; !exists && m.maxSize > 0 && len(m.entries) >= m.maxSize {
			m.evictOldestLocked()
		}
		m.entries[k] = e
		restored++
	}

	return restored, nil
}

// Run saves m every interval until ctx is done, then saves once more.
func (p *Persister) Run(ctx context.Context, m *Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.saveLogged(context.WithoutCancel(ctx), m)

			return
		case <-ticker.C:
			p.saveLogged(ctx, m)
		}
	}
}

func (p *Persister) saveLogged(ctx context.Context, m *Manager) {
	if err := p.Save(ctx, m); err != nil {
		p.logger.DebugContext(ctx, "Cache snapshot not saved",
			slog.String("cache", m.name),
			slog.Any("error", err),
			resilience.CategorySystem.Attr(),
		)
	}
}
