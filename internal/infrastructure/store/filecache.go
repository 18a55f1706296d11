package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultFileTTL is how long a file-cache entry stays readable. It mirrors
// the upstream credential policy: old enough to survive gateway restarts
// and Redis flushes, short enough not to outlive a revoked account.
const DefaultFileTTL = 7 * 24 * time.Hour

// FileBackend is the secondary token store backend: a directory of JSON
// files, one per (session, key), each stamped with an expiry deadline.
// It exists so a Redis outage or flush does not log every admin out.
type FileBackend struct {
	dir   string
	ttl   time.Duration
	clock clockwork.Clock
}

// NewFileBackend creates a file backend rooted at dir. A zero ttl means
// DefaultFileTTL; a nil clock means the real clock.
func NewFileBackend(dir string, ttl time.Duration, clock clockwork.Clock) *FileBackend {
	if ttl <= 0 {
		ttl = DefaultFileTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &FileBackend{dir: dir, ttl: ttl, clock: clock}
}

func (b *FileBackend) Name() string { return "file" }

// fileEntry is the on-disk format.
type fileEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (b *FileBackend) Get(_ context.Context, sid, key string) (string, bool, error) {
	raw, err := os.ReadFile(b.path(sid, key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file read: %w", err)
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Corrupt entry counts as absent; drop it.
		_ = os.Remove(b.path(sid, key))
		return "", false, nil
	}

	if b.clock.Now().After(entry.ExpiresAt) {
		_ = os.Remove(b.path(sid, key))
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (b *FileBackend) Set(_ context.Context, sid, key, value string) error {
	entry := fileEntry{
		Value:     value,
		ExpiresAt: b.clock.Now().Add(b.ttl),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("file marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(b.dir, sid), 0o700); err != nil {
		return fmt.Errorf("file mkdir: %w", err)
	}
	if err := os.WriteFile(b.path(sid, key), raw, 0o600); err != nil {
		return fmt.Errorf("file write: %w", err)
	}
	return nil
}

func (b *FileBackend) Remove(_ context.Context, sid, key string) error {
	err := os.Remove(b.path(sid, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file remove: %w", err)
	}
	return nil
}

func (b *FileBackend) path(sid, key string) string {
	return filepath.Join(b.dir, sid, key+".json")
}
