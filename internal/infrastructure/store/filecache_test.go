package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestFileBackend_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewFileBackend(t.TempDir(), 0, clockwork.NewFakeClock())

	if err := b.Set(ctx, "sid1", "authToken", "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}

	val, ok, err := b.Get(ctx, "sid1", "authToken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "tok-123" {
		t.Fatalf("expected tok-123, got %q (ok=%v)", val, ok)
	}
}

func TestFileBackend_MissingKeyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	b := NewFileBackend(t.TempDir(), 0, clockwork.NewFakeClock())

	_, ok, err := b.Get(ctx, "sid1", "authToken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestFileBackend_EntryExpires(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	b := NewFileBackend(t.TempDir(), DefaultFileTTL, clock)

	if err := b.Set(ctx, "sid1", "authToken", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Just inside the window the entry is still readable.
	clock.Advance(DefaultFileTTL - time.Minute)
	if _, ok, _ := b.Get(ctx, "sid1", "authToken"); !ok {
		t.Fatalf("entry expired too early")
	}

	clock.Advance(2 * time.Minute)
	if _, ok, _ := b.Get(ctx, "sid1", "authToken"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestFileBackend_CorruptEntryTreatedAsMiss(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	b := NewFileBackend(dir, 0, clockwork.NewFakeClock())

	if err := b.Set(ctx, "sid1", "authToken", "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	path := filepath.Join(dir, "sid1", "authToken.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	_, ok, err := b.Get(ctx, "sid1", "authToken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("corrupt entry must read as a miss")
	}
}

func TestFileBackend_RemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	b := NewFileBackend(t.TempDir(), 0, clockwork.NewFakeClock())

	_ = b.Set(ctx, "sid1", "authToken", "tok")
	if err := b.Remove(ctx, "sid1", "authToken"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := b.Remove(ctx, "sid1", "authToken"); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	if _, ok, _ := b.Get(ctx, "sid1", "authToken"); ok {
		t.Fatalf("expected miss after remove")
	}
}
