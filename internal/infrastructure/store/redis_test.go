package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestRedisBackend(t *testing.T) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisBackend(rdb), mr
}

func TestRedisBackend_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	b, mr := newTestRedisBackend(t)

	if err := b.Set(ctx, "sid1", "authToken", "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Verify the key schema on the wire.
	if got, _ := mr.Get("session:sid1:authToken"); got != "tok-123" {
		t.Fatalf("unexpected raw value %q", got)
	}

	val, ok, err := b.Get(ctx, "sid1", "authToken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "tok-123" {
		t.Fatalf("expected tok-123, got %q (ok=%v)", val, ok)
	}
}

func TestRedisBackend_MissingKeyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestRedisBackend(t)

	_, ok, err := b.Get(ctx, "sid1", "authToken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestRedisBackend_Remove(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestRedisBackend(t)

	_ = b.Set(ctx, "sid1", "authToken", "tok")
	if err := b.Remove(ctx, "sid1", "authToken"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "sid1", "authToken"); ok {
		t.Fatalf("expected miss after remove")
	}

	// Removing an absent key is fine.
	if err := b.Remove(ctx, "sid1", "authToken"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestRedisBackend_ConnectFailsFast(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := ConnectRedis(context.Background(), RedisConfig{Addr: addr}); err == nil {
		t.Fatalf("expected connection error against closed server")
	}
}
