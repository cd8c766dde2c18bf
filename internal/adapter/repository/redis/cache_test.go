package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "balance:acc-1", []byte(`{"balance":"100"}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "balance:acc-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != `{"balance":"100"}` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestCacheMissIsNotAnError(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)

	val, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected nil error on miss, got %v", err)
	}
	if val != nil {
		t.Fatalf("expected nil value on miss, got %s", val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", []byte("bar"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	val, err := cache.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != nil {
		t.Fatalf("expected deleted key to read as a miss, got %s", val)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("lived"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Second)

	val, err := cache.Get(ctx, "short")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != nil {
		t.Fatalf("expected expired key to read as a miss, got %s", val)
	}
}
