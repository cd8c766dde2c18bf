package postgres

import (
	"context"
	"testing"
	"time"
)

func TestNewPoolInvalidURL(t *testing.T) {
	ctx := context.Background()

	if _, err := NewPool(ctx, "not-a-url", 1, 0); err == nil {
		t.Fatalf("expected error when parsing invalid URL")
	}
}

func TestNewPoolPingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewPool(ctx, "postgres://nobody@127.0.0.1:1/db?connect_timeout=1", 1, 0)
	if err == nil {
		t.Fatalf("expected error when pool cannot connect")
	}
}
