// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "api:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestAPICacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	c := NewAPICache(client, 1*time.Minute)
	ctx := context.Background()

	body := []byte(`{"success":true,"data":{"rooms":[]}}`)
	c.Set(ctx, "rooms", body)

	got, ok := c.Get(ctx, "rooms")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != string(body) {
		t.Errorf("body: got %q, want %q", got, body)
	}
}

func TestAPICacheMiss(t *testing.T) {
	client := testValkeyClient(t)
	c := NewAPICache(client, 1*time.Minute)

	_, ok := c.Get(context.Background(), "never-set")
	if ok {
		t.Error("expected cache miss")
	}
}

func TestAPICacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	c := NewAPICache(client, 1*time.Minute)
	ctx := context.Background()

	c.Set(ctx, "blog", []byte(`{}`))
	c.Invalidate(ctx, "blog")

	_, ok := c.Get(ctx, "blog")
	if ok {
		t.Error("expected miss after invalidate")
	}
}

func TestAPICacheInvalidatePrefix(t *testing.T) {
	client := testValkeyClient(t)
	c := NewAPICache(client, 1*time.Minute)
	ctx := context.Background()

	c.Set(ctx, "room-categories", []byte(`{}`))
	c.Set(ctx, "room-categories:classic", []byte(`{}`))
	c.Set(ctx, "room-categories:vine-suite", []byte(`{}`))
	c.Set(ctx, "gallery-categories", []byte(`{}`))

	c.InvalidatePrefix(ctx, "room-categories")

	if _, ok := c.Get(ctx, "room-categories:classic"); ok {
		t.Error("expected per-slug key to be cleared")
	}
	if _, ok := c.Get(ctx, "room-categories"); ok {
		t.Error("expected list key to be cleared")
	}
	if _, ok := c.Get(ctx, "gallery-categories"); !ok {
		t.Error("expected unrelated key to survive")
	}
}

func TestAPICacheTTLExpiry(t *testing.T) {
	client := testValkeyClient(t)
	c := NewAPICache(client, 1*time.Second)
	ctx := context.Background()

	c.Set(ctx, "short-lived", []byte(`{}`))
	time.Sleep(1500 * time.Millisecond)

	if _, ok := c.Get(ctx, "short-lived"); ok {
		t.Error("expected key to expire")
	}
}
