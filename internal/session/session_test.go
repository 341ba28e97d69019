package session

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
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

func TestSessionCreateAndGet(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	adminID := uuid.New()
	token, err := store.Create(ctx, &Data{
		AdminID:   adminID,
		Username:  "admin",
		Email:     "admin@test.local",
		FirstName: "Test",
		FullName:  "Test Admin",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(token) != tokenLength*2 {
		t.Errorf("token length: got %d, want %d hex chars", len(token), tokenLength*2)
	}

	data, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data == nil {
		t.Fatal("expected session data, got nil")
	}
	if data.AdminID != adminID {
		t.Errorf("admin ID: got %s, want %s", data.AdminID, adminID)
	}
	if data.Username != "admin" {
		t.Errorf("username: got %q, want %q", data.Username, "admin")
	}
	if data.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSessionGetUnknownToken(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	data, err := store.Get(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("expected nil for unknown token")
	}

	data, err = store.Get(ctx, "")
	if err != nil {
		t.Fatalf("Get empty: %v", err)
	}
	if data != nil {
		t.Error("expected nil for empty token")
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	t1, err := store.Create(ctx, &Data{AdminID: uuid.New(), Username: "a"})
	if err != nil {
		t.Fatalf("Create t1: %v", err)
	}
	t2, err := store.Create(ctx, &Data{AdminID: uuid.New(), Username: "b"})
	if err != nil {
		t.Fatalf("Create t2: %v", err)
	}
	if t1 == t2 {
		t.Error("expected distinct tokens for distinct sessions")
	}
}

func TestSessionUpdate(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	token, err := store.Create(ctx, &Data{AdminID: uuid.New(), Username: "admin", FullName: "Before"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	data, _ := store.Get(ctx, token)
	data.FullName = "After"
	if err := store.Update(ctx, token, data); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := store.Get(ctx, token)
	if got.FullName != "After" {
		t.Errorf("full name: got %q, want %q", got.FullName, "After")
	}
}

func TestSessionDestroy(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client)
	ctx := context.Background()

	token, err := store.Create(ctx, &Data{AdminID: uuid.New(), Username: "admin"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	data, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get after destroy: %v", err)
	}
	if data != nil {
		t.Error("expected nil after destroy")
	}

	// Destroying again is a no-op.
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
}
