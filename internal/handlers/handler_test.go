// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"oldvine/internal/database"
	"oldvine/internal/middleware"
	"oldvine/internal/session"
	"oldvine/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "oldvine")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "oldvine")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "api:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Sessions  *session.Store
	Admins    *store.AdminStore
	Rooms     *store.RoomStore
	RoomCats  *store.RoomCategoryStore
	Galleries *store.GalleryCategoryStore
	Blog      *store.BlogStore
	Bookings  *store.BookingStore
	Media     *store.MediaStore
	Admin     *Admin
	RoomsH    *Rooms
}

// newTestEnv creates a test environment with real stores and no cache.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk)
	admins := store.NewAdminStore(db)
	rooms := store.NewRoomStore(db)
	roomCats := store.NewRoomCategoryStore(db)
	galleries := store.NewGalleryCategoryStore(db)
	blog := store.NewBlogStore(db)
	bookings := store.NewBookingStore(db)
	media := store.NewMediaStore(db)

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Sessions:  sessions,
		Admins:    admins,
		Rooms:     rooms,
		RoomCats:  roomCats,
		Galleries: galleries,
		Blog:      blog,
		Bookings:  bookings,
		Media:     media,
		Admin:     NewAdmin(sessions, admins, rooms, roomCats, galleries, blog, bookings, media),
		RoomsH:    NewRooms(rooms, nil),
	}
}

// testAdmin ensures a known admin account exists and returns its username
// and password.
func (e *testEnv) testAdmin(t *testing.T) (string, string) {
	t.Helper()

	const username = "handler-test-admin"
	const password = "handler-test-password"

	existing, err := e.Admins.FindByUsername(username)
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if existing == nil {
		_, err = e.Admins.Create(username, "handler-test@oldvinehotel.com", password, "Test", "Test Admin")
		if err != nil {
			t.Fatalf("create admin: %v", err)
		}
		t.Cleanup(func() {
			e.DB.Exec("DELETE FROM admins WHERE username = $1", username)
		})
	}
	return username, password
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}
