// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"oldvine/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "oldvine")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "oldvine")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanAdmins removes test admins by username. Call in t.Cleanup().
func cleanAdmins(t *testing.T, db *sql.DB, usernames ...string) {
	t.Helper()
	for _, username := range usernames {
		db.Exec("DELETE FROM admins WHERE username = $1", username)
	}
}

// cleanRooms removes test rooms by room number. Call in t.Cleanup().
func cleanRooms(t *testing.T, db *sql.DB, numbers ...string) {
	t.Helper()
	for _, number := range numbers {
		db.Exec("DELETE FROM rooms WHERE room_number = $1", number)
	}
}

// cleanRoomCategories removes test room categories by slug. Call in t.Cleanup().
func cleanRoomCategories(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM room_categories WHERE slug = $1", slug)
	}
}

// cleanBlogPosts removes test posts by slug. Call in t.Cleanup().
func cleanBlogPosts(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM blog_posts WHERE slug = $1", slug)
	}
}

// cleanMedia removes test media records by filename. Call in t.Cleanup().
func cleanMedia(t *testing.T, db *sql.DB, filenames ...string) {
	t.Helper()
	for _, filename := range filenames {
		db.Exec("DELETE FROM media WHERE filename = $1", filename)
	}
}

// cleanBookings removes test bookings by booking number. Call in t.Cleanup().
func cleanBookings(t *testing.T, db *sql.DB, numbers ...string) {
	t.Helper()
	for _, number := range numbers {
		db.Exec("DELETE FROM bookings WHERE booking_number = $1", number)
	}
}
