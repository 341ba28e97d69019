// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package staticdata

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// mockAPI serves canned bodies by path. Paths absent from the map
// return 404. Bodies can be swapped between runs to test staleness.
type mockAPI struct {
	bodies map[string]string
}

func (m *mockAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := m.bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func fullMockBodies() map[string]string {
	return map[string]string{
		"/api/content/home":             `{"success":true,"data":{"content":{"page":"home","hero":{"title":"Welcome"}}}}`,
		"/api/content/about":            `{"success":true,"data":{"content":{"page":"about","hero":{"title":"About"}}}}`,
		"/api/room-categories":          `{"success":true,"data":{"categories":[{"slug":"classic","name":"Classic"},{"slug":"vine-suite","name":"Vine Suite"}]}}`,
		"/api/room-categories/classic":  `{"success":true,"data":{"category":{"slug":"classic","name":"Classic"}}}`,
		"/api/room-categories/vine-suite": `{"success":true,"data":{"category":{"slug":"vine-suite","name":"Vine Suite"}}}`,
		"/api/gallery-categories":       `{"success":true,"data":{"categories":[{"slug":"dining","name":"Dining"}]}}`,
		"/api/gallery-categories/dining": `{"success":true,"data":{"category":{"slug":"dining","name":"Dining"}}}`,
	}
}

func runSync(t *testing.T, api *mockAPI, outDir string) *Report {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	syncer := NewSyncer(NewClient(srv.URL, 100), outDir)
	report, err := syncer.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func TestSyncWritesVerbatimBodies(t *testing.T) {
	api := &mockAPI{bodies: fullMockBodies()}
	dir := t.TempDir()

	report := runSync(t, api, dir)
	if report.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", report.Failed())
	}

	// Every top-level file must be byte-equal to the API response.
	checks := map[string]string{
		"home-content.json":       "/api/content/home",
		"about-content.json":      "/api/content/about",
		"room-categories.json":    "/api/room-categories",
		"gallery-categories.json": "/api/gallery-categories",
	}
	for filename, path := range checks {
		got, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			t.Errorf("%s: %v", filename, err)
			continue
		}
		if !bytes.Equal(got, []byte(api.bodies[path])) {
			t.Errorf("%s: body differs from API response", filename)
		}
	}
}

func TestSyncFansOutPerSlug(t *testing.T) {
	api := &mockAPI{bodies: fullMockBodies()}
	dir := t.TempDir()

	report := runSync(t, api, dir)
	if report.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", report.Failed())
	}

	// 2 room category slugs + 1 gallery slug = 3 fan-out files.
	for _, filename := range []string{
		"room-category-classic.json",
		"room-category-vine-suite.json",
		"gallery-category-dining.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
			t.Errorf("missing fan-out file %s: %v", filename, err)
		}
	}

	// 4 top-level + 3 fan-out results.
	if len(report.Results) != 7 {
		t.Errorf("results: got %d, want 7", len(report.Results))
	}
}

func TestSyncIsolatesFailures(t *testing.T) {
	bodies := fullMockBodies()
	delete(bodies, "/api/content/about")
	api := &mockAPI{bodies: bodies}
	dir := t.TempDir()

	report := runSync(t, api, dir)

	if report.Failed() != 1 {
		t.Errorf("failed: got %d, want 1", report.Failed())
	}

	// The failing resource must not block the others.
	for _, filename := range []string{"home-content.json", "room-categories.json", "gallery-categories.json"} {
		if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
			t.Errorf("expected %s despite unrelated failure: %v", filename, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "about-content.json")); err == nil {
		t.Error("about-content.json should not exist for a failed fetch")
	}
}

func TestSyncOverwritesStaleFiles(t *testing.T) {
	api := &mockAPI{bodies: fullMockBodies()}
	dir := t.TempDir()

	runSync(t, api, dir)

	// Files stay stale until the next run.
	api.bodies["/api/content/home"] = `{"success":true,"data":{"content":{"page":"home","hero":{"title":"Renovated"}}}}`
	got, _ := os.ReadFile(filepath.Join(dir, "home-content.json"))
	if bytes.Contains(got, []byte("Renovated")) {
		t.Fatal("file changed without a sync run")
	}

	runSync(t, api, dir)
	got, _ = os.ReadFile(filepath.Join(dir, "home-content.json"))
	if !bytes.Contains(got, []byte("Renovated")) {
		t.Error("expected re-run to overwrite the stale file")
	}
}

func TestSyncCreatesOutputDir(t *testing.T) {
	api := &mockAPI{bodies: fullMockBodies()}
	dir := filepath.Join(t.TempDir(), "nested", "static-data")

	report := runSync(t, api, dir)
	if report.Failed() != 0 {
		t.Fatalf("expected no failures, got %d", report.Failed())
	}
	if _, err := os.Stat(filepath.Join(dir, "home-content.json")); err != nil {
		t.Errorf("expected output in created dir: %v", err)
	}
}
