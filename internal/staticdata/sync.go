// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package staticdata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// resource is one fixed top-level endpoint the synchronizer mirrors.
type resource struct {
	Path     string
	Filename string
}

// resources is the fixed list of top-level endpoints. The two category
// lists additionally fan out to per-slug detail files.
var resources = []resource{
	{Path: "/api/content/home", Filename: "home-content.json"},
	{Path: "/api/content/about", Filename: "about-content.json"},
	{Path: "/api/room-categories", Filename: "room-categories.json"},
	{Path: "/api/gallery-categories", Filename: "gallery-categories.json"},
}

// Result records the outcome for a single written file.
type Result struct {
	Filename string
	Err      error
}

// Report aggregates a synchronizer run.
type Report struct {
	Results []Result
}

// Failed returns the number of resources that could not be mirrored.
func (r *Report) Failed() int {
	var n int
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Syncer mirrors the public API to JSON files. Each run is idempotent:
// every file is fully overwritten.
type Syncer struct {
	client *Client
	outDir string
}

// NewSyncer creates a synchronizer writing into outDir.
func NewSyncer(client *Client, outDir string) *Syncer {
	return &Syncer{client: client, outDir: outDir}
}

// Run fetches every resource, fans out to per-slug category files, and
// returns the aggregate report. A failure on one resource never aborts
// the rest.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	report := &Report{}
	for _, res := range resources {
		body, err := s.mirror(ctx, res.Path, res.Filename)
		report.Results = append(report.Results, Result{Filename: res.Filename, Err: err})
		if err != nil {
			continue
		}

		switch res.Path {
		case "/api/room-categories":
			for _, slug := range categorySlugs(body) {
				filename := "room-category-" + slug + ".json"
				_, err := s.mirror(ctx, "/api/room-categories/"+slug, filename)
				report.Results = append(report.Results, Result{Filename: filename, Err: err})
			}
		case "/api/gallery-categories":
			for _, slug := range categorySlugs(body) {
				filename := "gallery-category-" + slug + ".json"
				_, err := s.mirror(ctx, "/api/gallery-categories/"+slug, filename)
				report.Results = append(report.Results, Result{Filename: filename, Err: err})
			}
		}
	}

	return report, nil
}

// mirror fetches one path and writes the raw body verbatim.
func (s *Syncer) mirror(ctx context.Context, path, filename string) ([]byte, error) {
	body, err := s.client.Get(ctx, path)
	if err != nil {
		slog.Error("sync failed", "path", path, "file", filename, "error", err)
		return nil, err
	}

	target := filepath.Join(s.outDir, filename)
	if err := os.WriteFile(target, body, 0o644); err != nil {
		slog.Error("sync write failed", "file", filename, "error", err)
		return nil, fmt.Errorf("write %s: %w", filename, err)
	}

	slog.Info("synced", "path", path, "file", filename, "bytes", len(body))
	return body, nil
}

// categorySlugs extracts the slugs from a category list response body.
// A malformed body yields no slugs, which simply skips the fan-out.
func categorySlugs(body []byte) []string {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		slog.Warn("cannot decode category list for fan-out", "error", err)
		return nil
	}
	var payload struct {
		Categories []struct {
			Slug string `json:"slug"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		slog.Warn("cannot decode category slugs for fan-out", "error", err)
		return nil
	}

	slugs := make([]string, 0, len(payload.Categories))
	for _, c := range payload.Categories {
		if c.Slug != "" {
			slugs = append(slugs, c.Slug)
		}
	}
	return slugs
}
