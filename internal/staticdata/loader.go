// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package staticdata

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"oldvine/internal/models"
)

// Loader reads the synchronizer's output directory. Every getter returns
// its zero value when a file is missing or malformed; callers fall back
// to default copy instead of handling errors.
type Loader struct {
	dir string
}

// NewLoader creates a loader over the given static data directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// load reads filename, unwraps the envelope, and decodes Data into out.
// Returns false on any failure.
func (l *Loader) load(filename string, out any) bool {
	body, err := os.ReadFile(filepath.Join(l.dir, filename))
	if err != nil {
		return false
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false
	}
	if !env.Success || env.Data == nil {
		return false
	}
	return json.Unmarshal(env.Data, out) == nil
}

// HomeContent returns the home page document, or nil.
func (l *Loader) HomeContent() *models.PageContent {
	var p contentPayload
	if !l.load("home-content.json", &p) {
		return nil
	}
	return p.Content
}

// AboutContent returns the about page document, or nil.
func (l *Loader) AboutContent() *models.PageContent {
	var p contentPayload
	if !l.load("about-content.json", &p) {
		return nil
	}
	return p.Content
}

// RoomCategories returns the mirrored category list, or nil.
func (l *Loader) RoomCategories() []models.RoomCategory {
	var p roomCategoriesPayload
	if !l.load("room-categories.json", &p) {
		return nil
	}
	return p.Categories
}

// RoomCategory returns one mirrored category detail, or nil.
func (l *Loader) RoomCategory(slug string) *models.RoomCategory {
	var p roomCategoryPayload
	if !l.load("room-category-"+slug+".json", &p) {
		return nil
	}
	return p.Category
}

// GalleryCategories returns the mirrored gallery list, or nil.
func (l *Loader) GalleryCategories() []models.GalleryCategory {
	var p galleryCategoriesPayload
	if !l.load("gallery-categories.json", &p) {
		return nil
	}
	return p.Categories
}

// GalleryCategory returns one mirrored gallery detail, or nil.
func (l *Loader) GalleryCategory(slug string) *models.GalleryCategory {
	var p galleryCategoryPayload
	if !l.load("gallery-category-"+slug+".json", &p) {
		return nil
	}
	return p.Category
}
