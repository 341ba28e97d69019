// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"oldvine/internal/cache"
	"oldvine/internal/models"
	"oldvine/internal/store"
)

// Content serves the CMS page documents for home and about.
type Content struct {
	content *store.ContentStore
	cache   *cache.APICache
}

// NewContent creates the content handler group.
func NewContent(content *store.ContentStore, c *cache.APICache) *Content {
	return &Content{content: content, cache: c}
}

func pageParam(r *http.Request) (models.Page, bool) {
	switch chi.URLParam(r, "page") {
	case "home":
		return models.PageHome, true
	case "about":
		return models.PageAbout, true
	default:
		return "", false
	}
}

// Get returns a page document. Unknown pages are 404; a page with no
// saved document returns an empty content object, the site falls back to
// its default copy.
func (h *Content) Get(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Unknown page")
		return
	}

	key := "content:" + string(page)
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	content, err := h.content.FindByPage(page)
	if err != nil {
		slog.Error("content load failed", "page", page, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load content")
		return
	}
	if content == nil {
		content = &models.PageContent{Page: page}
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"content": content})
}

// Update overwrites a page document (full-document write, last write wins).
func (h *Content) Update(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Unknown page")
		return
	}

	var content models.PageContent
	if err := decodeBody(w, r, &content); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	content.Page = page

	if err := h.content.Upsert(&content); err != nil {
		slog.Error("content save failed", "page", page, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save content")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "content:"+string(page))
	}

	respondData(w, http.StatusOK, map[string]any{"content": content})
}
