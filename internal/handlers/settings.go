// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"oldvine/internal/cache"
	"oldvine/internal/models"
	"oldvine/internal/store"
)

// Settings serves the singleton site settings document and the public
// contact info derived from it.
type Settings struct {
	settings *store.SettingsStore
	cache    *cache.APICache
}

// NewSettings creates the settings handler group.
func NewSettings(settings *store.SettingsStore, c *cache.APICache) *Settings {
	return &Settings{settings: settings, cache: c}
}

// Get returns the site settings, falling back to defaults when no
// admin has saved any yet.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	key := "settings"
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	settings, err := h.settings.Get()
	if err != nil {
		slog.Error("settings load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"settings": settings})
}

// Update overwrites the settings document. Last write wins; there is
// no version field.
func (h *Settings) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := decodeBody(w, r, &settings); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.settings.Upsert(&settings)
	if err != nil {
		slog.Error("settings update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "settings")
		h.cache.Invalidate(r.Context(), "contact-info")
	}
	respondData(w, http.StatusOK, map[string]any{"settings": saved})
}

// ContactInfo returns the subset of settings the public contact page
// needs, without exposing the rest of the document.
func (h *Settings) ContactInfo(w http.ResponseWriter, r *http.Request) {
	key := "contact-info"
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	settings, err := h.settings.Get()
	if err != nil {
		slog.Error("settings load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load contact info")
		return
	}

	info := map[string]any{
		"email":       settings.ContactEmail,
		"phone":       settings.ContactPhone,
		"whatsapp":    settings.WhatsApp,
		"address":     settings.Address,
		"socialMedia": settings.SocialMedia,
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"contactInfo": info})
}
