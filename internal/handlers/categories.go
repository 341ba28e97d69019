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
	"oldvine/internal/slug"
	"oldvine/internal/store"
)

// Categories handles the public-facing room category brochure and the
// gallery photo collections. Identity for both is the slug.
type Categories struct {
	roomCats  *store.RoomCategoryStore
	galleries *store.GalleryCategoryStore
	cache     *cache.APICache
}

// NewCategories creates the categories handler group.
func NewCategories(roomCats *store.RoomCategoryStore, galleries *store.GalleryCategoryStore, c *cache.APICache) *Categories {
	return &Categories{roomCats: roomCats, galleries: galleries, cache: c}
}

type roomCategoryPayload struct {
	Name             string                `json:"name" validate:"required,max=200"`
	Description      string                `json:"description" validate:"max=10000"`
	ShortDescription string                `json:"shortDescription" validate:"max=500"`
	PrimaryImage     string                `json:"primaryImage" validate:"max=2000"`
	RoomCount        int                   `json:"roomCount" validate:"gte=0"`
	Features         []string              `json:"features"`
	PriceRange       models.PriceRange     `json:"priceRange"`
	Images           []models.GalleryImage `json:"images"`
}

type galleryCategoryPayload struct {
	Name         string                `json:"name" validate:"required,max=200"`
	Description  string                `json:"description" validate:"max=10000"`
	PrimaryImage string                `json:"primaryImage" validate:"max=2000"`
	Images       []models.GalleryImage `json:"images"`
}

// invalidateCategoryCache clears the list payload and every per-slug
// detail payload, mirroring the synchronizer's fan-out.
func (h *Categories) invalidateCategoryCache(r *http.Request, prefix string) {
	if h.cache != nil {
		h.cache.InvalidatePrefix(r.Context(), prefix)
	}
}

// ---- Room categories ----

// ListRoomCategories returns the brochure list.
func (h *Categories) ListRoomCategories(w http.ResponseWriter, r *http.Request) {
	key := "room-categories"
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	cats, err := h.roomCats.List()
	if err != nil {
		slog.Error("room categories list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load room categories")
		return
	}
	if cats == nil {
		cats = []models.RoomCategory{}
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"categories": cats})
}

// GetRoomCategory returns one brochure entry by slug.
func (h *Categories) GetRoomCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	key := "room-categories:" + s
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	cat, err := h.roomCats.FindBySlug(s)
	if err != nil {
		slog.Error("room category lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load room category")
		return
	}
	if cat == nil {
		respondError(w, http.StatusNotFound, "Room category not found")
		return
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"category": cat})
}

// CreateRoomCategory adds a brochure entry, generating a unique slug
// from the name.
func (h *Categories) CreateRoomCategory(w http.ResponseWriter, r *http.Request) {
	var payload roomCategoryPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := slug.Unique(payload.Name, h.roomCats.SlugExists)
	if err != nil {
		slog.Error("slug generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create room category")
		return
	}

	cat := &models.RoomCategory{
		Name:             payload.Name,
		Slug:             s,
		Description:      payload.Description,
		ShortDescription: payload.ShortDescription,
		PrimaryImage:     payload.PrimaryImage,
		RoomCount:        payload.RoomCount,
		Features:         payload.Features,
		PriceRange:       payload.PriceRange,
		Images:           payload.Images,
	}

	created, err := h.roomCats.Create(cat)
	if err != nil {
		slog.Error("room category create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create room category")
		return
	}

	h.invalidateCategoryCache(r, "room-categories")
	respondData(w, http.StatusCreated, map[string]any{"category": created})
}

// UpdateRoomCategory overwrites a brochure entry. The slug is stable
// across renames; public consumers key on it.
func (h *Categories) UpdateRoomCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	existing, err := h.roomCats.FindBySlug(s)
	if err != nil {
		slog.Error("room category lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load room category")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Room category not found")
		return
	}

	var payload roomCategoryPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	existing.Name = payload.Name
	existing.Description = payload.Description
	existing.ShortDescription = payload.ShortDescription
	existing.PrimaryImage = payload.PrimaryImage
	existing.RoomCount = payload.RoomCount
	existing.Features = payload.Features
	existing.PriceRange = payload.PriceRange
	existing.Images = payload.Images

	if err := h.roomCats.Update(s, existing); err != nil {
		slog.Error("room category update failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update room category")
		return
	}

	h.invalidateCategoryCache(r, "room-categories")
	respondData(w, http.StatusOK, map[string]any{"category": existing})
}

// DeleteRoomCategory removes a brochure entry by slug.
func (h *Categories) DeleteRoomCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	if err := h.roomCats.Delete(s); err != nil {
		slog.Error("room category delete failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete room category")
		return
	}

	h.invalidateCategoryCache(r, "room-categories")
	respondMessage(w, http.StatusOK, "Room category deleted")
}

// ---- Gallery categories ----

// ListGalleryCategories returns the photo collections.
func (h *Categories) ListGalleryCategories(w http.ResponseWriter, r *http.Request) {
	key := "gallery-categories"
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	cats, err := h.galleries.List()
	if err != nil {
		slog.Error("gallery categories list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load gallery categories")
		return
	}
	if cats == nil {
		cats = []models.GalleryCategory{}
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"categories": cats})
}

// GetGalleryCategory returns one photo collection by slug.
func (h *Categories) GetGalleryCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	key := "gallery-categories:" + s
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	cat, err := h.galleries.FindBySlug(s)
	if err != nil {
		slog.Error("gallery category lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load gallery category")
		return
	}
	if cat == nil {
		respondError(w, http.StatusNotFound, "Gallery category not found")
		return
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"category": cat})
}

// CreateGalleryCategory adds a photo collection.
func (h *Categories) CreateGalleryCategory(w http.ResponseWriter, r *http.Request) {
	var payload galleryCategoryPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := slug.Unique(payload.Name, h.galleries.SlugExists)
	if err != nil {
		slog.Error("slug generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create gallery category")
		return
	}

	cat := &models.GalleryCategory{
		Name:         payload.Name,
		Slug:         s,
		Description:  payload.Description,
		PrimaryImage: payload.PrimaryImage,
		Images:       payload.Images,
	}

	created, err := h.galleries.Create(cat)
	if err != nil {
		slog.Error("gallery category create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create gallery category")
		return
	}

	h.invalidateCategoryCache(r, "gallery-categories")
	respondData(w, http.StatusCreated, map[string]any{"category": created})
}

// UpdateGalleryCategory overwrites a photo collection.
func (h *Categories) UpdateGalleryCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	existing, err := h.galleries.FindBySlug(s)
	if err != nil {
		slog.Error("gallery category lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load gallery category")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Gallery category not found")
		return
	}

	var payload galleryCategoryPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	existing.Name = payload.Name
	existing.Description = payload.Description
	existing.PrimaryImage = payload.PrimaryImage
	existing.Images = payload.Images

	if err := h.galleries.Update(s, existing); err != nil {
		slog.Error("gallery category update failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update gallery category")
		return
	}

	h.invalidateCategoryCache(r, "gallery-categories")
	respondData(w, http.StatusOK, map[string]any{"category": existing})
}

// DeleteGalleryCategory removes a photo collection by slug.
func (h *Categories) DeleteGalleryCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	if err := h.galleries.Delete(s); err != nil {
		slog.Error("gallery category delete failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete gallery category")
		return
	}

	h.invalidateCategoryCache(r, "gallery-categories")
	respondMessage(w, http.StatusOK, "Gallery category deleted")
}
