// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"oldvine/internal/cache"
	"oldvine/internal/models"
	"oldvine/internal/store"
)

// Rooms handles the admin-managed room units.
type Rooms struct {
	rooms *store.RoomStore
	cache *cache.APICache
}

// NewRooms creates the rooms handler group.
func NewRooms(rooms *store.RoomStore, c *cache.APICache) *Rooms {
	return &Rooms{rooms: rooms, cache: c}
}

// roomPayload is the write shape for create and update. The server
// normalizes the primary-image flag; the panel does not enforce it.
type roomPayload struct {
	Name             string              `json:"name" validate:"required,max=200"`
	Type             models.RoomType     `json:"type" validate:"required"`
	RoomNumber       string              `json:"roomNumber" validate:"required,max=20"`
	Floor            int                 `json:"floor"`
	Size             int                 `json:"size" validate:"gte=0"`
	MaxOccupancy     int                 `json:"maxOccupancy" validate:"gte=1"`
	BedType          models.BedType      `json:"bedType" validate:"required"`
	BedCount         int                 `json:"bedCount" validate:"gte=1"`
	BasePrice        float64             `json:"basePrice" validate:"gte=0"`
	Description      string              `json:"description" validate:"max=10000"`
	ShortDescription string              `json:"shortDescription" validate:"max=500"`
	Amenities        []string            `json:"amenities"`
	Images           []models.RoomImage  `json:"images"`
	Status           models.RoomStatus   `json:"status"`
	IsActive         bool                `json:"isActive"`
	SmokingAllowed   bool                `json:"smokingAllowed"`
	PetsAllowed      bool                `json:"petsAllowed"`
}

func (p *roomPayload) validateDomain() string {
	if !models.ValidType(p.Type) {
		return "Unknown room type"
	}
	if !models.ValidBedType(p.BedType) {
		return "Unknown bed type"
	}
	for _, a := range p.Amenities {
		if !models.ValidAmenity(a) {
			return "Unknown amenity: " + a
		}
	}
	return ""
}

func (p *roomPayload) toModel(r *models.Room) {
	r.Name = p.Name
	r.Type = p.Type
	r.RoomNumber = p.RoomNumber
	r.Floor = p.Floor
	r.Size = p.Size
	r.MaxOccupancy = p.MaxOccupancy
	r.BedType = p.BedType
	r.BedCount = p.BedCount
	r.BasePrice = p.BasePrice
	r.Description = p.Description
	r.ShortDescription = p.ShortDescription
	r.Amenities = p.Amenities
	r.Images = p.Images
	r.Status = p.Status
	if r.Status == "" {
		r.Status = models.RoomStatusAvailable
	}
	r.IsActive = p.IsActive
	r.SmokingAllowed = p.SmokingAllowed
	r.PetsAllowed = p.PetsAllowed
}

// List returns rooms, optionally filtered by ?type= and capped by ?limit=.
// Only the unfiltered listing is cached; filtered queries go to the store.
func (h *Rooms) List(w http.ResponseWriter, r *http.Request) {
	roomType := models.RoomType(r.URL.Query().Get("type"))
	if roomType != "" && !models.ValidType(roomType) {
		respondError(w, http.StatusBadRequest, "Unknown room type")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	cacheable := roomType == "" && limit == 0
	if cacheable && serveCached(r.Context(), w, h.cache, "rooms") {
		return
	}

	rooms, err := h.rooms.List(roomType, limit)
	if err != nil {
		slog.Error("rooms list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load rooms")
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	if cacheable {
		respondDataCached(r.Context(), w, h.cache, "rooms", map[string]any{"rooms": rooms})
		return
	}
	respondData(w, http.StatusOK, map[string]any{"rooms": rooms})
}

func (h *Rooms) invalidate(r *http.Request) {
	if h.cache != nil {
		h.cache.Invalidate(r.Context(), "rooms")
	}
}

// Get returns one room by ID.
func (h *Rooms) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := h.rooms.FindByID(id)
	if err != nil {
		slog.Error("room lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load room")
		return
	}
	if room == nil {
		respondError(w, http.StatusNotFound, "Room not found")
		return
	}

	respondData(w, http.StatusOK, map[string]any{"room": room})
}

// Create adds a room.
func (h *Rooms) Create(w http.ResponseWriter, r *http.Request) {
	var payload roomPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := payload.validateDomain(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	var room models.Room
	payload.toModel(&room)

	created, err := h.rooms.Create(&room)
	if err != nil {
		slog.Error("room create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create room")
		return
	}

	h.invalidate(r)
	respondData(w, http.StatusCreated, map[string]any{"room": created})
}

// Update overwrites a room (full-document write, last write wins).
func (h *Rooms) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	existing, err := h.rooms.FindByID(id)
	if err != nil {
		slog.Error("room lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load room")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Room not found")
		return
	}

	var payload roomPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := payload.validateDomain(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	payload.toModel(existing)
	if err := h.rooms.Update(existing); err != nil {
		slog.Error("room update failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update room")
		return
	}

	h.invalidate(r)
	respondData(w, http.StatusOK, map[string]any{"room": existing})
}

// Delete removes a room. Confirmation happens in the panel; the API
// deletes on the first request.
func (h *Rooms) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.rooms.Delete(id); err != nil {
		slog.Error("room delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete room")
		return
	}

	h.invalidate(r)
	respondMessage(w, http.StatusOK, "Room deleted")
}
