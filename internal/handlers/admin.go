// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"oldvine/internal/middleware"
	"oldvine/internal/models"
	"oldvine/internal/session"
	"oldvine/internal/store"
)

// Admin groups authentication and dashboard handlers.
type Admin struct {
	sessions  *session.Store
	admins    *store.AdminStore
	rooms     *store.RoomStore
	roomCats  *store.RoomCategoryStore
	galleries *store.GalleryCategoryStore
	blog      *store.BlogStore
	bookings  *store.BookingStore
	media     *store.MediaStore
}

// NewAdmin creates the admin handler group.
func NewAdmin(sessions *session.Store, admins *store.AdminStore, rooms *store.RoomStore,
	roomCats *store.RoomCategoryStore, galleries *store.GalleryCategoryStore,
	blog *store.BlogStore, bookings *store.BookingStore, media *store.MediaStore) *Admin {
	return &Admin{
		sessions:  sessions,
		admins:    admins,
		rooms:     rooms,
		roomCats:  roomCats,
		galleries: galleries,
		blog:      blog,
		bookings:  bookings,
		media:     media,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a bearer token and the admin profile.
// Failures return a structured envelope so the panel can render the
// message without special-casing.
func (a *Admin) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	admin, err := a.admins.FindByUsername(req.Username)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	if admin == nil || !a.admins.CheckPassword(admin, req.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := a.sessions.Create(r.Context(), &session.Data{
		AdminID:   admin.ID,
		Username:  admin.Username,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		FullName:  admin.FullName,
		Avatar:    admin.Avatar,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"token": token,
		"admin": admin.Profile(),
	})
}

// Me returns the profile for the current token. The middleware has
// already rejected missing and invalid tokens, so a failure here never
// touches the stored session.
func (a *Admin) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	respondData(w, http.StatusOK, map[string]any{
		"admin": models.AdminProfile{
			ID:        sess.AdminID,
			Username:  sess.Username,
			Email:     sess.Email,
			FirstName: sess.FirstName,
			FullName:  sess.FullName,
			Avatar:    sess.Avatar,
		},
	})
}

// Logout destroys the current session.
func (a *Admin) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromCtx(r.Context())
	if err := a.sessions.Destroy(r.Context(), token); err != nil {
		slog.Error("logout failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to destroy session")
		return
	}
	respondMessage(w, http.StatusOK, "Logged out")
}

// Stats returns the dashboard counters.
func (a *Admin) Stats(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{}
	for name, count := range map[string]func() (int, error){
		"rooms":             a.rooms.Count,
		"roomCategories":    a.roomCats.Count,
		"galleryCategories": a.galleries.Count,
		"blogPosts":         a.blog.Count,
		"bookings":          a.bookings.Count,
		"mediaFiles":        a.media.Count,
	} {
		n, err := count()
		if err != nil {
			slog.Error("stats count failed", "entity", name, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to load stats")
			return
		}
		counts[name] = n
	}

	respondData(w, http.StatusOK, map[string]any{"stats": counts})
}
