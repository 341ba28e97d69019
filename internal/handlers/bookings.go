// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"oldvine/internal/models"
	"oldvine/internal/store"
)

// Bookings serves the read-only reservations list in the panel and
// the public booking stub. New bookings always enter as Pending.
type Bookings struct {
	bookings *store.BookingStore
}

// NewBookings creates the bookings handler group.
func NewBookings(bookings *store.BookingStore) *Bookings {
	return &Bookings{bookings: bookings}
}

type bookingPayload struct {
	GuestName    string  `json:"guestName" validate:"required,max=200"`
	GuestEmail   string  `json:"guestEmail" validate:"required,email"`
	GuestPhone   string  `json:"guestPhone" validate:"max=50"`
	RoomName     string  `json:"roomName" validate:"required,max=200"`
	CheckInDate  string  `json:"checkInDate" validate:"required"`
	CheckOutDate string  `json:"checkOutDate" validate:"required"`
	TotalAmount  float64 `json:"totalAmount" validate:"gte=0"`
}

// List returns all bookings, most recent stay first. Admin only; the
// panel has no write operations on bookings.
func (h *Bookings) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List()
	if err != nil {
		slog.Error("bookings list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	respondData(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// Create records a reservation request from the public site. It does
// no availability check; staff confirm manually.
func (h *Bookings) Create(w http.ResponseWriter, r *http.Request) {
	var payload bookingPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	checkIn, err := time.Parse("2006-01-02", payload.CheckInDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid check-in date")
		return
	}
	checkOut, err := time.Parse("2006-01-02", payload.CheckOutDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid check-out date")
		return
	}
	if !checkOut.After(checkIn) {
		respondError(w, http.StatusBadRequest, "Check-out must be after check-in")
		return
	}

	booking := &models.Booking{
		Guest: models.Guest{
			Name:  payload.GuestName,
			Email: payload.GuestEmail,
			Phone: payload.GuestPhone,
		},
		RoomName:     payload.RoomName,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  payload.TotalAmount,
		Status:       models.BookingPending,
	}

	created, err := h.bookings.Create(booking)
	if err != nil {
		slog.Error("booking create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	respondData(w, http.StatusCreated, map[string]any{"booking": created})
}
