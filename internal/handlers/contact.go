// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"oldvine/internal/models"
	"oldvine/internal/store"
)

// Contact handles the public contact form and the admin inbox.
type Contact struct {
	contact *store.ContactStore
}

// NewContact creates the contact handler group.
func NewContact(contact *store.ContactStore) *Contact {
	return &Contact{contact: contact}
}

type contactPayload struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"required,max=10000"`
}

// Submit stores a message from the public contact form.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	var payload contactPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	m := &models.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}
	if _, err := h.contact.Create(m); err != nil {
		slog.Error("contact message save failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	respondMessage(w, http.StatusCreated, "Thank you for your message. We will get back to you shortly.")
}

// List returns all received messages, newest first. Admin only.
func (h *Contact) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contact.List()
	if err != nil {
		slog.Error("contact messages list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}

	respondData(w, http.StatusOK, map[string]any{"messages": messages})
}
