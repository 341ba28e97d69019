// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestCheckPayload(t *testing.T) {
	type payload struct {
		Name  string `json:"name" validate:"required,max=10"`
		Email string `json:"email" validate:"omitempty,email"`
		Count int    `json:"count" validate:"gte=1"`
	}

	tests := []struct {
		name    string
		in      payload
		wantErr bool
	}{
		{"valid", payload{Name: "ok", Count: 1}, false},
		{"missing name", payload{Count: 1}, true},
		{"name too long", payload{Name: "this name is far too long", Count: 1}, true},
		{"bad email", payload{Name: "ok", Email: "not-an-email", Count: 1}, true},
		{"count below minimum", payload{Name: "ok", Count: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := checkPayload(&tt.in)
			if tt.wantErr && msg == "" {
				t.Error("expected a validation message, got none")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("unexpected validation message: %q", msg)
			}
		})
	}
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"ok"}`, false},
		{"empty body", ``, true},
		{"truncated json", `{"name":`, true},
		{"not json", `hello`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			var p payload
			err := decodeBody(rec, req, &p)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRespondEnvelopes(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondData(rec, http.StatusOK, map[string]any{"value": 42})

		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var env struct {
			Success bool           `json:"success"`
			Data    map[string]int `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !env.Success || env.Data["value"] != 42 {
			t.Errorf("envelope = %+v", env)
		}
	})

	t.Run("error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondError(rec, http.StatusNotFound, "gone")

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d", rec.Code)
		}
		var env struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Success || env.Message != "gone" {
			t.Errorf("envelope = %+v", env)
		}
	})
}
