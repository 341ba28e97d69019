// Package handlers contains the HTTP handler groups for the content API.
// Every response uses the {success, data, message?} envelope the admin
// panel and public site expect.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"oldvine/internal/cache"
)

// maxBodySize caps JSON request bodies at 1 MB. Media uploads have their
// own multipart limit.
const maxBodySize = 1 << 20

// envelope is the wire format for every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// respondData writes a success envelope with a payload.
func respondData(w http.ResponseWriter, status int, data any) {
	respond(w, status, envelope{Success: true, Data: data})
}

// respondMessage writes a success envelope with only a message.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respond(w, status, envelope{Success: true, Message: message})
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, envelope{Success: false, Message: message})
}

// serveCached writes the cached body for key if present. Returns true on
// a hit. A nil cache always misses.
func serveCached(ctx context.Context, w http.ResponseWriter, c *cache.APICache, key string) bool {
	if c == nil {
		return false
	}
	body, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
	return true
}

// respondDataCached writes a success envelope and stores the encoded body
// under key for subsequent requests.
func respondDataCached(ctx context.Context, w http.ResponseWriter, c *cache.APICache, key string, data any) {
	body, err := json.Marshal(envelope{Success: true, Data: data})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	if c != nil {
		c.Set(ctx, key, body)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// decodeBody reads a JSON request body into dst, enforcing the size cap.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return errors.New("request body is not valid JSON")
	}
	return nil
}
