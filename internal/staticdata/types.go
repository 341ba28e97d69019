// Package staticdata implements the static data mirror: an HTTP client
// for pulling the public API, a synchronizer that writes each response
// verbatim to <name>.json files, and a loader for reading the mirror back
// without a running backend.
package staticdata

import (
	json "github.com/goccy/go-json"

	"oldvine/internal/models"
)

// Envelope is the API response wrapper echoed into every static file.
// Consumers unwrap Data to reach the payload.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Payload shapes inside Envelope.Data, matching the public endpoints.

type contentPayload struct {
	Content *models.PageContent `json:"content"`
}

type roomCategoriesPayload struct {
	Categories []models.RoomCategory `json:"categories"`
}

type roomCategoryPayload struct {
	Category *models.RoomCategory `json:"category"`
}

type galleryCategoriesPayload struct {
	Categories []models.GalleryCategory `json:"categories"`
}

type galleryCategoryPayload struct {
	Category *models.GalleryCategory `json:"category"`
}
