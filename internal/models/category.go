// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PriceRange is the advertised nightly price band for a room category.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GalleryImage is one image within a category gallery.
type GalleryImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// RoomCategory is a public-facing brochure entry for a class of rooms.
// Identity for public consumers is the slug; categories are edited through
// the room management panel and mirrored by the static data synchronizer.
type RoomCategory struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	PrimaryImage     string         `json:"primaryImage"`
	ImageCount       int            `json:"imageCount"`
	RoomCount        int            `json:"roomCount"`
	Features         []string       `json:"features"`
	PriceRange       PriceRange     `json:"priceRange"`
	Images           []GalleryImage `json:"images,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// GalleryCategory is a named photo collection on the public gallery page.
type GalleryCategory struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description"`
	PrimaryImage string         `json:"primaryImage"`
	ImageCount   int            `json:"imageCount"`
	Images       []GalleryImage `json:"images"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
