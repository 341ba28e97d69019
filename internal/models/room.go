// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// RoomType is the class of a bookable room unit.
type RoomType string

const (
	RoomTypeStandard          RoomType = "Standard"
	RoomTypeDeluxe            RoomType = "Deluxe"
	RoomTypeSuite             RoomType = "Suite"
	RoomTypeExecutiveSuite    RoomType = "Executive Suite"
	RoomTypePresidentialSuite RoomType = "Presidential Suite"
)

// RoomTypes lists every valid room type, in display order.
var RoomTypes = []RoomType{
	RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite,
	RoomTypeExecutiveSuite, RoomTypePresidentialSuite,
}

// BedType is the bed configuration of a room.
type BedType string

const (
	BedTypeSingle  BedType = "Single"
	BedTypeDouble  BedType = "Double"
	BedTypeQueen   BedType = "Queen"
	BedTypeKing    BedType = "King"
	BedTypeTwin    BedType = "Twin"
	BedTypeSofaBed BedType = "Sofa Bed"
)

// BedTypes lists every valid bed type.
var BedTypes = []BedType{
	BedTypeSingle, BedTypeDouble, BedTypeQueen,
	BedTypeKing, BedTypeTwin, BedTypeSofaBed,
}

// RoomStatus is the operational state of a room unit.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
	RoomStatusCleaning    RoomStatus = "Cleaning"
)

// Amenities is the fixed vocabulary the panel offers for rooms.
var Amenities = []string{
	"WiFi", "TV", "AC", "Minibar", "Safe", "Balcony", "Ocean View",
	"City View", "Mountain View", "Garden View", "Jacuzzi", "Fireplace",
	"Kitchen", "Kitchenette", "Workspace", "Butler Service", "Spa Access",
	"Private Pool", "Terrace", "Walk-in Closet", "Sound System",
}

// RoomImage is one entry in a room's ordered image list.
type RoomImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary"`
}

// Room is an admin-managed room unit, distinct from the public-facing
// RoomCategory brochure entries.
type Room struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Type             RoomType    `json:"type"`
	RoomNumber       string      `json:"roomNumber"`
	Floor            int         `json:"floor"`
	Size             int         `json:"size"` // square metres
	MaxOccupancy     int         `json:"maxOccupancy"`
	BedType          BedType     `json:"bedType"`
	BedCount         int         `json:"bedCount"`
	BasePrice        float64     `json:"basePrice"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"shortDescription"`
	Amenities        []string    `json:"amenities"`
	Images           []RoomImage `json:"images"`
	Status           RoomStatus  `json:"status"`
	IsActive         bool        `json:"isActive"`
	SmokingAllowed   bool        `json:"smokingAllowed"`
	PetsAllowed      bool        `json:"petsAllowed"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// NormalizeImages enforces the single-primary-image rule: the first image
// flagged primary wins, and when none is flagged the first image is
// promoted. The panel does not enforce this, so the API does.
func (r *Room) NormalizeImages() {
	seen := false
	for i := range r.Images {
		if r.Images[i].IsPrimary {
			if seen {
				r.Images[i].IsPrimary = false
			}
			seen = true
		}
	}
	if !seen && len(r.Images) > 0 {
		r.Images[0].IsPrimary = true
	}
}

// PrimaryImage returns the designated cover image, or nil if the room has
// no images.
func (r *Room) PrimaryImage() *RoomImage {
	for i := range r.Images {
		if r.Images[i].IsPrimary {
			return &r.Images[i]
		}
	}
	if len(r.Images) > 0 {
		return &r.Images[0]
	}
	return nil
}

// ValidType reports whether t is one of the fixed room types.
func ValidType(t RoomType) bool {
	for _, rt := range RoomTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// ValidBedType reports whether b is one of the fixed bed types.
func ValidBedType(b BedType) bool {
	for _, bt := range BedTypes {
		if b == bt {
			return true
		}
	}
	return false
}

// ValidAmenity reports whether a is in the fixed amenity vocabulary.
func ValidAmenity(a string) bool {
	for _, known := range Amenities {
		if a == known {
			return true
		}
	}
	return false
}
