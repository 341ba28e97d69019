// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"oldvine/internal/models"
)

// RoomStore handles all room-unit database operations.
type RoomStore struct {
	db *sql.DB
}

// NewRoomStore creates a new RoomStore with the given database connection.
func NewRoomStore(db *sql.DB) *RoomStore {
	return &RoomStore{db: db}
}

const roomColumns = `id, name, type, room_number, floor, size, max_occupancy,
	bed_type, bed_count, base_price, description, short_description,
	amenities, images, status, is_active, smoking_allowed, pets_allowed,
	created_at, updated_at`

func scanRoom(scanner interface{ Scan(...any) error }) (*models.Room, error) {
	var (
		r         models.Room
		amenities []byte
		images    []byte
	)
	err := scanner.Scan(
		&r.ID, &r.Name, &r.Type, &r.RoomNumber, &r.Floor, &r.Size, &r.MaxOccupancy,
		&r.BedType, &r.BedCount, &r.BasePrice, &r.Description, &r.ShortDescription,
		&amenities, &images, &r.Status, &r.IsActive, &r.SmokingAllowed, &r.PetsAllowed,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(amenities, &r.Amenities); err != nil {
		return nil, fmt.Errorf("decode amenities: %w", err)
	}
	if err := json.Unmarshal(images, &r.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	return &r, nil
}

// List returns rooms ordered by room number, optionally filtered by type,
// capped at limit.
func (s *RoomStore) List(roomType models.RoomType, limit int) ([]models.Room, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `SELECT ` + roomColumns + ` FROM rooms`
	args := []any{}
	if roomType != "" {
		query += ` WHERE type = $1`
		args = append(args, roomType)
	}
	query += fmt.Sprintf(` ORDER BY room_number ASC LIMIT %d`, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var items []models.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a single room by its UUID. Returns nil if not found.
func (s *RoomStore) FindByID(id uuid.UUID) (*models.Room, error) {
	row := s.db.QueryRow(`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	r, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find room by id: %w", err)
	}
	return r, nil
}

// Create inserts a new room and returns it with the generated ID.
func (s *RoomStore) Create(r *models.Room) (*models.Room, error) {
	r.NormalizeImages()

	amenities, images, err := encodeRoomDocs(r)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO rooms (name, type, room_number, floor, size, max_occupancy,
			bed_type, bed_count, base_price, description, short_description,
			amenities, images, status, is_active, smoking_allowed, pets_allowed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+roomColumns,
		r.Name, r.Type, r.RoomNumber, r.Floor, r.Size, r.MaxOccupancy,
		r.BedType, r.BedCount, r.BasePrice, r.Description, r.ShortDescription,
		amenities, images, r.Status, r.IsActive, r.SmokingAllowed, r.PetsAllowed,
	)
	created, err := scanRoom(row)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return created, nil
}

// Update overwrites an existing room with the full document (last write wins).
func (s *RoomStore) Update(r *models.Room) error {
	r.NormalizeImages()

	amenities, images, err := encodeRoomDocs(r)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE rooms SET
			name = $1, type = $2, room_number = $3, floor = $4, size = $5,
			max_occupancy = $6, bed_type = $7, bed_count = $8, base_price = $9,
			description = $10, short_description = $11, amenities = $12,
			images = $13, status = $14, is_active = $15, smoking_allowed = $16,
			pets_allowed = $17, updated_at = NOW()
		WHERE id = $18
	`, r.Name, r.Type, r.RoomNumber, r.Floor, r.Size,
		r.MaxOccupancy, r.BedType, r.BedCount, r.BasePrice,
		r.Description, r.ShortDescription, amenities,
		images, r.Status, r.IsActive, r.SmokingAllowed,
		r.PetsAllowed, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// Delete removes a room by ID.
func (s *RoomStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

// Count returns the total number of rooms.
func (s *RoomStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

func encodeRoomDocs(r *models.Room) (amenities, images []byte, err error) {
	if r.Amenities == nil {
		r.Amenities = []string{}
	}
	if r.Images == nil {
		r.Images = []models.RoomImage{}
	}
	amenities, err = json.Marshal(r.Amenities)
	if err != nil {
		return nil, nil, fmt.Errorf("encode amenities: %w", err)
	}
	images, err = json.Marshal(r.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("encode images: %w", err)
	}
	return amenities, images, nil
}
