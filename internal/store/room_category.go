// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"oldvine/internal/models"
)

// RoomCategoryStore handles the public-facing room category entries.
// Public identity is the slug; the synchronizer fans out over it.
type RoomCategoryStore struct {
	db *sql.DB
}

// NewRoomCategoryStore creates a new RoomCategoryStore.
func NewRoomCategoryStore(db *sql.DB) *RoomCategoryStore {
	return &RoomCategoryStore{db: db}
}

const roomCategoryColumns = `id, name, slug, description, short_description,
	primary_image, room_count, features, price_range, images, created_at, updated_at`

func scanRoomCategory(scanner interface{ Scan(...any) error }) (*models.RoomCategory, error) {
	var (
		c          models.RoomCategory
		features   []byte
		priceRange []byte
		images     []byte
	)
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ShortDescription,
		&c.PrimaryImage, &c.RoomCount, &features, &priceRange, &images,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &c.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	if err := json.Unmarshal(priceRange, &c.PriceRange); err != nil {
		return nil, fmt.Errorf("decode price range: %w", err)
	}
	if err := json.Unmarshal(images, &c.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	c.ImageCount = len(c.Images)
	return &c, nil
}

// List returns every room category ordered by name.
func (s *RoomCategoryStore) List() ([]models.RoomCategory, error) {
	rows, err := s.db.Query(`SELECT ` + roomCategoryColumns + ` FROM room_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list room categories: %w", err)
	}
	defer rows.Close()

	var items []models.RoomCategory
	for rows.Next() {
		c, err := scanRoomCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a single category by slug. Returns nil if not found.
func (s *RoomCategoryStore) FindBySlug(slug string) (*models.RoomCategory, error) {
	row := s.db.QueryRow(`SELECT `+roomCategoryColumns+` FROM room_categories WHERE slug = $1`, slug)
	c, err := scanRoomCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find room category by slug: %w", err)
	}
	return c, nil
}

// SlugExists reports whether a category already uses the given slug.
func (s *RoomCategoryStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM room_categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("room category slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new room category and returns it with the generated ID.
func (s *RoomCategoryStore) Create(c *models.RoomCategory) (*models.RoomCategory, error) {
	features, priceRange, images, err := encodeCategoryDocs(c)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO room_categories (name, slug, description, short_description,
			primary_image, room_count, features, price_range, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+roomCategoryColumns,
		c.Name, c.Slug, c.Description, c.ShortDescription,
		c.PrimaryImage, c.RoomCount, features, priceRange, images,
	)
	created, err := scanRoomCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create room category: %w", err)
	}
	return created, nil
}

// Update overwrites an existing category, addressed by slug.
func (s *RoomCategoryStore) Update(slug string, c *models.RoomCategory) error {
	features, priceRange, images, err := encodeCategoryDocs(c)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE room_categories SET
			name = $1, description = $2, short_description = $3,
			primary_image = $4, room_count = $5, features = $6,
			price_range = $7, images = $8, updated_at = NOW()
		WHERE slug = $9
	`, c.Name, c.Description, c.ShortDescription,
		c.PrimaryImage, c.RoomCount, features,
		priceRange, images, slug,
	)
	if err != nil {
		return fmt.Errorf("update room category: %w", err)
	}
	return nil
}

// Delete removes a category by slug.
func (s *RoomCategoryStore) Delete(slug string) error {
	_, err := s.db.Exec(`DELETE FROM room_categories WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete room category: %w", err)
	}
	return nil
}

// Count returns the total number of room categories.
func (s *RoomCategoryStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM room_categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count room categories: %w", err)
	}
	return count, nil
}

func encodeCategoryDocs(c *models.RoomCategory) (features, priceRange, images []byte, err error) {
	if c.Features == nil {
		c.Features = []string{}
	}
	if c.Images == nil {
		c.Images = []models.GalleryImage{}
	}
	features, err = json.Marshal(c.Features)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode features: %w", err)
	}
	priceRange, err = json.Marshal(c.PriceRange)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode price range: %w", err)
	}
	images, err = json.Marshal(c.Images)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode images: %w", err)
	}
	return features, priceRange, images, nil
}
