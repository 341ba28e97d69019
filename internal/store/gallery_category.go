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

// GalleryCategoryStore handles the public gallery photo collections.
type GalleryCategoryStore struct {
	db *sql.DB
}

// NewGalleryCategoryStore creates a new GalleryCategoryStore.
func NewGalleryCategoryStore(db *sql.DB) *GalleryCategoryStore {
	return &GalleryCategoryStore{db: db}
}

const galleryCategoryColumns = `id, name, slug, description, primary_image, images, created_at, updated_at`

func scanGalleryCategory(scanner interface{ Scan(...any) error }) (*models.GalleryCategory, error) {
	var (
		c      models.GalleryCategory
		images []byte
	)
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.PrimaryImage,
		&images, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &c.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	c.ImageCount = len(c.Images)
	return &c, nil
}

// List returns every gallery category ordered by name.
func (s *GalleryCategoryStore) List() ([]models.GalleryCategory, error) {
	rows, err := s.db.Query(`SELECT ` + galleryCategoryColumns + ` FROM gallery_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list gallery categories: %w", err)
	}
	defer rows.Close()

	var items []models.GalleryCategory
	for rows.Next() {
		c, err := scanGalleryCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a single gallery category by slug. Returns nil if not found.
func (s *GalleryCategoryStore) FindBySlug(slug string) (*models.GalleryCategory, error) {
	row := s.db.QueryRow(`SELECT `+galleryCategoryColumns+` FROM gallery_categories WHERE slug = $1`, slug)
	c, err := scanGalleryCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find gallery category by slug: %w", err)
	}
	return c, nil
}

// SlugExists reports whether a gallery category already uses the given slug.
func (s *GalleryCategoryStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM gallery_categories WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("gallery category slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new gallery category and returns it with the generated ID.
func (s *GalleryCategoryStore) Create(c *models.GalleryCategory) (*models.GalleryCategory, error) {
	if c.Images == nil {
		c.Images = []models.GalleryImage{}
	}
	images, err := json.Marshal(c.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO gallery_categories (name, slug, description, primary_image, images)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+galleryCategoryColumns,
		c.Name, c.Slug, c.Description, c.PrimaryImage, images,
	)
	created, err := scanGalleryCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create gallery category: %w", err)
	}
	return created, nil
}

// Update overwrites an existing gallery category, addressed by slug.
func (s *GalleryCategoryStore) Update(slug string, c *models.GalleryCategory) error {
	if c.Images == nil {
		c.Images = []models.GalleryImage{}
	}
	images, err := json.Marshal(c.Images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE gallery_categories SET
			name = $1, description = $2, primary_image = $3, images = $4,
			updated_at = NOW()
		WHERE slug = $5
	`, c.Name, c.Description, c.PrimaryImage, images, slug)
	if err != nil {
		return fmt.Errorf("update gallery category: %w", err)
	}
	return nil
}

// Delete removes a gallery category by slug.
func (s *GalleryCategoryStore) Delete(slug string) error {
	_, err := s.db.Exec(`DELETE FROM gallery_categories WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete gallery category: %w", err)
	}
	return nil
}

// Count returns the total number of gallery categories.
func (s *GalleryCategoryStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM gallery_categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count gallery categories: %w", err)
	}
	return count, nil
}
