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

// ContentStore handles the CMS page documents (home, about). The nested
// hero/sections/seo documents are stored as JSONB columns.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// FindByPage retrieves the content document for a page. Returns nil if the
// page has never been saved.
func (s *ContentStore) FindByPage(page models.Page) (*models.PageContent, error) {
	var (
		c        models.PageContent
		hero     []byte
		sections []byte
		seo      []byte
	)
	err := s.db.QueryRow(`
		SELECT page, hero, sections, seo, updated_at
		FROM page_content WHERE page = $1
	`, page).Scan(&c.Page, &hero, &sections, &seo, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page content: %w", err)
	}

	if err := json.Unmarshal(hero, &c.Hero); err != nil {
		return nil, fmt.Errorf("decode hero: %w", err)
	}
	if err := json.Unmarshal(sections, &c.Sections); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	if err := json.Unmarshal(seo, &c.SEO); err != nil {
		return nil, fmt.Errorf("decode seo: %w", err)
	}
	return &c, nil
}

// Upsert writes the full content document for a page, creating it on first
// save. Page content is last-write-wins.
func (s *ContentStore) Upsert(c *models.PageContent) error {
	hero, err := json.Marshal(c.Hero)
	if err != nil {
		return fmt.Errorf("encode hero: %w", err)
	}
	sections, err := json.Marshal(c.Sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}
	seo, err := json.Marshal(c.SEO)
	if err != nil {
		return fmt.Errorf("encode seo: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO page_content (page, hero, sections, seo, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (page)
		DO UPDATE SET hero = EXCLUDED.hero, sections = EXCLUDED.sections,
		              seo = EXCLUDED.seo, updated_at = NOW()
	`, c.Page, hero, sections, seo)
	if err != nil {
		return fmt.Errorf("upsert page content: %w", err)
	}
	return nil
}
