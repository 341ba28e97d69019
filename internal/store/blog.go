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

// BlogStore handles all blog post database operations.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, category, status, tags, created_at, updated_at`

func scanBlogPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var (
		p    models.BlogPost
		tags []byte
	)
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.Category, &p.Status, &tags, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return &p, nil
}

// ListAll returns every post regardless of status, newest first. Used by
// the admin panel.
func (s *BlogStore) ListAll() ([]models.BlogPost, error) {
	return s.list(`SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC`)
}

// ListPublished returns published posts, newest first. Used by the public blog.
func (s *BlogStore) ListPublished() ([]models.BlogPost, error) {
	return s.list(`SELECT ` + blogColumns + ` FROM blog_posts WHERE status = 'published' ORDER BY created_at DESC`)
}

func (s *BlogStore) list(query string) ([]models.BlogPost, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by UUID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a published post by slug. Returns nil if not found.
func (s *BlogStore) FindPublishedBySlug(slug string) (*models.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1 AND status = 'published'`, slug)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// SlugExists reports whether a post already uses the given slug.
func (s *BlogStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM blog_posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("blog slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new post and returns it with the generated ID.
func (s *BlogStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, excerpt, content, category, status, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+blogColumns,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Category, p.Status, tags,
	)
	created, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return created, nil
}

// Update overwrites an existing post.
func (s *BlogStore) Update(p *models.BlogPost) error {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE blog_posts SET
			title = $1, excerpt = $2, content = $3, category = $4,
			status = $5, tags = $6, updated_at = NOW()
		WHERE id = $7
	`, p.Title, p.Excerpt, p.Content, p.Category, p.Status, tags, p.ID)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return nil
}

// Delete removes a post by ID.
func (s *BlogStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// Count returns the total number of posts.
func (s *BlogStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}
