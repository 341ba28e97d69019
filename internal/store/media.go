// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"oldvine/internal/models"
)

// MediaStore handles uploaded file records. Files are addressed by their
// generated filename, which is unique across the bucket.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, filename, original_name, content_type, size_bytes, s3_key, thumb_s3_key, uploader_id, uploaded_at`

func scanMediaFile(scanner interface{ Scan(...any) error }) (*models.MediaFile, error) {
	var m models.MediaFile
	err := scanner.Scan(
		&m.ID, &m.Filename, &m.OriginalName, &m.ContentType, &m.SizeBytes,
		&m.S3Key, &m.ThumbS3Key, &m.UploaderID, &m.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create records an uploaded file.
func (s *MediaStore) Create(m *models.MediaFile) (*models.MediaFile, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	row := s.db.QueryRow(`
		INSERT INTO media (id, filename, original_name, content_type, size_bytes, s3_key, thumb_s3_key, uploader_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns,
		m.ID, m.Filename, m.OriginalName, m.ContentType, m.SizeBytes, m.S3Key, m.ThumbS3Key, m.UploaderID,
	)
	created, err := scanMediaFile(row)
	if err != nil {
		return nil, fmt.Errorf("create media record: %w", err)
	}
	return created, nil
}

// List returns all uploads, newest first.
func (s *MediaStore) List() ([]models.MediaFile, error) {
	rows, err := s.db.Query(`SELECT ` + mediaColumns + ` FROM media ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.MediaFile
	for rows.Next() {
		m, err := scanMediaFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByFilename returns the upload with the given filename, or nil if absent.
func (s *MediaStore) FindByFilename(filename string) (*models.MediaFile, error) {
	row := s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE filename = $1`, filename)
	m, err := scanMediaFile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media: %w", err)
	}
	return m, nil
}

// DeleteByFilename removes the record and returns it so callers can clean up
// the stored objects. Returns nil when no record matched.
func (s *MediaStore) DeleteByFilename(filename string) (*models.MediaFile, error) {
	row := s.db.QueryRow(`DELETE FROM media WHERE filename = $1 RETURNING `+mediaColumns, filename)
	m, err := scanMediaFile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete media: %w", err)
	}
	return m, nil
}

// Count returns the total number of uploads.
func (s *MediaStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM media`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return count, nil
}
