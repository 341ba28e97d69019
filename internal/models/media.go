// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaFile represents an uploaded file. Metadata lives in PostgreSQL; the
// bytes live in S3-compatible object storage. Filename is unique and is the
// identity the panel uses for deletion.
type MediaFile struct {
	ID           uuid.UUID  `json:"id"`
	Filename     string     `json:"filename"`
	OriginalName string     `json:"originalName"`
	ContentType  string     `json:"contentType"`
	SizeBytes    int64      `json:"size"`
	S3Key        string     `json:"-"`
	ThumbS3Key   *string    `json:"-"`
	UploaderID   *uuid.UUID `json:"-"`
	UploadedAt   time.Time  `json:"uploadedAt"`
}

// IsImage returns true if the media item is an image type.
func (m *MediaFile) IsImage() bool {
	return strings.HasPrefix(m.ContentType, "image/")
}

// HumanSize returns a human-readable file size string.
func (m *MediaFile) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case m.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.SizeBytes)/float64(mb))
	case m.SizeBytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(m.SizeBytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", m.SizeBytes)
	}
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
