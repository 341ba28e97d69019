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

// SettingsStore persists the hotel-wide settings document. The table holds a
// single row; Get falls back to built-in defaults when the row is absent.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new SettingsStore with the given database connection.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the current settings, or the defaults if none were saved yet.
func (s *SettingsStore) Get() (*models.Settings, error) {
	var (
		data      []byte
		updatedAt sql.NullTime
	)
	err := s.db.QueryRow(`SELECT data, updated_at FROM settings WHERE id = 1`).Scan(&data, &updatedAt)
	if err == sql.ErrNoRows {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if updatedAt.Valid {
		settings.UpdatedAt = updatedAt.Time
	}
	return &settings, nil
}

// Upsert saves the settings document, overwriting the previous one.
func (s *SettingsStore) Upsert(settings *models.Settings) (*models.Settings, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	err = s.db.QueryRow(`
		INSERT INTO settings (id, data, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
		RETURNING updated_at`,
		data,
	).Scan(&settings.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
