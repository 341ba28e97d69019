// Package store provides database access methods for all Old Vine
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"oldvine/internal/models"
)

// AdminStore handles all admin-account database operations.
type AdminStore struct {
	db *sql.DB
}

// NewAdminStore creates a new AdminStore with the given database connection.
func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

const adminColumns = `id, username, email, password_hash, first_name, full_name, avatar, created_at, updated_at`

func scanAdmin(scanner interface{ Scan(...any) error }) (*models.Admin, error) {
	var a models.Admin
	err := scanner.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash,
		&a.FirstName, &a.FullName, &a.Avatar, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByUsername retrieves an admin by login name. Returns nil if not found.
func (s *AdminStore) FindByUsername(username string) (*models.Admin, error) {
	row := s.db.QueryRow(`SELECT `+adminColumns+` FROM admins WHERE username = $1`, username)
	a, err := scanAdmin(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	return a, nil
}

// FindByID retrieves an admin by UUID. Returns nil if not found.
func (s *AdminStore) FindByID(id uuid.UUID) (*models.Admin, error) {
	row := s.db.QueryRow(`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	a, err := scanAdmin(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return a, nil
}

// Create inserts a new admin with a bcrypt-hashed password.
func (s *AdminStore) Create(username, email, password, firstName, fullName string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO admins (username, email, password_hash, first_name, full_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+adminColumns,
		username, email, string(hash), firstName, fullName,
	)
	a, err := scanAdmin(row)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return a, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *AdminStore) CheckPassword(a *models.Admin, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
