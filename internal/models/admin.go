// Package models defines the domain types shared by the stores, handlers,
// and the static data mirror.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a panel account. The hotel runs a small team; there are no
// roles, every admin can do everything.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	FullName     string    `json:"fullName"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminProfile is the public shape of an admin account, returned by login
// and the me endpoint.
type AdminProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	FullName  string    `json:"fullName"`
	Avatar    *string   `json:"avatar,omitempty"`
}

// Profile returns the admin's public profile.
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		FullName:  a.FullName,
		Avatar:    a.Avatar,
	}
}
