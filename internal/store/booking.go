// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"oldvine/internal/models"
)

// BookingStore handles reservation records. The panel only reads them;
// new records arrive through the public booking stub.
type BookingStore struct {
	db *sql.DB
}

// NewBookingStore creates a new BookingStore with the given database connection.
func NewBookingStore(db *sql.DB) *BookingStore {
	return &BookingStore{db: db}
}

const bookingColumns = `id, booking_number, guest, room_name, check_in, check_out, total_amount, status, created_at`

func scanBooking(scanner interface{ Scan(...any) error }) (*models.Booking, error) {
	var (
		b     models.Booking
		guest []byte
	)
	err := scanner.Scan(
		&b.ID, &b.BookingNumber, &guest, &b.RoomName,
		&b.CheckInDate, &b.CheckOutDate, &b.TotalAmount, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(guest, &b.Guest); err != nil {
		return nil, fmt.Errorf("decode guest: %w", err)
	}
	return &b, nil
}

// List returns bookings ordered by check-in date descending.
func (s *BookingStore) List() ([]models.Booking, error) {
	rows, err := s.db.Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY check_in DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var items []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// Create inserts a new booking with a generated booking number and Pending
// status, and returns the stored record.
func (s *BookingStore) Create(b *models.Booking) (*models.Booking, error) {
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	number, err := generateBookingNumber()
	if err != nil {
		return nil, fmt.Errorf("booking number: %w", err)
	}

	guest, err := json.Marshal(b.Guest)
	if err != nil {
		return nil, fmt.Errorf("encode guest: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO bookings (booking_number, guest, room_name, check_in, check_out, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+bookingColumns,
		number, guest, b.RoomName, b.CheckInDate, b.CheckOutDate, b.TotalAmount, b.Status,
	)
	created, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return created, nil
}

// Count returns the total number of bookings.
func (s *BookingStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// generateBookingNumber builds a human-quotable reference like OV-20260831-4821.
func generateBookingNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("OV-%s-%04d", time.Now().Format("20060102"), n.Int64()), nil
}
