// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingPending    BookingStatus = "Pending"
	BookingCancelled  BookingStatus = "Cancelled"
	BookingCheckedIn  BookingStatus = "Checked In"
	BookingCheckedOut BookingStatus = "Checked Out"
)

// Guest holds the contact details captured with a booking.
type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Booking is a reservation record. The panel reads bookings only; new
// bookings arrive through the public booking stub as Pending.
type Booking struct {
	ID            uuid.UUID     `json:"id"`
	BookingNumber string        `json:"bookingNumber"`
	Guest         Guest         `json:"guest"`
	RoomName      string        `json:"roomName"`
	CheckInDate   time.Time     `json:"checkInDate"`
	CheckOutDate  time.Time     `json:"checkOutDate"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Nights returns the length of the stay in nights.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
