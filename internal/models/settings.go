// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Address is the hotel's postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// SocialMedia holds the hotel's social profile URLs.
type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// Theme holds the site colour palette managed from the panel.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
}

// SEOMeta holds the site-wide search metadata defaults.
type SEOMeta struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OGImage         string `json:"ogImage"`
}

// BookingSettings constrain the public booking form.
type BookingSettings struct {
	MinNights          int    `json:"minNights"`
	MaxNights          int    `json:"maxNights"`
	CheckInTime        string `json:"checkInTime"`
	CheckOutTime       string `json:"checkOutTime"`
	CancellationPolicy string `json:"cancellationPolicy"`
}

// Settings is the singleton site configuration document. Writes are
// last-write-wins; there is no version field.
type Settings struct {
	SiteName        string          `json:"siteName"`
	SiteDescription string          `json:"siteDescription"`
	SiteKeywords    string          `json:"siteKeywords"`
	ContactEmail    string          `json:"contactEmail"`
	ContactPhone    string          `json:"contactPhone"`
	WhatsApp        string          `json:"whatsapp"`
	Address         Address         `json:"address"`
	SocialMedia     SocialMedia     `json:"socialMedia"`
	Theme           Theme           `json:"theme"`
	SEO             SEOMeta         `json:"seo"`
	BookingSettings BookingSettings `json:"bookingSettings"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// DefaultSettings returns the settings used before an admin has saved any.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "Old Vine Hotel",
		SiteDescription: "A boutique heritage hotel in the heart of the old town.",
		SiteKeywords:    "hotel, boutique, heritage, old town",
		ContactEmail:    "reception@oldvinehotel.com",
		ContactPhone:    "+0 000 000 000",
		Theme: Theme{
			PrimaryColor:   "#5a3e36",
			SecondaryColor: "#d9c5a0",
			AccentColor:    "#8c6d46",
		},
		BookingSettings: BookingSettings{
			MinNights:    1,
			MaxNights:    30,
			CheckInTime:  "14:00",
			CheckOutTime: "12:00",
		},
	}
}
