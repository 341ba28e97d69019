package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"oldvine/internal/models"
)

// Seed populates the database with initial development data: a default
// admin, the singleton settings document, the home and about page content,
// and a handful of room and gallery categories so the public pages and the
// synchronizer have something to work with. No-op if an admin exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return fmt.Errorf("seed check admins: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admins (username, email, password_hash, first_name, full_name)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin", "admin@oldvinehotel.com", string(hash), "Admin", "Site Administrator")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedPageContent(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}

	slog.Info("database seeded with default admin",
		"username", "admin",
		"password", "admin",
	)
	return nil
}

func seedSettings(db *sql.DB) error {
	data, err := json.Marshal(models.DefaultSettings())
	if err != nil {
		return fmt.Errorf("seed marshal settings: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO settings (id, data) VALUES (1, $1)`, data); err != nil {
		return fmt.Errorf("seed insert settings: %w", err)
	}
	return nil
}

func seedPageContent(db *sql.DB) error {
	pages := []models.PageContent{
		{
			Page: models.PageHome,
			Hero: models.Hero{
				Title:           "Old Vine Hotel",
				Subtitle:        "A quiet corner of the old town",
				Description:     "Stone walls, vaulted cellars and a courtyard shaded by a century-old vine.",
				BackgroundImage: "/images/hero-courtyard.jpg",
				CTAText:         "Book your stay",
				CTALink:         "/booking",
			},
			Sections: []models.Section{
				{
					SectionID: models.SectionWelcome,
					Title:     "Welcome",
					Content:   "<p>Welcome to the Old Vine, a family-run hotel in the heart of the old town.</p>",
					IsActive:  true,
				},
			},
			SEO: models.PageSEO{
				Title:       "Old Vine Hotel — Boutique stay in the old town",
				Description: "Boutique heritage hotel with rooms, suites and a courtyard restaurant.",
				Keywords:    []string{"hotel", "boutique", "old town"},
			},
		},
		{
			Page: models.PageAbout,
			Hero: models.Hero{
				Title:    "Our Story",
				Subtitle: "Four generations under one vine",
			},
			Sections: []models.Section{
				{
					SectionID: models.SectionHeritage,
					Title:     "Heritage",
					Content:   "<p>The building dates from 1872; the vine over the courtyard is nearly as old.</p>",
					IsActive:  true,
				},
				{
					SectionID: models.SectionMission,
					Title:     "Mission",
					Content:   "<p>Honest hospitality, unhurried.</p>",
					IsActive:  true,
				},
				{
					SectionID: models.SectionValues,
					Title:     "Values",
					Items: []models.SectionItem{
						{Title: "Care", Description: "Every guest greeted by name."},
						{Title: "Craft", Description: "Local makers in every room."},
					},
					IsActive: true,
				},
			},
		},
	}

	for _, p := range pages {
		hero, err := json.Marshal(p.Hero)
		if err != nil {
			return fmt.Errorf("seed marshal hero: %w", err)
		}
		sections, err := json.Marshal(p.Sections)
		if err != nil {
			return fmt.Errorf("seed marshal sections: %w", err)
		}
		seo, err := json.Marshal(p.SEO)
		if err != nil {
			return fmt.Errorf("seed marshal seo: %w", err)
		}
		_, err = db.Exec(`
			INSERT INTO page_content (page, hero, sections, seo)
			VALUES ($1, $2, $3, $4)
		`, p.Page, hero, sections, seo)
		if err != nil {
			return fmt.Errorf("seed insert page content: %w", err)
		}
	}
	return nil
}

func seedCategories(db *sql.DB) error {
	roomCats := []struct {
		name, slug, short string
		features          []string
		min, max          float64
	}{
		{"Classic Room", "classic", "Cosy rooms over the courtyard", []string{"WiFi", "AC", "Garden View"}, 90, 130},
		{"Deluxe Room", "deluxe", "Spacious rooms with period details", []string{"WiFi", "AC", "Minibar", "City View"}, 130, 190},
		{"Vine Suite", "vine-suite", "Suites under the original beams", []string{"WiFi", "AC", "Minibar", "Terrace", "Jacuzzi"}, 220, 340},
	}
	for _, c := range roomCats {
		features, err := json.Marshal(c.features)
		if err != nil {
			return fmt.Errorf("seed marshal features: %w", err)
		}
		priceRange, err := json.Marshal(models.PriceRange{Min: c.min, Max: c.max})
		if err != nil {
			return fmt.Errorf("seed marshal price range: %w", err)
		}
		_, err = db.Exec(`
			INSERT INTO room_categories (name, slug, short_description, features, price_range)
			VALUES ($1, $2, $3, $4, $5)
		`, c.name, c.slug, c.short, features, priceRange)
		if err != nil {
			return fmt.Errorf("seed insert room category: %w", err)
		}
	}

	galleryCats := []struct{ name, slug string }{
		{"Rooms & Suites", "rooms-suites"},
		{"Courtyard", "courtyard"},
		{"Dining", "dining"},
	}
	for _, c := range galleryCats {
		_, err := db.Exec(`
			INSERT INTO gallery_categories (name, slug) VALUES ($1, $2)
		`, c.name, c.slug)
		if err != nil {
			return fmt.Errorf("seed insert gallery category: %w", err)
		}
	}
	return nil
}
