// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus represents the publishing state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

// BlogCategories is the fixed set of categories the panel offers.
var BlogCategories = []string{
	"News", "Events", "Travel Tips", "Local Attractions",
	"Hotel Updates", "Food & Dining", "Spa & Wellness",
	"Special Offers", "Guest Stories", "Behind the Scenes",
}

// BlogPost is an article on the hotel blog. Content is stored as the
// raw editor source; the public endpoint serves it rendered to HTML.
type BlogPost struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Status    BlogStatus `json:"status"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// IsPublished returns true if the post is visible on the public blog.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogStatusPublished
}

// ValidBlogCategory reports whether c is one of the fixed blog categories.
func ValidBlogCategory(c string) bool {
	for _, bc := range BlogCategories {
		if c == bc {
			return true
		}
	}
	return false
}
