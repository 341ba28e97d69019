// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Page identifies a CMS-managed page document.
type Page string

const (
	PageHome  Page = "home"
	PageAbout Page = "about"
)

// Known section IDs the public site looks up. A missing section is not an
// error: the site falls back to its translated default strings.
const (
	SectionWelcome  = "welcome"
	SectionHeritage = "heritage"
	SectionMission  = "mission"
	SectionVision   = "vision"
	SectionValues   = "values"
)

// Hero is the banner block at the top of a CMS page.
type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
	CTAText         string `json:"ctaText,omitempty"`
	CTALink         string `json:"ctaLink,omitempty"`
}

// SectionItem is one bullet within a section (e.g. a single hotel value).
type SectionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section is a named, independently toggleable content block within a page.
// SectionID is the stable lookup key; it is unique within a page.
type Section struct {
	SectionID string        `json:"sectionId"`
	Title     string        `json:"title"`
	Subtitle  string        `json:"subtitle,omitempty"`
	Content   string        `json:"content"` // rich text / HTML
	Image     string        `json:"image,omitempty"`
	Items     []SectionItem `json:"items,omitempty"`
	IsActive  bool          `json:"isActive"`
}

// PageSEO holds per-page search metadata.
type PageSEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	OGImage     string   `json:"ogImage"`
}

// PageContent is the CMS document backing a public page.
type PageContent struct {
	Page      Page      `json:"page"`
	Hero      Hero      `json:"hero"`
	Sections  []Section `json:"sections"`
	SEO       PageSEO   `json:"seo"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionByID returns the active section with the given ID, or nil when it
// is absent or disabled. Callers treat nil as "use the default copy".
func (p *PageContent) SectionByID(id string) *Section {
	for i := range p.Sections {
		if p.Sections[i].SectionID == id && p.Sections[i].IsActive {
			return &p.Sections[i]
		}
	}
	return nil
}
