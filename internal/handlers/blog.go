// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"oldvine/internal/cache"
	"oldvine/internal/markdown"
	"oldvine/internal/models"
	"oldvine/internal/slug"
	"oldvine/internal/store"
)

// Blog handles the public blog and the admin editor endpoints. Posts
// are stored as raw editor source; public responses carry rendered
// HTML, admin responses carry the source unchanged.
type Blog struct {
	blog  *store.BlogStore
	cache *cache.APICache
}

// NewBlog creates the blog handler group.
func NewBlog(blog *store.BlogStore, c *cache.APICache) *Blog {
	return &Blog{blog: blog, cache: c}
}

type blogPayload struct {
	Title    string   `json:"title" validate:"required,max=300"`
	Excerpt  string   `json:"excerpt" validate:"max=1000"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags"`
}

func (p *blogPayload) validateDomain() string {
	if !models.ValidBlogCategory(p.Category) {
		return "Invalid blog category"
	}
	switch models.BlogStatus(p.Status) {
	case "", models.BlogStatusDraft, models.BlogStatusPublished, models.BlogStatusArchived:
	default:
		return "Invalid post status"
	}
	return ""
}

// rendered returns a copy of the post with its content rendered to
// HTML. Render failures fall back to the raw source.
func rendered(p models.BlogPost) models.BlogPost {
	html, err := markdown.ToHTML(p.Content)
	if err != nil {
		slog.Warn("blog post render failed", "slug", p.Slug, "error", err)
		return p
	}
	p.Content = html
	return p
}

// ListPublished returns the public blog feed with rendered content.
func (h *Blog) ListPublished(w http.ResponseWriter, r *http.Request) {
	key := "blog"
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	posts, err := h.blog.ListPublished()
	if err != nil {
		slog.Error("blog list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load blog posts")
		return
	}

	out := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, rendered(p))
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"posts": out})
}

// GetPublished returns one published post by slug, rendered. Drafts
// and archived posts are invisible here.
func (h *Blog) GetPublished(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	key := "blog:" + s
	if serveCached(r.Context(), w, h.cache, key) {
		return
	}

	post, err := h.blog.FindPublishedBySlug(s)
	if err != nil {
		slog.Error("blog lookup failed", "slug", s, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load blog post")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	respondDataCached(r.Context(), w, h.cache, key, map[string]any{"post": rendered(*post)})
}

// ListAll returns every post regardless of status, with raw editor
// source. Admin only.
func (h *Blog) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListAll()
	if err != nil {
		slog.Error("blog admin list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load blog posts")
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}

	respondData(w, http.StatusOK, map[string]any{"posts": posts})
}

// Create adds a post, generating a unique slug from the title.
func (h *Blog) Create(w http.ResponseWriter, r *http.Request) {
	var payload blogPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := payload.validateDomain(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := slug.Unique(payload.Title, h.blog.SlugExists)
	if err != nil {
		slog.Error("slug generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	post := &models.BlogPost{
		Title:    payload.Title,
		Slug:     s,
		Excerpt:  payload.Excerpt,
		Content:  payload.Content,
		Category: payload.Category,
		Status:   models.BlogStatus(payload.Status),
		Tags:     payload.Tags,
	}
	if post.Status == "" {
		post.Status = models.BlogStatusDraft
	}

	created, err := h.blog.Create(post)
	if err != nil {
		slog.Error("blog create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	h.invalidate(r)
	respondData(w, http.StatusCreated, map[string]any{"post": created})
}

// Update overwrites a post by id. The slug never changes after
// creation, so published URLs stay stable.
func (h *Blog) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	existing, err := h.blog.FindByID(id)
	if err != nil {
		slog.Error("blog lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load blog post")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	var payload blogPayload
	if err := decodeBody(w, r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkPayload(&payload); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := payload.validateDomain(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	existing.Title = payload.Title
	existing.Excerpt = payload.Excerpt
	existing.Content = payload.Content
	existing.Category = payload.Category
	existing.Tags = payload.Tags
	if payload.Status != "" {
		existing.Status = models.BlogStatus(payload.Status)
	}

	if err := h.blog.Update(existing); err != nil {
		slog.Error("blog update failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}

	h.invalidate(r)
	respondData(w, http.StatusOK, map[string]any{"post": existing})
}

// Delete removes a post by id.
func (h *Blog) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.blog.Delete(id); err != nil {
		slog.Error("blog delete failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}

	h.invalidate(r)
	respondMessage(w, http.StatusOK, "Blog post deleted")
}

func (h *Blog) invalidate(r *http.Request) {
	if h.cache != nil {
		h.cache.InvalidatePrefix(r.Context(), "blog")
	}
}
