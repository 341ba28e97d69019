// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"oldvine/internal/models"
)

func testPost(slug string, status models.BlogStatus) *models.BlogPost {
	return &models.BlogPost{
		Title:    "Post " + slug,
		Slug:     slug,
		Excerpt:  "An excerpt.",
		Content:  "## Heading\n\nBody text.",
		Category: "News",
		Status:   status,
		Tags:     []string{"test"},
	}
}

func TestBlogStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-create-post"
	t.Cleanup(func() { cleanBlogPosts(t, db, slug) })

	post, err := s.Create(testPost(slug, models.BlogStatusDraft))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	found, err := s.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if found.Slug != slug {
		t.Errorf("slug: got %q, want %q", found.Slug, slug)
	}
	if len(found.Tags) != 1 || found.Tags[0] != "test" {
		t.Errorf("tags: got %v, want [test]", found.Tags)
	}
}

func TestBlogStorePublishedVisibility(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	draftSlug := "test-vis-draft"
	pubSlug := "test-vis-published"
	t.Cleanup(func() { cleanBlogPosts(t, db, draftSlug, pubSlug) })

	if _, err := s.Create(testPost(draftSlug, models.BlogStatusDraft)); err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	if _, err := s.Create(testPost(pubSlug, models.BlogStatusPublished)); err != nil {
		t.Fatalf("Create published: %v", err)
	}

	// The public slug lookup must not surface drafts.
	post, err := s.FindPublishedBySlug(draftSlug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug (draft): %v", err)
	}
	if post != nil {
		t.Error("draft post leaked through the published lookup")
	}

	post, err = s.FindPublishedBySlug(pubSlug)
	if err != nil {
		t.Fatalf("FindPublishedBySlug: %v", err)
	}
	if post == nil {
		t.Fatal("expected published post, got nil")
	}

	published, err := s.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	for _, p := range published {
		if p.Status != models.BlogStatusPublished {
			t.Errorf("ListPublished returned %q post %q", p.Status, p.Slug)
		}
	}
}

func TestBlogStoreSlugExists(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-slug-exists"
	t.Cleanup(func() { cleanBlogPosts(t, db, slug) })

	exists, err := s.SlugExists(slug)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if exists {
		t.Error("expected slug to be free")
	}

	if _, err := s.Create(testPost(slug, models.BlogStatusDraft)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = s.SlugExists(slug)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Error("expected slug to be taken")
	}
}

func TestBlogStoreUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewBlogStore(db)

	slug := "test-update-post"
	t.Cleanup(func() { cleanBlogPosts(t, db, slug) })

	post, err := s.Create(testPost(slug, models.BlogStatusDraft))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	post.Title = "Updated Title"
	post.Status = models.BlogStatusArchived
	if err := s.Update(post); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, _ := s.FindByID(post.ID)
	if found.Title != "Updated Title" {
		t.Errorf("title: got %q, want %q", found.Title, "Updated Title")
	}
	if found.Status != models.BlogStatusArchived {
		t.Errorf("status: got %q, want archived", found.Status)
	}

	if err := s.Delete(post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, _ = s.FindByID(post.ID)
	if found != nil {
		t.Error("expected nil after delete")
	}
}
