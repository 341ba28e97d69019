package models

import "testing"

func TestNormalizeImages(t *testing.T) {
	tests := []struct {
		name        string
		images      []RoomImage
		wantPrimary int // index expected to end up primary, -1 for none
	}{
		{
			name:        "no images",
			images:      nil,
			wantPrimary: -1,
		},
		{
			name: "none flagged promotes first",
			images: []RoomImage{
				{URL: "/a.jpg"}, {URL: "/b.jpg"},
			},
			wantPrimary: 0,
		},
		{
			name: "single flag is kept",
			images: []RoomImage{
				{URL: "/a.jpg"}, {URL: "/b.jpg", IsPrimary: true},
			},
			wantPrimary: 1,
		},
		{
			name: "multiple flags keep only the first",
			images: []RoomImage{
				{URL: "/a.jpg", IsPrimary: true},
				{URL: "/b.jpg", IsPrimary: true},
				{URL: "/c.jpg", IsPrimary: true},
			},
			wantPrimary: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Room{Images: tt.images}
			r.NormalizeImages()

			primaries := 0
			primaryIdx := -1
			for i, img := range r.Images {
				if img.IsPrimary {
					primaries++
					primaryIdx = i
				}
			}

			if len(r.Images) > 0 && primaries != 1 {
				t.Fatalf("expected exactly one primary image, got %d", primaries)
			}
			if primaryIdx != tt.wantPrimary {
				t.Errorf("primary index: got %d, want %d", primaryIdx, tt.wantPrimary)
			}
		})
	}
}

func TestPrimaryImage(t *testing.T) {
	t.Run("nil for empty room", func(t *testing.T) {
		r := &Room{}
		if r.PrimaryImage() != nil {
			t.Error("expected nil primary image")
		}
	})

	t.Run("falls back to first image", func(t *testing.T) {
		r := &Room{Images: []RoomImage{{URL: "/a.jpg"}, {URL: "/b.jpg"}}}
		got := r.PrimaryImage()
		if got == nil || got.URL != "/a.jpg" {
			t.Errorf("got %+v, want first image", got)
		}
	})
}

func TestValidType(t *testing.T) {
	for _, rt := range RoomTypes {
		if !ValidType(rt) {
			t.Errorf("ValidType(%q) = false, want true", rt)
		}
	}
	if ValidType("Penthouse") {
		t.Error("ValidType accepted a type outside the fixed set")
	}
	if ValidBedType("Bunk") {
		t.Error("ValidBedType accepted a type outside the fixed set")
	}
}
