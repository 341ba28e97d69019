package models

import "testing"

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2 KB"},
		{"megabytes", 10 * 1024 * 1024, "10.0 MB"},
		{"fractional megabytes", 1536 * 1024, "1.5 MB"},
		{"zero", 0, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MediaFile{SizeBytes: tt.bytes}
			if got := m.HumanSize(); got != tt.want {
				t.Errorf("HumanSize(%d): got %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestIsImage(t *testing.T) {
	img := &MediaFile{ContentType: "image/webp"}
	if !img.IsImage() {
		t.Error("expected image/webp to be an image")
	}
	pdf := &MediaFile{ContentType: "application/pdf"}
	if pdf.IsImage() {
		t.Error("expected application/pdf not to be an image")
	}
}
