package storage

import "testing"

func TestNewReturnsNilWithoutCredentials(t *testing.T) {
	c, err := New("", "eu-central", "", "", "media", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client without endpoint/credentials")
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		key       string
		want      string
	}{
		{"path style", "", "uploads/a.jpg", "https://s3.example.com/media/uploads/a.jpg"},
		{"cdn url", "https://cdn.oldvine.example", "uploads/a.jpg", "https://cdn.oldvine.example/uploads/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("https://s3.example.com/", "eu-central", "key", "secret", "media", tt.publicURL)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := c.FileURL(tt.key); got != tt.want {
				t.Errorf("FileURL: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractKey(t *testing.T) {
	c, err := New("https://s3.example.com", "eu-central", "key", "secret", "media", "https://cdn.oldvine.example")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{"cdn url", "https://cdn.oldvine.example/uploads/a.jpg", "uploads/a.jpg", true},
		{"path style url", "https://s3.example.com/media/uploads/a.jpg", "uploads/a.jpg", true},
		{"foreign url", "https://elsewhere.example/a.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("ExtractKey(%q) = (%q, %v), want (%q, %v)", tt.url, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}
