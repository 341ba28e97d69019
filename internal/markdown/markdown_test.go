package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
	}{
		{
			name:     "markdown heading",
			source:   "# Welcome to the Old Vine",
			contains: "<h1",
		},
		{
			name:     "emphasis",
			source:   "a *quiet* stay",
			contains: "<em>quiet</em>",
		},
		{
			name:     "gfm table",
			source:   "| Room | Price |\n|---|---|\n| Deluxe | 120 |",
			contains: "<table>",
		},
		{
			name:     "raw html passes through",
			source:   `<div class="gallery">photos</div>`,
			contains: `<div class="gallery">photos</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("output %q does not contain %q", got, tt.contains)
			}
		})
	}
}
