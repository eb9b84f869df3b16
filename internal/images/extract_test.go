// ABOUTME: Tests for image extraction strategies and placeholder fallbacks
// ABOUTME: Validates the strategy chain ordering and HTTPS coercion

package images

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "img tag with double quotes",
			content:  `<p>Story</p><img src="https://cdn.example.com/a.jpg" alt="">`,
			expected: "https://cdn.example.com/a.jpg",
		},
		{
			name:     "img tag with single quotes",
			content:  `<img src='https://cdn.example.com/b.png'>`,
			expected: "https://cdn.example.com/b.png",
		},
		{
			name:     "insecure img tag is coerced to https",
			content:  `<img src='http://x/a.png'>`,
			expected: "https://x/a.png",
		},
		{
			name:     "media thumbnail",
			content:  `<media:thumbnail url="https://cdn.example.com/thumb.jpg" width="150"/>`,
			expected: "https://cdn.example.com/thumb.jpg",
		},
		{
			name:     "img tag wins over media thumbnail",
			content:  `<media:thumbnail url="https://cdn.example.com/thumb.jpg"/><img src="https://cdn.example.com/full.jpg">`,
			expected: "https://cdn.example.com/full.jpg",
		},
		{
			name:     "bare image url in text",
			content:  `Read more at https://images.example.com/photo.webp today`,
			expected: "https://images.example.com/photo.webp",
		},
		{
			name:     "bare url stops at extension",
			content:  `pic http://images.example.com/p.jpeg?w=300 end`,
			expected: "https://images.example.com/p.jpeg",
		},
		{
			name:     "no image",
			content:  `<p>plain paragraph with a link to https://example.com/page</p>`,
			expected: "",
		},
		{
			name:     "empty content",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.content); got != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestExtractWithTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		title    string
		expected string
	}{
		{
			name:     "content image wins over title fallback",
			content:  `<img src="https://cdn.example.com/a.jpg">`,
			title:    "Cricket final tonight",
			expected: "https://cdn.example.com/a.jpg",
		},
		{
			name:     "cricket title falls back to sports placeholder",
			content:  "",
			title:    "Cricket final tonight",
			expected: "https://placehold.co/400x250?text=Sports+News",
		},
		{
			name:     "movie title falls back to entertainment placeholder",
			content:  "no pictures here",
			title:    "New movie releases this Friday",
			expected: "https://placehold.co/400x250?text=Entertainment+News",
		},
		{
			name:     "politics keyword is case-insensitive",
			content:  "",
			title:    "POLITICAL row in assembly",
			expected: "https://placehold.co/400x250?text=Politics+News",
		},
		{
			name:     "unmatched title gets generic placeholder",
			content:  "",
			title:    "Weather warning issued",
			expected: genericPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractWithTitle(tt.content, tt.title); got != tt.expected {
				t.Errorf("ExtractWithTitle(%q, %q) = %q, want %q", tt.content, tt.title, got, tt.expected)
			}
		})
	}
}

func TestEnsureSecure(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"http://example.com/a.jpg", "https://example.com/a.jpg"},
		{"https://example.com/a.jpg", "https://example.com/a.jpg"},
		{"//example.com/a.jpg", "//example.com/a.jpg"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EnsureSecure(tt.in); got != tt.expected {
			t.Errorf("EnsureSecure(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
