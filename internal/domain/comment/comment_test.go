package comment

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	c, err := New("com-1", "user-1", "vid-1", "  nice knife work  ", 1700000000000)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.ID() != "com-1" || c.OwnerID() != "user-1" || c.VideoID() != "vid-1" {
		t.Errorf("identity = %q/%q/%q", c.ID(), c.OwnerID(), c.VideoID())
	}
	if c.Content() != "nice knife work" {
		t.Errorf("Content() = %q, want trimmed content", c.Content())
	}
	if c.CreatedAt() != 1700000000000 {
		t.Errorf("CreatedAt() = %d", c.CreatedAt())
	}
}

func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		ownerID string
		videoID string
		content string
	}{
		{"bad id", "has spaces", "user-1", "vid-1", "hi"},
		{"bad owner", "com-1", "", "vid-1", "hi"},
		{"bad video", "com-1", "user-1", "no spaces allowed", "hi"},
		{"empty content", "com-1", "user-1", "vid-1", "   "},
		{"long content", "com-1", "user-1", "vid-1", strings.Repeat("a", MaxContentLength+1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.id, tc.ownerID, tc.videoID, tc.content, 0); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}

func TestSearchText(t *testing.T) {
	c := Reconstruct("com-1", "user-1", "vid-1", "the quick fox", 0)
	if got := c.SearchText(); got != "the quick fox" {
		t.Errorf("SearchText() = %q", got)
	}
}

func TestSortValue(t *testing.T) {
	c := Reconstruct("com-1", "user-1", "vid-1", "hi", 2500)

	if got, ok := c.SortValue("created_at"); !ok || got != 2500 {
		t.Errorf("SortValue(created_at) = %v, %v", got, ok)
	}
	if _, ok := c.SortValue("views"); ok {
		t.Error("SortValue(views) ok = true, want false")
	}
}

func TestWithContent(t *testing.T) {
	c := Reconstruct("com-1", "user-1", "vid-1", "old", 1000)

	got, err := c.WithContent(" new text ")
	if err != nil {
		t.Fatalf("WithContent() error = %v", err)
	}
	if got.Content() != "new text" {
		t.Errorf("Content() = %q", got.Content())
	}
	if got.CreatedAt() != 1000 || got.VideoID() != "vid-1" {
		t.Error("WithContent should preserve identity and timestamp")
	}
	if c.Content() != "old" {
		t.Error("WithContent mutated the receiver")
	}

	if _, err := c.WithContent("  "); err == nil {
		t.Error("WithContent with blank content should fail")
	}
}
