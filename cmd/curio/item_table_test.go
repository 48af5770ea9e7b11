package main

import (
	"strings"
	"testing"
	"time"

	"github.com/curiolib/curio/library"
)

func plainHighlight(id string, prefixLen int) string {
	return id
}

func TestFormatItemTable(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	items := []library.Item{
		{
			ID:        "aaa111",
			Title:     "Go Programming",
			Category:  "Book",
			Tags:      []string{"golang", "programming"},
			Rating:    4,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "bbb222",
			Title:     "Cosmos",
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}

	got := formatItemTable(items, map[string]int{"aaa111": 1, "bbb222": 1}, plainHighlight, now)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "golang,programming") {
		t.Errorf("expected joined tags in row, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "****") {
		t.Errorf("expected four stars for rating 4, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "2h") {
		t.Errorf("expected age 2h, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "-") {
		t.Errorf("expected dashes for missing category and tags, got %q", lines[2])
	}
}

func TestFormatSearchTable(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	results := []library.SearchResult{
		{
			Item: library.Item{
				ID:        "ccc333",
				Title:     "Dune",
				Category:  "Book",
				CreatedAt: now.Add(-time.Hour),
			},
			Relevance:      27,
			KeywordMatches: 1,
		},
	}

	got := formatSearchTable(results, plainHighlight, now)

	if !strings.Contains(got, "SCORE") {
		t.Fatalf("expected SCORE column, got:\n%s", got)
	}
	if !strings.Contains(got, "27") {
		t.Errorf("expected relevance 27 in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Dune") {
		t.Errorf("expected title in output, got:\n%s", got)
	}
}

func TestRatingStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "-"},
		{1, "*"},
		{5, "*****"},
		{9, "*****"},
	}

	for _, tt := range tests {
		if got := ratingStars(tt.rating); got != tt.want {
			t.Errorf("ratingStars(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512B"},
		{2048, "2.0KB"},
		{3 * 1024 * 1024, "3.0MB"},
	}

	for _, tt := range tests {
		if got := formatFileSize(tt.size); got != tt.want {
			t.Errorf("formatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
