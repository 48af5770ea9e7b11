package main

import (
	"strings"
	"testing"
	"time"

	"github.com/curiolib/curio/library"
)

func TestFormatTaskTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)
	tasks := []library.Task{
		{
			ID:          "task01",
			Description: "Renew passport",
			Priority:    library.PriorityLow,
			Status:      library.StatusPending,
			Deadline:    &deadline,
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:          "task02",
			Description: "Read backlog",
			Priority:    library.PriorityUrgent,
			Status:      library.StatusPending,
			ItemTitle:   "War and Peace",
			CreatedAt:   now.Add(-time.Hour),
		},
	}

	got := formatTaskTable(tasks, map[string]int{"task01": 5, "task02": 5}, plainHighlight, now)

	if !strings.Contains(got, "overdue") {
		t.Errorf("expected overdue marker, got:\n%s", got)
	}
	if !strings.Contains(got, "21") {
		t.Errorf("expected effective priority 21 for overdue low task, got:\n%s", got)
	}
	if !strings.Contains(got, "War and Peace") {
		t.Errorf("expected linked item title, got:\n%s", got)
	}
}

func TestFormatDeadline(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	if got := formatDeadline(library.Task{Status: library.StatusPending}, now); got != "-" {
		t.Fatalf("expected dash for no deadline, got %q", got)
	}

	soon := now.Add(2 * time.Hour)
	task := library.Task{Status: library.StatusPending, Deadline: &soon}
	if got := formatDeadline(task, now); !strings.Contains(got, "due soon") {
		t.Fatalf("expected due soon marker, got %q", got)
	}
}

func TestParseDeadline(t *testing.T) {
	got, err := parseDeadline("2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 1 {
		t.Fatalf("unexpected date: %v", got)
	}
	if got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("expected end of day, got %v", got)
	}

	rfc, err := parseDeadline("2026-09-01T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rfc.Hour() != 10 {
		t.Fatalf("unexpected hour: %v", rfc)
	}

	if _, err := parseDeadline("next tuesday"); err == nil {
		t.Fatal("expected error for unparseable deadline")
	}
}
