package library

import (
	"fmt"
	"strings"
)

// MaxTitleLength is the maximum allowed length for an item title.
const MaxTitleLength = 500

// Rating bounds for items.
const (
	RatingMin = 0
	RatingMax = 5
)

// ValidateTitle checks that an item title is non-blank and within bounds.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateRating checks that a rating is within [0,5].
func ValidateRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	return nil
}

// ValidateItem checks an item for field-level validity. Mutating
// operations reject invalid items before any state changes.
func ValidateItem(it *Item) error {
	if err := ValidateTitle(it.Title); err != nil {
		return err
	}
	return ValidateRating(it.Rating)
}

// ValidateTask checks a task for field-level validity.
func ValidateTask(t *Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyTaskDescription
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPriority, t.Priority,
			formatValidValues(ValidTaskPriorities()))
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatus, t.Status,
			formatValidValues(ValidTaskStatuses()))
	}
	return nil
}

// formatValidValues joins enum values for error messages.
func formatValidValues[T ~string](values []T) string {
	joined := make([]string, 0, len(values))
	for _, value := range values {
		joined = append(joined, string(value))
	}
	return strings.Join(joined, ", ")
}
