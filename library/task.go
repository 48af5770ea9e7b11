package library

import (
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents the explicit importance of a task.
type TaskPriority string

const (
	// PriorityLow is the lowest explicit priority.
	PriorityLow TaskPriority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium TaskPriority = "medium"

	// PriorityHigh marks important tasks.
	PriorityHigh TaskPriority = "high"

	// PriorityUrgent is the highest explicit priority.
	PriorityUrgent TaskPriority = "urgent"
)

// ValidTaskPriorities returns all valid priority values.
func ValidTaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid returns true if the priority is a known value.
func (p TaskPriority) IsValid() bool {
	for _, valid := range ValidTaskPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Weight returns the numeric base weight of the priority (1-4).
func (p TaskPriority) Weight() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	default:
		return 0
	}
}

// TaskStatus represents the state of a task.
type TaskStatus string

const (
	// StatusPending indicates the task has not been started.
	StatusPending TaskStatus = "pending"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress TaskStatus = "in_progress"

	// StatusCompleted indicates the task is done.
	StatusCompleted TaskStatus = "completed"

	// StatusCancelled indicates the task was abandoned.
	StatusCancelled TaskStatus = "cancelled"
)

// ValidTaskStatuses returns all valid status values.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is a known value.
func (s TaskStatus) IsValid() bool {
	for _, valid := range ValidTaskStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsOpen reports whether the task still counts for overdue queries.
func (s TaskStatus) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}

// Urgency bonuses added to a task's base weight as its deadline
// approaches.
const (
	overdueUrgencyBonus  = 20
	dueWithinDayBonus    = 10
	dueWithinWeekBonus   = 5
	urgencyDayThreshold  = 24 * time.Hour
	urgencyWeekThreshold = 7 * 24 * time.Hour
)

// Task is a deadline-bearing unit of work, optionally linked to an
// item in the collection.
type Task struct {
	// ID is a unique identifier, assigned at creation.
	ID string `json:"id"`

	// ItemID links the task to an item, if any.
	ItemID string `json:"item_id,omitempty"`

	// ItemTitle caches the linked item's title for display.
	ItemTitle string `json:"item_title,omitempty"`

	// Description says what needs doing.
	Description string `json:"description"`

	// Priority is the explicit importance level.
	Priority TaskPriority `json:"priority"`

	// Deadline is when the task is due (nil when open-ended).
	Deadline *time.Time `json:"deadline,omitempty"`

	// Status is the current state of the task.
	Status TaskStatus `json:"status"`

	// Notes holds optional free-text context.
	Notes string `json:"notes,omitempty"`

	// EstimatedMinutes is an optional effort estimate.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`
}

// NewTask returns a pending task with a fresh ID. An empty priority
// defaults to medium.
func NewTask(description string, priority TaskPriority, deadline *time.Time) Task {
	if priority == "" {
		priority = PriorityMedium
	}
	task := Task{
		ID:          uuid.NewString(),
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	if deadline != nil {
		due := *deadline
		task.Deadline = &due
	}
	return task
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	copied := t
	if t.Deadline != nil {
		due := *t.Deadline
		copied.Deadline = &due
	}
	return copied
}

// EffectivePriority is the base priority weight plus the urgency bonus
// for the deadline's proximity to now. It is what the queue orders by.
func (t Task) EffectivePriority(now time.Time) int {
	return t.Priority.Weight() + t.UrgencyBonus(now)
}

// UrgencyBonus returns the deadline-proximity bonus: +20 once the
// deadline has passed, +10 within 24 hours, +5 within 7 days,
// otherwise 0. Tasks without a deadline get no bonus.
func (t Task) UrgencyBonus(now time.Time) int {
	if t.Deadline == nil {
		return 0
	}
	until := t.Deadline.Sub(now)
	switch {
	case until < 0:
		return overdueUrgencyBonus
	case until <= urgencyDayThreshold:
		return dueWithinDayBonus
	case until <= urgencyWeekThreshold:
		return dueWithinWeekBonus
	default:
		return 0
	}
}

// IsOverdue reports whether the task's deadline has passed while the
// task is still pending or in progress.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now) && t.Status.IsOpen()
}

// IsDueSoon reports whether the deadline falls within the next 24 hours.
func (t Task) IsDueSoon(now time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	until := t.Deadline.Sub(now)
	return until > 0 && until <= urgencyDayThreshold
}

// taskLess reports whether a should be scheduled ahead of b at the
// given instant: higher effective priority first, then earlier
// deadline, then deadline-bearing over open-ended, then earlier
// creation time.
func taskLess(a, b Task, now time.Time) bool {
	ap, bp := a.EffectivePriority(now), b.EffectivePriority(now)
	if ap != bp {
		return ap > bp
	}
	switch {
	case a.Deadline != nil && b.Deadline != nil:
		if !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}
	case a.Deadline != nil:
		return true
	case b.Deadline != nil:
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
