package library

import "errors"

var (
	// ErrItemNotFound is returned when an operation references an item
	// id that doesn't exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrTaskNotFound is returned when an operation references a task
	// id that doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateItem is returned when an item is added with an id
	// that is already present.
	ErrDuplicateItem = errors.New("item id already exists")

	// ErrDuplicateTask is returned when a task is added with an id
	// that is already present.
	ErrDuplicateTask = errors.New("task id already exists")

	// ErrEmptyTitle is returned when an item title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when an item title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidRating is returned when a rating is outside [0,5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrEmptyTaskDescription is returned when a task description is empty.
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")

	// ErrInvalidPriority is returned when an invalid task priority is provided.
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidStatus is returned when an invalid task status is provided.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrAmbiguousIDPrefix is returned when an id prefix matches more
	// than one item or task.
	ErrAmbiguousIDPrefix = errors.New("ambiguous id prefix")

	// ErrBadMagic is returned when a data file doesn't start with the
	// expected magic token.
	ErrBadMagic = errors.New("invalid file format: magic token mismatch")

	// ErrUnsupportedVersion is returned when a data file was written by
	// a newer format version than this engine understands.
	ErrUnsupportedVersion = errors.New("unsupported file format version")

	// ErrRecoveryExhausted is returned when the live data file cannot
	// be read and every backup also fails to parse.
	ErrRecoveryExhausted = errors.New("backup recovery exhausted")

	// ErrNoDataFile is returned when a backup is requested but no live
	// data file exists yet.
	ErrNoDataFile = errors.New("no data file exists to back up")
)
