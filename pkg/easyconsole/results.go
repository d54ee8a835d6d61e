package easyconsole

import "errors"

var (
	// ErrInputCancelled is returned when the user ends input (Ctrl+Z/Ctrl+D, or EOF
	// on a redirected stdin) instead of answering a prompt.
	ErrInputCancelled = errors.New("user input cancelled")
)

// Configuration errors. These point at a mistake in the calling code, not at
// anything the user typed, and are returned before any prompting happens.
var (
	ErrNoOptions           = errors.New("menu has no options")
	ErrNilOptionValue      = errors.New("option value is nil")
	ErrDefaultNotInOptions = errors.New("default option is not one of the menu options")
	ErrInvalidRange        = errors.New("min must be <= max")
	ErrDefaultOutOfRange   = errors.New("default value is outside of range")
	ErrInvalidConcurrency  = errors.New("max concurrent tasks must be 1 or greater")
	ErrInvalidPageSize     = errors.New("page size must be 1 or greater")
	ErrNoValues            = errors.New("at least one value is required")
	ErrColumnNotFound      = errors.New("table has no column with that name")
	ErrNoFields            = errors.New("table needs at least one field")
)

// Navigation errors.
var (
	ErrPageNotFound       = errors.New("page was not present in the program")
	ErrCannotNavigateBack = errors.New("cannot navigate back, navigation history is already empty")
	ErrNoCurrentPage      = errors.New("program has no current page")
)
