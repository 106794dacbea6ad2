package gradpick

import "errors"

// Errors returned by Collection and Picker operations.
var (
	// ErrLimitExceeded is returned when adding a stop to a full collection.
	ErrLimitExceeded = errors.New("gradpick: stop limit exceeded")

	// ErrPositionOutOfRange is returned by Add for a position outside [0, 1].
	ErrPositionOutOfRange = errors.New("gradpick: position must be between zero and one")

	// ErrInvalidFormat wraps every malformed external value: clipboard
	// payloads, percent text, color strings.
	ErrInvalidFormat = errors.New("gradpick: invalid format")

	// ErrNoSelection is returned by operations that need a selected stop.
	ErrNoSelection = errors.New("gradpick: no stop selected")

	// ErrClipboardEmpty is returned when the clipboard holds no color.
	ErrClipboardEmpty = errors.New("gradpick: clipboard has no color")

	// ErrEmptyTable is returned by renderers given an empty interpolation table.
	ErrEmptyTable = errors.New("gradpick: empty interpolation table")

	// ErrInvalidDimensions is returned for non-positive surface sizes.
	ErrInvalidDimensions = errors.New("gradpick: invalid dimensions")
)
