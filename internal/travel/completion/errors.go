package completion

import "errors"

var (
	// ErrEmptyOutput indicates the model returned no text.
	ErrEmptyOutput = errors.New("empty model output")

	// ErrMalformedOutput indicates the model output is not the requested JSON.
	ErrMalformedOutput = errors.New("malformed model output")
)
