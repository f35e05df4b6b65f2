package llm

import "errors"

var (
	// ErrEmptyResponse indicates the provider returned no content.
	ErrEmptyResponse = errors.New("llm returned an empty response")

	// ErrInvalidOutput indicates the reply could not be decoded into the
	// expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
