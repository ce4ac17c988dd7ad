package domain

import "errors"

// Envelope status codes. Every response carries one of these; the HTTP status
// stays 200 for all domain outcomes.
const (
	StatusSuccess         = 0
	StatusPointless       = 1
	StatusNotFound        = 2
	StatusAccessDenied    = 3
	StatusInvalidJSON     = 4
	StatusAlreadyExists   = 5
	StatusInvalidRequest  = 6
	StatusInvalidFile     = 7
	statusInternalFailure = StatusInvalidRequest
)

// StatusOf maps a domain error to its envelope status. Unknown errors fall
// back to InvalidRequest so no internal detail leaks.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrPointlessRequest):
		return StatusPointless
	case errors.Is(err, ErrNotFound):
		return StatusNotFound
	case errors.Is(err, ErrAccessDenied):
		return StatusAccessDenied
	case errors.Is(err, ErrInvalidData):
		return StatusInvalidJSON
	case errors.Is(err, ErrAlreadyExists):
		return StatusAlreadyExists
	case errors.Is(err, ErrInvalidFile):
		return StatusInvalidFile
	case errors.Is(err, ErrInvalidRequest):
		return StatusInvalidRequest
	default:
		return statusInternalFailure
	}
}
