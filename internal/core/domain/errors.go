package domain

import "errors"

// Sentinel errors. Handlers and the central error handler map these onto the
// numeric envelope statuses; nothing else ever reaches a client.
var (
	ErrPointlessRequest = errors.New("required path parameter missing")
	ErrNotFound         = errors.New("document not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidData      = errors.New("invalid document data")
	ErrAlreadyExists    = errors.New("document already exists")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidFile      = errors.New("invalid file")
)
