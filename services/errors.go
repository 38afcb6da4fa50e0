package services

import "errors"

var (
	// ErrNotFound marks a lookup of a menu item, order or address that is
	// required to exist but does not.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks input rejected before any state change.
	ErrInvalidArgument = errors.New("invalid argument")
)
