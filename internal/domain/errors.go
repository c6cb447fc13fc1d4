package domain

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrUnknownMode       = errors.New("unknown travel mode")
	ErrPOINotFound       = errors.New("point of interest not found")
	ErrInvalidParams     = errors.New("invalid logistics parameters")
)
