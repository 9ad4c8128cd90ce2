package events

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidLayout = errors.New("invalid event layout")
	ErrInvalidDate   = errors.New("invalid event date")
)
