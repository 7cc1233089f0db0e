package service

import "errors"

var (
	// ErrNotFound is returned when an operation references a user, train
	// or ticket that does not exist.
	ErrNotFound = errors.New("not found")

	ErrInvalidUser   = errors.New("invalid user")
	ErrInvalidTrain  = errors.New("invalid train")
	ErrInvalidTicket = errors.New("invalid ticket")
)
