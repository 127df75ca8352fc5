package services

import "errors"

var (
	// Precondition: the window can never open before HR sets a cut-off.
	ErrCutoffNotSet = errors.New("please set cutoff time first before opening orders")

	ErrMissingUserID = errors.New("missing userId")
	ErrNoItems       = errors.New("no items provided")
	ErrNoOrderFound  = errors.New("no order found for today")
	ErrBadTimeFormat = errors.New("time must be in HH:MM:SS format")
)
