package appointment

import "errors"

var (
	// ErrAppointmentNotFound covers both a missing appointment and one
	// owned by another account, so callers cannot probe for existence.
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentFinal    = errors.New("appointment already completed or cancelled")
	ErrNoRegisteredCar     = errors.New("car not found")
	ErrInvalidBay          = errors.New("invalid appointment bay")
	ErrInvalidSchedule     = errors.New("invalid appointment date or time")
)
