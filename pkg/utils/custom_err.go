package utils

import "errors"

var (
	ErrPlanIDRequired    = errors.New("plan id is required")
	ErrNoUpdateFields    = errors.New("no fields provided to update")
	ErrMissingPlanFields = errors.New("missing required plan fields (title, day_of_week, start_time, end_time)")
	ErrInvalidDayOfWeek  = errors.New("day_of_week must be between 1 and 7")
	ErrInvalidClockTime  = errors.New("time must be in HH:MM format")
	ErrNoValidPlans      = errors.New("no valid plan data to create")
	ErrPlanNotFound      = errors.New("plan not found or not permitted")
	ErrUserNotFound      = errors.New("user not found")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDatabaseError = errors.New("database error")
)
