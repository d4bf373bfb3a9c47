package payroll

import "errors"

var (
	ErrRunNotFound             = errors.New("payroll run not found")
	ErrRunAlreadyProcessed     = errors.New("payroll for this month has already been processed beyond draft")
	ErrInvalidStatusTransition = errors.New("payroll run cannot move to the requested status from its current one")
	ErrNoEligibleEmployees     = errors.New("no active employees with salary structures found for this run")
)
