// Package businessflow contains the core business logic and use cases for regional release workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Content-related errors
	ErrContentNotFound   = errors.New("content not found")
	ErrContentIDRequired = errors.New("content ID is required")
	ErrInvalidContentID  = errors.New("content ID is not a valid UUID")

	// Schedule-related errors
	ErrNoEntries            = errors.New("at least one region entry is required")
	ErrNoSchedulableEntries = errors.New("no entry has both a region and a valid release date")
	ErrRegionRequired       = errors.New("region is required")
	ErrReleaseDateRequired  = errors.New("release date is required")
	ErrReleaseDateInvalid   = errors.New("release date is not a valid calendar date")
	ErrNoEntriesCommitted   = errors.New("no entry could be committed to the availability store")

	// Processor-related errors
	ErrInvalidAsOfDate = errors.New("as-of date is not a valid calendar date")

	// Query-related errors
	ErrInvalidUpcomingWindow = errors.New("upcoming window must be between 1 and 90 days")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsContentNotFound(err error) bool {
	return errors.Is(err, ErrContentNotFound)
}

func IsContentIDRequired(err error) bool {
	return errors.Is(err, ErrContentIDRequired)
}

func IsInvalidContentID(err error) bool {
	return errors.Is(err, ErrInvalidContentID)
}

func IsNoEntries(err error) bool {
	return errors.Is(err, ErrNoEntries)
}

func IsNoSchedulableEntries(err error) bool {
	return errors.Is(err, ErrNoSchedulableEntries)
}

func IsRegionRequired(err error) bool {
	return errors.Is(err, ErrRegionRequired)
}

func IsReleaseDateInvalid(err error) bool {
	return errors.Is(err, ErrReleaseDateInvalid)
}

func IsNoEntriesCommitted(err error) bool {
	return errors.Is(err, ErrNoEntriesCommitted)
}

func IsInvalidAsOfDate(err error) bool {
	return errors.Is(err, ErrInvalidAsOfDate)
}

func IsInvalidUpcomingWindow(err error) bool {
	return errors.Is(err, ErrInvalidUpcomingWindow)
}
