package hire

import "errors"

var (
	// ErrNotFound covers both a missing hire and a hire in the wrong
	// status for the attempted transition. The two cases are deliberately
	// indistinguishable to callers.
	ErrNotFound = errors.New("hire not found")

	// ErrValidation is returned when required trip facts are missing or
	// malformed at creation time.
	ErrValidation = errors.New("all required fields must be filled")

	// ErrReasonRequired is returned when a cancel or return is attempted
	// without a non-blank reason.
	ErrReasonRequired = errors.New("reason is required")

	// ErrImmutable is returned when a status-gated field edit is
	// attempted: trip facts after the trip started, or assignment fields
	// after acceptance.
	ErrImmutable = errors.New("hire fields are frozen in the current status")

	// ErrInvalidAssignment is returned for an unknown assignment type.
	ErrInvalidAssignment = errors.New("assignment type must be auto or manual")

	// ErrInvalidStatus is returned when an update requests a status value
	// that cannot be set through the update endpoint.
	ErrInvalidStatus = errors.New("status cannot be changed to that value here")
)
