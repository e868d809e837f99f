package domain

import "errors"

var (
	ErrNotAuthenticated    = errors.New("no authenticated user")
	ErrUserSuspended       = errors.New("user account is suspended")
	ErrShowNotFound        = errors.New("show not found")
	ErrNotConfirmed        = errors.New("seat count has not been confirmed yet")
	ErrAlreadyConfirmed    = errors.New("seat count is already confirmed")
	ErrSelectionFull       = errors.New("selection already holds the maximum number of seats")
	ErrSelectionIncomplete = errors.New("selection does not hold the confirmed number of seats")
	ErrSeatUnavailable     = errors.New("seat is booked or unavailable")
	ErrSeatAlreadySelected = errors.New("seat is already selected")
	ErrSeatNotSelected     = errors.New("seat is not selected")
	ErrInvalidSeatLabel    = errors.New("invalid seat label")
	ErrInvalidSeatCount    = errors.New("seat count is out of range")
	ErrSeatOutOfBounds     = errors.New("seat label is outside the seat grid")
	ErrPaymentInProgress   = errors.New("a payment link is already being created")
	ErrNoPendingPayment    = errors.New("no pending payment link")
	ErrLoginRequired       = errors.New("login required")
)
