package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if the caller is not the owner, admin or
	// borrower the operation requires
	ErrUnauthorized = errors.New("unauthorized")

	// state machine precondition violations
	ErrAlreadyAccepted   = errors.New("offer already accepted")
	ErrOfferNotAvailable = errors.New("offer not available")
	ErrNotBorrowed       = errors.New("offer not borrowed")

	// attached value does not satisfy the operation's contract
	ErrFundsMismatch         = errors.New("attached funds mismatch")
	ErrInsufficientRepayment = errors.New("insufficient repayment")
	ErrInsufficientFunds     = errors.New("insufficient funds")

	// ErrInvalidAddress is a request error
	ErrInvalidAddress = errors.New("Invalid address")
)
