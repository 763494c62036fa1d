package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// marketplace errors, one per failure condition, never partially applied
	ErrInvalidParams         = errors.New("invalid params")
	ErrAuctionExists         = errors.New("auction already exists")
	ErrAuctionNotExists      = errors.New("auction not exists")
	ErrAuctionAlreadyStarted = errors.New("auction already started")
	ErrAuctionNotFinished    = errors.New("auction not finished")
	ErrAuctionFinished       = errors.New("auction finished")
	ErrSmallBidAmount        = errors.New("small bid amount")
	ErrEmptyWinner           = errors.New("empty winner")
	ErrNoRights              = errors.New("no rights")
	ErrPaused                = errors.New("marketplace paused")
	ErrNotAdmin              = errors.New("require admin privilege")
	ErrZeroAddress           = errors.New("zero address")
	ErrReentrantCall         = errors.New("reentrant call")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// signature auth errors
	ErrInvalidNonce     = errors.New("invalid nonce")
	ErrInvalidSignature = errors.New("invalid signature")
)
