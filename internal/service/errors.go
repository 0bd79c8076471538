package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrListingNotFound        = errors.New("listing not found")
	ErrVisitNotConfirmable    = errors.New("visit not found or not confirmable")
	ErrVerificationNotFound   = errors.New("verification not found or already reviewed")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrPaymentProcessor       = errors.New("payment processor error")
)
