package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists         = errors.New("email already exists")
	ErrUserDoesNotExist           = errors.New("user does not exist")
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrInvalidOrExpiredResetToken = errors.New("invalid or expired reset token")
	ErrResetTokenDeliveryFailed   = errors.New("reset token delivery failed")
	ErrInvalidSessionToken        = errors.New("invalid session token")
	ErrSessionTokenExpired        = errors.New("session token expired")
)
