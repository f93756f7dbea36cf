package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrSessionCreationFailed   = errors.New("session token creation failed")
	ErrSessionExpiredOrInvalid = errors.New("session token is expired or invalid")
)
