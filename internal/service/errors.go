package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidRole         = errors.New("invalid role")
	ErrNothingToUpdate     = errors.New("nothing to update")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
