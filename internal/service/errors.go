package service

import "errors"

var (
	ErrValidation         = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account disabled")
)
