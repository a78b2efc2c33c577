package domain

import "errors"

var (
	ErrInvalidSlot    = errors.New("invalid slot id")
	ErrSecretNotFound = errors.New("secret not found")
)
