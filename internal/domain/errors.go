package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrRecordNotFound  = errors.New("record not found")
	ErrItemNotCached   = errors.New("item not cached")
	ErrNoStoredCookies = errors.New("no stored cookies")
	ErrSecretNotFound  = errors.New("secret not found")
)
