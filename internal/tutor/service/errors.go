package service

import "errors"

var (
	// ErrMissingCredentials reports an empty username or password after
	// trimming whitespace.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUsernameTaken reports a registration against an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password;
	// the two are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken reports a missing, unknown, or invalidated session token.
	ErrInvalidToken = errors.New("invalid or missing token")

	// ErrMissingQuery and ErrMissingSubject report empty chat inputs.
	ErrMissingQuery   = errors.New("query is required")
	ErrMissingSubject = errors.New("subject is required")
)
