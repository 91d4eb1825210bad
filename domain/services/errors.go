package services

import "errors"

var (
	// ErrEmailTaken is returned on registration when the email is
	// already present in the credential store.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)
