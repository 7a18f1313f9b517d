package auth

import "errors"

// ErrUserExists indicates a duplicate username.
var ErrUserExists = errors.New("user already exists")
