package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked or expired")
	ErrAccountInactive     = errors.New("account is not active")
)
