package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the required role in the organization.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrConfiguration indicates a missing or invalid configuration value, such as
// an absent AI gateway credential. Fatal, non-retryable.
var ErrConfiguration = errors.New("configuration error")

// ErrRateLimited indicates the upstream AI gateway rejected the call with a
// rate-limit response.
var ErrRateLimited = errors.New("too many requests")

// ErrInsufficientCredits indicates the upstream AI gateway rejected the call
// because the account is out of credits.
var ErrInsufficientCredits = errors.New("insufficient credits")
