// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubapi

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field is missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmailAlreadyExists is returned by Register for a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrWrongCredentials is returned by Login for an unknown email or a
	// password mismatch. The two cases are not told apart.
	ErrWrongCredentials = errors.New("invalid email/password")

	// ErrWrongPassword is returned by ChangePassword when the current
	// password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any token that
	// fails verification.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrResetTokenInvalid is returned by ResetPassword for an unknown or
	// already used reset token.
	ErrResetTokenInvalid = errors.New("reset token is invalid")

	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus is returned by SetBerthingStatus for an unknown status.
	ErrInvalidStatus = errors.New("invalid berthing status")

	// ErrTokenCreationFailed wraps failures of the JWT signer.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
