// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// stub API handlers and the portctl command line.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, log entries or terminal output to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the API.
package app

// Messages written by the stub API into {"message": ...} response bodies.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgNotFound is returned when a read, update, or delete operation
	// targets a document that does not exist.
	MsgNotFound = "not found"

	// MsgWrongPassword is returned by change-password when the current
	// password does not match.
	MsgWrongPassword = "current password is wrong"

	// MsgResetTokenInvalid is returned by reset-password for an unknown or
	// already used reset token.
	MsgResetTokenInvalid = "reset token is invalid or already used"

	// MsgInvalidBerthingStatus is returned when a status update names an
	// unknown berthing status.
	MsgInvalidBerthingStatus = "invalid berthing status"

	// MsgResetLinkSent acknowledges forgot-password. It is sent whether or
	// not the email belongs to an account.
	MsgResetLinkSent = "if the email is registered, a reset link has been sent"

	// MsgPasswordReset acknowledges reset-password.
	MsgPasswordReset = "password has been reset"

	// MsgPasswordChanged acknowledges change-password.
	MsgPasswordChanged = "password changed"
)

// Messages printed by portctl for failures a user can act on.
const (
	// MsgSessionExpired is printed when the API rejected the stored token.
	MsgSessionExpired = "session expired, please log in again"

	// MsgNotLoggedIn is printed when a command needs a token and none is
	// stored.
	MsgNotLoggedIn = "not logged in, run `portctl login` first"

	// MsgAccessDenied is printed for 403 responses.
	MsgAccessDenied = "access denied"

	// MsgServerUnavailable is printed when the API cannot be reached.
	MsgServerUnavailable = "port API is unavailable, check --api-url"

	// MsgConflict is printed for 409 responses.
	MsgConflict = "the request conflicts with the current state"

	// MsgCredentialsRequired is printed when an email or password is blank.
	MsgCredentialsRequired = "email and password are required"

	// MsgPasswordsDoNotMatch is printed when a password confirmation differs.
	MsgPasswordsDoNotMatch = "passwords do not match"
)
