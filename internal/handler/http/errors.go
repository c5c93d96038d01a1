// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header rejections. Each is answered with 401 and the error
// text as the message, so a client can tell a missing header from a bad one.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header, expected `Bearer <token>`")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)
