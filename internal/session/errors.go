package session

import "errors"

// ErrEmptyToken is returned by [Session.Begin] when the login response carried
// no token.
var ErrEmptyToken = errors.New("empty session token")
