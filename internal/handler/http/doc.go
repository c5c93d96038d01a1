// Package http implements the REST surface of the stub port-operations API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging and
// response compression are handled in this package before requests are
// delegated to the in-memory backend.
package http
