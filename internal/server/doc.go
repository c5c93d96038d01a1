// Package server runs the stub port API over HTTP until a stop signal or a
// cancelled context, then shuts down gracefully.
package server
