// Package stubapi is a port-operations backend. It keeps docks, ships and
// berthing requests in process memory, hashes passwords with bcrypt and
// issues HS256 session tokens.
//
// Accounts live in memory as well unless the backend is built with
// [WithPostgres]. Then they are kept in the "accounts" table, whose unique
// email index rejects duplicate registrations.
//
// It exists to serve the REST surface in internal/handler/http for local
// development and integration tests. It stores what it receives and enforces
// no port business rules.
package stubapi
