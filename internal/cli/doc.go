// Package cli implements portctl, the command line client of the port
// operations API.
//
// Every command run builds one [client.App] from the layered configuration,
// so the token written by `portctl login` is picked up by later runs through
// the configured token store. Output is either a table or JSON optionally
// filtered with a jq expression.
package cli
