// Package client builds one configured portctl runtime.
//
// [NewApp] opens the token store named by the configuration, binds a
// session to it, and layers the shared API client, the resource services
// and the login form on top. Each command run owns one [App] and closes it.
package client
