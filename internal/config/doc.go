// Package config provides configuration loading, merging, and validation
// facilities for the portctl client and the stub API server.
//
// Configuration is assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags that were explicitly set
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for the API client and
// [GetStubConfig] for the stub server.
package config
