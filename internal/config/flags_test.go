package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 5001},
			expected: "localhost:5001",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:5001", want: NetAddress{Host: "localhost", Port: 5001}},
		{name: "ipv4", input: "0.0.0.0:80", want: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname other than localhost", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_ClientOnlyChangedFlags(t *testing.T) {
	// Arrange
	fs := pflag.NewFlagSet("portctl", pflag.ContinueOnError)
	RegisterClientFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--api-url", "https://ops.example.com/api",
		"--request-timeout", "5s",
		"--with-credentials=false",
		"--store", "keyring",
		"-c", "/etc/portctl.json",
	}))

	// Act
	cfg, err := parseFlags(fs)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://ops.example.com/api", cfg.Adapter.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	require.NotNil(t, cfg.Adapter.WithCredentials)
	assert.False(t, *cfg.Adapter.WithCredentials)
	assert.Equal(t, "keyring", cfg.Session.Store)
	assert.Equal(t, "/etc/portctl.json", cfg.JSONFilePath)

	// untouched flags leave their fields zero so that lower layers survive
	assert.Empty(t, cfg.Session.LoginRoute)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Redis.Addr)
}

func TestParseFlags_NothingSet(t *testing.T) {
	fs := pflag.NewFlagSet("portctl", pflag.ContinueOnError)
	RegisterClientFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := parseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Stub(t *testing.T) {
	fs := pflag.NewFlagSet("stubapi", pflag.ContinueOnError)
	RegisterStubFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-a", "127.0.0.1:5002",
		"--token-sign-key", "k",
		"--token-issuer", "iss",
		"--token-duration", "30m",
		"--postgres-dsn", "postgres://port:port@db:5432/port",
	}))

	cfg, err := parseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, "postgres://port:port@db:5432/port", cfg.Storage.Postgres.DSN)
	assert.Equal(t, "127.0.0.1:5002", cfg.Server.HTTPAddress)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
}

func TestRegisterStubFlags_RejectsBadAddress(t *testing.T) {
	fs := pflag.NewFlagSet("stubapi", pflag.ContinueOnError)
	RegisterStubFlags(fs)

	err := fs.Parse([]string{"-a", "nowhere"})

	assert.Error(t, err)
}
