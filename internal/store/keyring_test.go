package store

import (
	"context"
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-ops/internal/config"
)

// withMockKeyring swaps the keyring opener for the duration of a test.
func withMockKeyring(t *testing.T, ring keyring.Keyring, openErr error) *keyring.Config {
	t.Helper()
	var seen keyring.Config
	original := openKeyring
	openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
		seen = cfg
		return ring, openErr
	}
	t.Cleanup(func() { openKeyring = original })
	return &seen
}

func TestKeyringTokenStorage(t *testing.T) {
	ctx := context.Background()
	ring := keyring.NewArrayKeyring(nil)
	withMockKeyring(t, ring, nil)

	s, err := NewKeyringTokenStorage(config.Keyring{Backend: "auto"})
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, s.Save(ctx, "abc123"))

	item, err := ring.Get(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc123", string(item.Data))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, s.Delete(ctx))
	require.NoError(t, s.Delete(ctx))

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestNewKeyringTokenStorage_OpenError(t *testing.T) {
	withMockKeyring(t, nil, errors.New("no backend"))

	s, err := NewKeyringTokenStorage(config.Keyring{})

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrKeyringUnavailable)
}

func TestKeyringConfig(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Keyring
		goos         string
		dbus         string
		wantFileDir  string
		wantFileOnly bool
	}{
		{
			name: "system backend leaves file settings empty",
			cfg:  config.Keyring{Backend: "system", Dir: "/tmp/k"},
			goos: "linux",
		},
		{
			name:         "file backend forces file",
			cfg:          config.Keyring{Backend: "file", Dir: "/tmp/k"},
			goos:         "darwin",
			wantFileDir:  "/tmp/k",
			wantFileOnly: true,
		},
		{
			name:         "auto on headless linux forces file",
			cfg:          config.Keyring{Backend: "auto", Dir: "/tmp/k"},
			goos:         "linux",
			wantFileDir:  "/tmp/k",
			wantFileOnly: true,
		},
		{
			name:        "auto with a session bus keeps native backends",
			cfg:         config.Keyring{Backend: "auto", Dir: "/tmp/k"},
			goos:        "linux",
			dbus:        "unix:path=/run/user/1000/bus",
			wantFileDir: "/tmp/k",
		},
		{
			name:        "unknown backend behaves as auto",
			cfg:         config.Keyring{Backend: "bogus", Dir: "/tmp/k"},
			goos:        "darwin",
			wantFileDir: "/tmp/k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kc := keyringConfig(tt.cfg, tt.goos, tt.dbus)

			assert.Equal(t, keyringServiceName, kc.ServiceName)
			assert.Equal(t, tt.wantFileDir, kc.FileDir)
			if tt.wantFileOnly {
				assert.Equal(t, []keyring.BackendType{keyring.FileBackend}, kc.AllowedBackends)
			} else {
				assert.Empty(t, kc.AllowedBackends)
			}
		})
	}
}

func TestKeyringFilePassword(t *testing.T) {
	pw, err := keyringFilePassword("unlock")("prompt")
	require.NoError(t, err)
	assert.Equal(t, "unlock", pw)

	original := stdinHasTTY
	stdinHasTTY = func() bool { return false }
	t.Cleanup(func() { stdinHasTTY = original })

	_, err = keyringFilePassword("")("prompt")
	assert.Error(t, err)
}
