package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-port-ops/internal/config"
)

const keyringServiceName = "go-port-ops"

// Keyring backend modes accepted by config.Keyring.Backend.
const (
	KeyringBackendAuto   = "auto"
	KeyringBackendSystem = "system"
	KeyringBackendFile   = "file"
)

// openKeyring opens the keyring; replaced in tests with an in-memory ring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

var stdinHasTTY = func() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type keyringTokenStorage struct {
	ring keyring.Keyring
}

// NewKeyringTokenStorage returns a [TokenStorage] kept in the OS keychain or,
// where no native keychain exists, in an encrypted file.
func NewKeyringTokenStorage(cfg config.Keyring) (TokenStorage, error) {
	ring, err := openKeyring(keyringConfig(cfg, runtime.GOOS, os.Getenv("DBUS_SESSION_BUS_ADDRESS")))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyringUnavailable, err)
	}

	return &keyringTokenStorage{ring: ring}, nil
}

func (k *keyringTokenStorage) Load(_ context.Context) (string, error) {
	item, err := k.ring.Get(TokenKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("error reading token from keyring: %w", err)
	}

	return string(item.Data), nil
}

func (k *keyringTokenStorage) Save(_ context.Context, token string) error {
	err := k.ring.Set(keyring.Item{
		Key:   TokenKey,
		Data:  []byte(token),
		Label: keyringServiceName + " session token",
	})
	if err != nil {
		return fmt.Errorf("error writing token to keyring: %w", err)
	}

	return nil
}

func (k *keyringTokenStorage) Delete(_ context.Context) error {
	err := k.ring.Remove(TokenKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing token from keyring: %w", err)
	}

	return nil
}

func keyringConfig(cfg config.Keyring, goos, dbusAddr string) keyring.Config {
	kc := keyring.Config{
		ServiceName: keyringServiceName,
	}

	backend := keyringBackendMode(cfg.Backend)
	if backend == KeyringBackendSystem {
		return kc
	}

	// file details are set in auto mode too so keyring.Open can fall
	// through to the encrypted file when no native backend is present.
	kc.FileDir = cfg.Dir
	kc.FilePasswordFunc = keyringFilePassword(cfg.Password)

	// headless Linux has no secret service
	if backend == KeyringBackendFile || (goos == "linux" && strings.TrimSpace(dbusAddr) == "") {
		kc.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}

	return kc
}

func keyringBackendMode(backend string) string {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case KeyringBackendFile:
		return KeyringBackendFile
	case KeyringBackendSystem, "os", "native":
		return KeyringBackendSystem
	default:
		return KeyringBackendAuto
	}
}

func keyringFilePassword(password string) keyring.PromptFunc {
	return func(prompt string) (string, error) {
		if password != "" {
			return password, nil
		}
		if !stdinHasTTY() {
			return "", errors.New("set STORAGE_KEYRING_PASSWORD when using file keyring in non-interactive environments")
		}
		return keyring.TerminalPrompt(prompt)
	}
}
