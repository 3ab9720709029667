package auth

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/99designs/keyring"
	"golang.org/x/term"

	"github.com/joe-butler-23/todoist-cli/internal/config"
)

// Store persists the API token outside the process.
type Store interface {
	SetToken(token string) error
	GetToken() (string, error)
	DeleteToken() error
}

type KeyringStore struct {
	ring keyring.Keyring
}

const (
	keyringPasswordEnv = "TODOIST_KEYRING_PASSWORD" //nolint:gosec // env var name
	keyringBackendEnv  = "TODOIST_KEYRING_BACKEND"  //nolint:gosec // env var name

	tokenKey = "api-token"

	keyringOpenTimeout = 5 * time.Second
)

var (
	errNoTTY          = errors.New("no TTY available for keyring password prompt")
	errInvalidBackend = errors.New("invalid keyring backend")
	errKeyringTimeout = errors.New("keyring connection timed out")
	errMissingToken   = errors.New("missing token")

	openKeyringFunc = openKeyring
	keyringOpenFunc = keyring.Open
)

// Singleton store to avoid multiple keychain prompts per process.
var (
	defaultStore     Store
	defaultStoreOnce sync.Once
	defaultStoreErr  error
)

func openKeyring() (keyring.Keyring, error) {
	keyringDir, err := config.EnsureKeyringDir()
	if err != nil {
		return nil, fmt.Errorf("ensure keyring dir: %w", err)
	}

	backend := normalizeBackend(os.Getenv(keyringBackendEnv))

	backends, err := allowedBackends(backend)
	if err != nil {
		return nil, err
	}

	dbusAddr := os.Getenv("DBUS_SESSION_BUS_ADDRESS")
	if shouldForceFileBackend(runtime.GOOS, backend, dbusAddr) {
		backends = []keyring.BackendType{keyring.FileBackend}
	}

	cfg := keyring.Config{
		ServiceName:              config.AppName,
		KeychainTrustApplication: false,
		AllowedBackends:          backends,
		FileDir:                  keyringDir,
		FilePasswordFunc:         fileKeyringPasswordFunc(),
	}

	if shouldUseTimeout(runtime.GOOS, backend, dbusAddr) {
		return openKeyringWithTimeout(cfg, keyringOpenTimeout)
	}

	ring, err := keyringOpenFunc(cfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}

	return ring, nil
}

func normalizeBackend(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func allowedBackends(backend string) ([]keyring.BackendType, error) {
	switch backend {
	case "", "auto":
		return nil, nil
	case "keychain":
		return []keyring.BackendType{keyring.KeychainBackend}, nil
	case "file":
		return []keyring.BackendType{keyring.FileBackend}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errInvalidBackend, backend)
	}
}

// Headless linux sessions without a session bus would hang on the dbus
// backends, so fall back to the file backend there.
func shouldForceFileBackend(goos, backend, dbusAddr string) bool {
	return goos == "linux" && (backend == "" || backend == "auto") && dbusAddr == ""
}

func shouldUseTimeout(goos, backend, dbusAddr string) bool {
	return goos == "linux" && (backend == "" || backend == "auto") && dbusAddr != ""
}

func fileKeyringPasswordFunc() keyring.PromptFunc {
	password := os.Getenv(keyringPasswordEnv)
	if password != "" {
		return keyring.FixedStringPrompt(password)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return keyring.TerminalPrompt
	}

	return func(_ string) (string, error) {
		return "", fmt.Errorf("%w; set %s", errNoTTY, keyringPasswordEnv)
	}
}

type keyringResult struct {
	ring keyring.Keyring
	err  error
}

func openKeyringWithTimeout(cfg keyring.Config, timeout time.Duration) (keyring.Keyring, error) {
	ch := make(chan keyringResult, 1)

	go func() {
		ring, err := keyringOpenFunc(cfg)
		ch <- keyringResult{ring, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("open keyring: %w", res.err)
		}

		return res.ring, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("%w after %v; set %s=file and %s=<password>",
			errKeyringTimeout, timeout, keyringBackendEnv, keyringPasswordEnv)
	}
}

func OpenDefault() (Store, error) {
	defaultStoreOnce.Do(func() {
		ring, err := openKeyringFunc()
		if err != nil {
			defaultStoreErr = err
			return
		}
		defaultStore = &KeyringStore{ring: ring}
	})

	return defaultStore, defaultStoreErr
}

// ResetDefaultStore resets the singleton store for testing.
func ResetDefaultStore() {
	defaultStoreOnce = sync.Once{}
	defaultStore = nil
	defaultStoreErr = nil
}

func (s *KeyringStore) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errMissingToken
	}

	if err := s.ring.Set(keyring.Item{
		Key:  tokenKey,
		Data: []byte(token),
	}); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	return nil
}

func (s *KeyringStore) GetToken() (string, error) {
	item, err := s.ring.Get(tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNoToken
		}

		return "", fmt.Errorf("read token: %w", err)
	}

	return string(item.Data), nil
}

func (s *KeyringStore) DeleteToken() error {
	if err := s.ring.Remove(tokenKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}
