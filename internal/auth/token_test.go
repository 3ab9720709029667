package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func withSecretsDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	old := secretsDir
	secretsDir = dir

	t.Cleanup(func() { secretsDir = old })

	return dir
}

func withoutKeyring(t *testing.T) {
	t.Helper()

	old := keyringToken
	keyringToken = func() (string, error) { return "", ErrNoToken }

	t.Cleanup(func() { keyringToken = old })
}

func TestResolvePrefersEnv(t *testing.T) {
	dir := withSecretsDir(t)
	withoutKeyring(t)
	t.Setenv(EnvToken, "env-token")

	if err := os.WriteFile(filepath.Join(dir, "todoist_token"), []byte("file-token\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	resolved, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Token != "env-token" {
		t.Fatalf("expected env token, got %q", resolved.Token)
	}

	if resolved.Source != SourceEnv {
		t.Fatalf("expected env source, got %q", resolved.Source)
	}
}

func TestResolveLowercaseSecretFile(t *testing.T) {
	dir := withSecretsDir(t)
	withoutKeyring(t)
	t.Setenv(EnvToken, "")

	if err := os.WriteFile(filepath.Join(dir, "todoist_token"), []byte("  file-token\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	resolved, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Token != "file-token" {
		t.Fatalf("expected trimmed file token, got %q", resolved.Token)
	}

	if resolved.Source != SourceSecret {
		t.Fatalf("expected secret file source, got %q", resolved.Source)
	}

	if resolved.Path != filepath.Join(dir, "todoist_token") {
		t.Fatalf("unexpected path: %s", resolved.Path)
	}
}

func TestResolveUppercaseSecretFile(t *testing.T) {
	dir := withSecretsDir(t)
	withoutKeyring(t)
	t.Setenv(EnvToken, "")

	if err := os.WriteFile(filepath.Join(dir, "TODOIST_TOKEN"), []byte("upper-token"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	resolved, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Token != "upper-token" {
		t.Fatalf("expected uppercase file token, got %q", resolved.Token)
	}
}

func TestResolveLowercaseWinsOverUppercase(t *testing.T) {
	dir := withSecretsDir(t)
	withoutKeyring(t)
	t.Setenv(EnvToken, "")

	if err := os.WriteFile(filepath.Join(dir, "todoist_token"), []byte("lower"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "TODOIST_TOKEN"), []byte("upper"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	resolved, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Token != "lower" {
		t.Fatalf("expected lowercase file to win, got %q", resolved.Token)
	}
}

func TestResolveKeyringFallback(t *testing.T) {
	withSecretsDir(t)
	t.Setenv(EnvToken, "")

	old := keyringToken
	keyringToken = func() (string, error) { return "ring-token", nil }

	t.Cleanup(func() { keyringToken = old })

	resolved, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Token != "ring-token" {
		t.Fatalf("expected keyring token, got %q", resolved.Token)
	}

	if resolved.Source != SourceKeyring {
		t.Fatalf("expected keyring source, got %q", resolved.Source)
	}
}

func TestResolveNoSources(t *testing.T) {
	withSecretsDir(t)
	withoutKeyring(t)
	t.Setenv(EnvToken, "")

	_, err := Resolve()
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestResolveSkipsEmptySecretFile(t *testing.T) {
	dir := withSecretsDir(t)
	withoutKeyring(t)
	t.Setenv(EnvToken, "")

	if err := os.WriteFile(filepath.Join(dir, "todoist_token"), []byte("\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "TODOIST_TOKEN"), []byte("upper"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	resolved, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Token != "upper" {
		t.Fatalf("expected fallthrough to uppercase file, got %q", resolved.Token)
	}
}
