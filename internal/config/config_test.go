package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
frontend:
  contact_endpoint: https://script.google.com/macros/s/abc/exec
  phrases: ["Gopher", "Gardener"]
  breakpoint: 900
  submit_timeout: 3s
log:
  level: debug
`), 0o600))

	t.Chdir(dir)
	t.Setenv("PORT", "9100")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "9100", cfg.Server.Port)
	require.Equal(t, "hunter2", cfg.Admin.Password)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []string{"Gopher", "Gardener"}, cfg.Frontend.Phrases)
	require.Equal(t, 900.0, cfg.Frontend.Breakpoint)
	require.Equal(t, 3*time.Second, cfg.Frontend.SubmitTimeout.Std())
	require.Equal(t, "templates/*", cfg.Server.TemplateGlob)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("CONTACT_ENDPOINT=https://example.com/exec\n"), 0o600,
	))
	t.Chdir(dir)

	// godotenv never overrides variables already set, so make sure the
	// key is unset first and restored afterwards.
	t.Setenv("CONTACT_ENDPOINT", "")
	require.NoError(t, os.Unsetenv("CONTACT_ENDPOINT"))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/exec", cfg.Frontend.ContactEndpoint)
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontend:\n  phrases: []\n"), 0o600))
	_, err = Load(path)
	require.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("frontend:\n  submit_timeout: soon\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestFrontendValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Frontend)
	}{
		{"empty phrase", func(f *Frontend) { f.Phrases = []string{"a", ""} }},
		{"zero breakpoint", func(f *Frontend) { f.Breakpoint = 0 }},
		{"zero timeout", func(f *Frontend) { f.SubmitTimeout = 0 }},
		{"no endpoint", func(f *Frontend) { f.ContactEndpoint = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := DefaultFrontend()
			tc.mutate(&f)
			require.ErrorIs(t, f.Validate(), ErrInvalid)
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	f := DefaultFrontend()

	got, err := f.ResolveEndpoint("http://localhost:8080/#about")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/sheet/exec", got)

	f.ContactEndpoint = "https://script.google.com/macros/s/abc/exec"
	got, err = f.ResolveEndpoint("http://localhost:8080/")
	require.NoError(t, err)
	require.Equal(t, f.ContactEndpoint, got)
}

func TestFrontendJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(DefaultFrontend())
	require.NoError(t, err)
	require.Contains(t, string(data), `"submit_timeout":"15s"`)

	var f Frontend
	require.NoError(t, json.Unmarshal(data, &f))
	require.Equal(t, DefaultFrontend(), f)
}

func TestParseFrontend(t *testing.T) {
	f, err := ParseFrontend([]byte(`{"phrases":["Gopher"],"breakpoint":768}`))
	require.NoError(t, err)
	require.Equal(t, []string{"Gopher"}, f.Phrases)
	require.Equal(t, 768.0, f.Breakpoint)
	require.Equal(t, DefaultFrontend().ContactEndpoint, f.ContactEndpoint)

	f, err = ParseFrontend(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultFrontend(), f)

	_, err = ParseFrontend([]byte(`{"phrases":[]}`))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseFrontend([]byte(`{`))
	require.ErrorIs(t, err, ErrInvalid)
}
