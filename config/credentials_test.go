package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		secret string
		want   Credentials
	}{
		{"both set", "k", "s", APICredentials{APIKey: "k", SecretKey: "s"}},
		{"missing secret", "k", "", NoCredentials{}},
		{"missing key", "", "s", NoCredentials{}},
		{"neither", "", "", NoCredentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BITUNIX_API_KEY", tt.key)
			t.Setenv("BITUNIX_SECRET_KEY", tt.secret)

			got, err := credentialsFromEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCredentialsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("BITUNIX_API_KEY=from-file\nBITUNIX_SECRET_KEY=file-secret\n"), 0600))

	t.Chdir(dir)

	// Set then clear so t.Setenv restores the original values afterwards.
	t.Setenv("BITUNIX_API_KEY", "")
	t.Setenv("BITUNIX_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("BITUNIX_API_KEY"))
	require.NoError(t, os.Unsetenv("BITUNIX_SECRET_KEY"))

	got, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, APICredentials{APIKey: "from-file", SecretKey: "file-secret"}, got)
}

func TestLoadCredentialsWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("BITUNIX_API_KEY", "env-key")
	t.Setenv("BITUNIX_SECRET_KEY", "env-secret")

	got, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, APICredentials{APIKey: "env-key", SecretKey: "env-secret"}, got)
}
