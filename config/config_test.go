package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_SetsSecretKeyPath(t *testing.T) {
	cfg := Default()
	require.Equal(t, defaultSecretEncryptionKeyPath, cfg.SecretEncryptionKeyPath)
	require.Empty(t, cfg.CAS.Address)
}

func TestDefault_AppliesOptions(t *testing.T) {
	cfg := Default(
		WithCAS(CASConfig{Address: "s3://bucket"}),
		WithNATS(NATSConfig{URL: "nats://localhost:4222"}),
		WithSecretEncryptionKeyPath("/tmp/key"),
	)
	require.Equal(t, "s3://bucket", cfg.CAS.Address)
	require.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	require.Equal(t, "/tmp/key", cfg.SecretEncryptionKeyPath)
}

func TestLoad_ParsesJSONWithComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.jsonc")
	contents := `{
  // CAS backend connection
  "cas": { "address": "s3://bucket", "maxBlobBytes": 1048576 },
  "nats": { "url": "nats://localhost:4222" },
  "secretEncryptionKeyPath": "/run/wsgraph/dev.key",
}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "s3://bucket", cfg.CAS.Address)
	require.Equal(t, int64(1048576), cfg.CAS.MaxBlobBytes)
	require.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	require.Equal(t, "/run/wsgraph/dev.key", cfg.SecretEncryptionKeyPath)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)
}
