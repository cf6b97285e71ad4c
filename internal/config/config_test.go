package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "classifier.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "store: sqlite\nlog_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, 3, cfg.Precision)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "store: sqlite\n")
	t.Setenv("CLASSIFIER_CONFIG", path)
	t.Setenv("CLASSIFIER_STORE", StoreSQLite3)
	t.Setenv("CLASSIFIER_PRECISION", "6")

	cfg, err := Load("ignored.yaml")
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite3, cfg.Store)
	assert.Equal(t, 6, cfg.Precision)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "store: postgres\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "precision: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "store: [\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
