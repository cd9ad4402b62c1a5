package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  log_level: debug
  cors_origins: ["https://example.org"]
lexicon:
  data_dir: /srv/katsuyo
drill:
  max_open_challenges: 10
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Equal(t, "/srv/katsuyo", cfg.Lexicon.DataDir)
	assert.Equal(t, 10, cfg.Drill.MaxOpenChallenges)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KATSUYO_SERVER_ADDR", ":7000")
	t.Setenv("KATSUYO_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("KATSUYO_LEXICON_DATA_DIR", "data")
	t.Setenv("KATSUYO_DRILL_MAX_OPEN_CHALLENGES", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "data", cfg.Lexicon.DataDir)
	assert.Equal(t, 3, cfg.Drill.MaxOpenChallenges)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("KATSUYO_SERVER_LOG_LEVEL", "loud")
	_, err = Load("")
	assert.Error(t, err)
}

func TestEnvOverrideNotAnInteger(t *testing.T) {
	t.Setenv("KATSUYO_DRILL_MAX_OPEN_CHALLENGES", "abc")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KATSUYO_DRILL_MAX_OPEN_CHALLENGES")
}
