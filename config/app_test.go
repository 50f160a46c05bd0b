package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/feedrank/model"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DefaultPostCount, cfg.Feed.PostCount)
	assert.Equal(t, model.DefaultPriorityOrder, cfg.Feed.PriorityOrder)
	assert.Equal(t, model.DefaultHatefulCategories, cfg.Feed.HatefulCategories)
	assert.Equal(t, 100.0, cfg.Chart.Radius)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
server:
  port: "9000"
logging:
  level: debug
  format: console
feed:
  post_count: 3
  priority_order: [positive, sexist, hate speech]
  hateful_categories: [sexist]
classify:
  seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Feed.PostCount)
	assert.Equal(t, []model.Category{"positive", "sexist", "hate speech"}, cfg.Feed.PriorityOrder)
	assert.Equal(t, []model.Category{"sexist"}, cfg.Feed.HatefulCategories)
	assert.Equal(t, uint64(42), cfg.Classify.Seed)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feedrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0o644))

	t.Setenv("FEEDRANK_SERVER_PORT", "7000")
	t.Setenv("FEEDRANK_FEED_POST_COUNT", "4")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Feed.PostCount)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidFeedSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed:\n  priority_order: [positive, positive]\n"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate category 'positive'")
}
