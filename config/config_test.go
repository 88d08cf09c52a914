package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "INR", cfg.Currency)
	assert.Equal(t, 0.6, cfg.MinConfidence)
	assert.Equal(t, 0.7, cfg.ClarifySkipConfidence)
	assert.Equal(t, 10, cfg.CandidateLimit)
	assert.Equal(t, 0.2, cfg.RankRatingBand)
	assert.Equal(t, 5, cfg.RankReviewBand)
	assert.Equal(t, 20*time.Second, cfg.AITimeout())
	assert.Equal(t, []string{"127.0.0.1", "::1"}, cfg.TrustedProxyList())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CURRENCY", "USD")
	t.Setenv("RANK_REVIEW_BAND", "8")
	t.Setenv("AI_TIMEOUT_SECONDS", "5")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 8, cfg.RankReviewBand)
	assert.Equal(t, 5*time.Second, cfg.AITimeout())
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxyList())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
