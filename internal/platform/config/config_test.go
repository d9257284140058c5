package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "creditrisk/pkg/domain-errors"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"CREDIT_ADDR", "CREDIT_ARTIFACT_SOURCE", "CREDIT_ARTIFACT_DIR",
		"CREDIT_EVALUATE_TIMEOUT", "CREDIT_REDIS_URL", "CREDIT_POLICY_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ArtifactSourceFile, cfg.Artifacts.Source)
	assert.Equal(t, "./artifacts", cfg.Artifacts.Dir)
	assert.Equal(t, "credit_risk_model.json", cfg.Artifacts.ClassifierName)
	assert.Equal(t, "sex_encoder.json", cfg.Artifacts.EncoderName)
	assert.Equal(t, 2*time.Second, cfg.EvaluateTimeout)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CREDIT_ADDR", ":9090")
	t.Setenv("CREDIT_ARTIFACT_SOURCE", "REDIS")
	t.Setenv("CREDIT_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CREDIT_EVALUATE_TIMEOUT", "500ms")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, ArtifactSourceRedis, cfg.Artifacts.Source)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 500*time.Millisecond, cfg.EvaluateTimeout)
}

func TestFromEnv_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("CREDIT_EVALUATE_TIMEOUT", "soon")
	assert.Equal(t, 2*time.Second, FromEnv().EvaluateTimeout)
}

func TestParsePolicy(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		policy, scale, err := ParsePolicy([]byte(""))
		require.NoError(t, err)

		got, err := policy.Compute(3, 25)
		require.NoError(t, err)
		assert.Equal(t, 100_000.0, got.Ceiling)
		assert.Equal(t, 850.0, scale.Max)
		assert.Equal(t, 550.0, scale.Span)
	})

	t.Run("overrides tiers and age rule", func(t *testing.T) {
		doc := []byte(`
tiers:
  - job_levels: [0, 1, 2]
    ceiling: 20000
  - job_levels: [3]
    ceiling: 80000
age_override:
  below_age: 25
  factor: 0.25
`)
		policy, _, err := ParsePolicy(doc)
		require.NoError(t, err)

		got, err := policy.Compute(2, 30)
		require.NoError(t, err)
		assert.Equal(t, 20_000.0, got.Ceiling)

		got, err = policy.Compute(3, 24)
		require.NoError(t, err)
		assert.Equal(t, 20_000.0, got.Ceiling)
		assert.True(t, got.AgeOverrideApplied)
	})

	t.Run("factor only keeps the default age threshold", func(t *testing.T) {
		policy, _, err := ParsePolicy([]byte("age_override:\n  factor: 0.25\n"))
		require.NoError(t, err)
		assert.Equal(t, 21, policy.AgeOverride.BelowAge)

		got, err := policy.Compute(3, 19)
		require.NoError(t, err)
		assert.Equal(t, 25_000.0, got.Ceiling)
		assert.True(t, got.AgeOverrideApplied)
	})

	t.Run("max only keeps the default span", func(t *testing.T) {
		_, scale, err := ParsePolicy([]byte("score:\n  max: 900\n"))
		require.NoError(t, err)
		assert.Equal(t, 900.0, scale.Max)
		assert.Equal(t, 550.0, scale.Span)
	})

	t.Run("tier without job levels is rejected", func(t *testing.T) {
		doc := []byte(`
tiers:
  - ceiling: 20000
  - job_levels: [0, 1, 2, 3]
    ceiling: 50000
`)
		_, _, err := ParsePolicy(doc)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("invalid factor is rejected", func(t *testing.T) {
		_, _, err := ParsePolicy([]byte("age_override:\n  below_age: 21\n  factor: 3\n"))
		assert.Error(t, err)
	})

	t.Run("invalid score span is rejected", func(t *testing.T) {
		_, _, err := ParsePolicy([]byte("score:\n  max: 850\n  span: 0\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, _, err := ParsePolicy([]byte("tiers: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoadPolicy(t *testing.T) {
	t.Run("no path returns defaults", func(t *testing.T) {
		_, scale, err := LoadPolicy("")
		require.NoError(t, err)
		assert.Equal(t, 850.0, scale.Max)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("score:\n  max: 900\n  span: 600\n"), 0o600))

		_, scale, err := LoadPolicy(path)
		require.NoError(t, err)
		assert.Equal(t, 900.0, scale.Max)
		assert.Equal(t, 600.0, scale.Span)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
