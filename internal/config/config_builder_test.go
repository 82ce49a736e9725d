package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func testBuilder() *configBuilder {
	b := newConfigBuilder()
	b.args = nil
	return b
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/recipes"}},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder_FailsValidation(t *testing.T) {
	cfg, err := testBuilder().build()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.Nil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := testBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	def := defaults()
	assert.Equal(t, def.App.TokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, def.App.TokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, def.App.DefaultLocale, cfg.App.DefaultLocale)
	assert.Equal(t, def.App.SupportedLocales, cfg.App.SupportedLocales)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, def.Server.HTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, def.Adapter.AI.Model, cfg.Adapter.AI.Model)
	assert.Equal(t, def.Workers.TranslationBatchSize, cfg.Workers.TranslationBatchSize)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_LaterConfigWins(t *testing.T) {
	b := testBuilder()
	first := validConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "first"
	second := &StructuredConfig{App: App{TokenIssuer: "second"}}
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{
			name:   "unsupported default locale",
			mutate: func(cfg *StructuredConfig) { cfg.App.DefaultLocale = "fr" },
			want:   ErrInvalidAppConfigs,
		},
		{
			name:   "unknown log level",
			mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			want:   ErrInvalidAppConfigs,
		},
		{
			name:   "missing dsn",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "unknown driver",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "negative batch size",
			mutate: func(cfg *StructuredConfig) { cfg.Workers.TranslationBatchSize = -1 },
			want:   ErrInvalidWorkerConfigs,
		},
		{
			name:   "negative burst",
			mutate: func(cfg *StructuredConfig) { cfg.RateLimit.ParseBurst = -1 },
			want:   ErrInvalidRateLimitConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			b := testBuilder()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "7s")

	b := testBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 7*time.Second, b.configs[0].Server.RequestTimeout)
}

func TestWithEnv_SetsError_WhenInvalid(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "later")

	b := testBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := testBuilder()
	b.args = []string{"-token-issuer", "from-flags"}

	b = b.withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-flags", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_SetsError_WhenInvalid(t *testing.T) {
	b := testBuilder()
	b.args = []string{"-a", "bad"}

	b = b.withFlags()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PrependsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[0].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b = b.withJSON()
	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[0].App.Version)
}

func TestBuild_EnvOverridesJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "json-secret", "version": "json"},
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json/db"}},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("APP_VERSION", "env")

	cfg, err := testBuilder().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
}
