package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "mutforge", configBaseName)
	assert.Equal(t, "mutforge.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "run.workers", workersKey)
	assert.Equal(t, "generate.percentage", percentageKey)
	assert.Equal(t, ".mutforge-reports", defaultReportsDir)
	assert.Equal(t, "MUTFORGE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, 50.0, viper.GetFloat64(percentageKey))
	assert.Equal(t, domain.MaxMutationsPerCombination, viper.GetInt(maxMutationsKey))
	assert.Equal(t, int64(42), viper.GetInt64(seedKey))
	timeout, err := taskTimeout()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Minute, timeout)
	assert.True(t, viper.GetBool(coverageKey))
	assert.Equal(t, []string{"1", "2"}, configuredBugs("Math"))
	assert.Empty(t, configuredBugs("Unknown"))
	assert.LessOrEqual(t, defaultWorkers(), maxDefaultWorkers)
	assert.GreaterOrEqual(t, defaultWorkers(), 1)
}

func TestOracleConfig(t *testing.T) {
	cfg := oracleConfig()

	assert.Equal(t, defaultOracleExecutable(), cfg.Executable)
	assert.Equal(t, 720*time.Second, cfg.DefaultTimeout)
	assert.Equal(t, 5*time.Second, cfg.KillGrace)
	assert.NotEmpty(t, cfg.Args[m.OracleCheckout])
	assert.NotEmpty(t, cfg.Args[m.OracleInfo])
}

func TestOracleConfig_ModeOverrides(t *testing.T) {
	viper.Set(oracleTimeoutsKey+".test", "3m")
	viper.Set(oracleArgsKey+".info", []string{"info", "-p", "{project}", "-x"})
	t.Cleanup(func() {
		viper.Set(oracleTimeoutsKey+".test", nil)
		viper.Set(oracleArgsKey+".info", nil)
	})

	cfg := oracleConfig()

	assert.Equal(t, 3*time.Minute, cfg.Timeouts[m.OracleTest])
	assert.Equal(t, []string{"info", "-p", "{project}", "-x"}, cfg.Args[m.OracleInfo])
}

func TestParseDurationSetting(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "20m", want: 20 * time.Minute},
		{value: "90s", want: 90 * time.Second},
		{value: "1200", want: 1200 * time.Second},
		{value: " 1.5 ", want: 1500 * time.Millisecond},
		{value: "0", want: 0},
		{value: "", want: 0},
		{value: "soon", wantErr: true},
		{value: "-5", wantErr: true},
		{value: "-1m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseDurationSetting(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOracleConfig_PlainSecondsTimeout(t *testing.T) {
	viper.Set(oracleTimeoutKey, 720)
	t.Cleanup(func() { viper.Set(oracleTimeoutKey, nil) })

	assert.Equal(t, 720*time.Second, oracleConfig().DefaultTimeout)
}

func TestIsolationConfig(t *testing.T) {
	cfg := isolationConfig()

	assert.NotEmpty(t, cfg.Root)
	assert.Equal(t, domain.DefaultCloneExcludes, cfg.Excludes)
	assert.Equal(t, 5*time.Second, cfg.KillGrace)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "mutforge.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
