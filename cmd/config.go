package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gooze.dev/pkg/mutforge/internal/adapter"
	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutforge"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName       = "output"
	verboseFlagName      = "verbose"
	projectFlagName      = "project"
	percentageFlagName   = "percentage"
	maxMutationsFlagName = "max-mutations"
	seedFlagName         = "seed"
	workersFlagName      = "workers"
	taskTimeoutFlagName  = "task-timeout"
	checkoutDirFlagName  = "checkout-dir"
	skipCheckoutFlagName = "skip-checkout"
	logFlagName          = "log"
	planFlagName         = "plan"

	percentageKey   = "generate.percentage"
	maxMutationsKey = "generate.max_mutations"
	seedKey         = "generate.seed"

	workersKey      = "run.workers"
	taskTimeoutKey  = "run.task_timeout"
	checkoutDirKey  = "run.checkout_dir"
	skipCheckoutKey = "run.skip_checkout"
	coverageKey     = "run.coverage"

	oracleExecutableKey = "oracle.executable"
	oracleArgsKey       = "oracle.args"
	oracleTimeoutKey    = "oracle.timeout"
	oracleTimeoutsKey   = "oracle.timeouts"
	oracleKillGraceKey  = "oracle.kill_grace"

	workspaceRootKey     = "workspace.root"
	workspaceExcludesKey = "workspace.excludes"
	sourceRootsKey       = "source.roots"
	sourceExtensionKey   = "source.extension"
	spillDirKey          = "spill.dir"
	projectsKey          = "projects"

	defaultReportsDir   = ".mutforge-reports"
	defaultPercentage   = 50.0
	defaultSeed         = 42
	defaultTaskTimeout  = "20m"
	defaultCoverage     = true
	defaultOracleTime   = "720s"
	defaultKillGrace    = "5s"
	defaultCheckoutBase = "mutated_codes"
	maxDefaultWorkers   = 10

	envPrefix = "MUTFORGE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutforge.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultProjects mirrors the bug list shipped with the generator; extend it
// through projects.<Project>.bugs in mutforge.yaml.
var defaultProjects = map[string][]string{
	"Math": {"1", "2"},
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)

	viper.SetDefault(percentageKey, defaultPercentage)
	viper.SetDefault(maxMutationsKey, domain.MaxMutationsPerCombination)
	viper.SetDefault(seedKey, defaultSeed)

	viper.SetDefault(workersKey, defaultWorkers())
	viper.SetDefault(taskTimeoutKey, defaultTaskTimeout)
	viper.SetDefault(checkoutDirKey, filepath.Join(os.TempDir(), defaultCheckoutBase))
	viper.SetDefault(skipCheckoutKey, false)
	viper.SetDefault(coverageKey, defaultCoverage)

	oracleDefaults := adapter.DefaultOracleConfig()
	viper.SetDefault(oracleExecutableKey, defaultOracleExecutable())
	viper.SetDefault(oracleTimeoutKey, defaultOracleTime)
	viper.SetDefault(oracleKillGraceKey, defaultKillGrace)

	for mode, args := range oracleDefaults.Args {
		viper.SetDefault(oracleArgsKey+"."+string(mode), args)
	}

	viper.SetDefault(workspaceRootKey, filepath.Join(os.TempDir(), defaultCheckoutBase))
	viper.SetDefault(workspaceExcludesKey, domain.DefaultCloneExcludes)
	viper.SetDefault(sourceRootsKey, domain.DefaultSourceRoots)
	viper.SetDefault(sourceExtensionKey, domain.DefaultSourceExtension)
	viper.SetDefault(spillDirKey, "")

	for project, bugs := range defaultProjects {
		viper.SetDefault(projectsKey+"."+project+".bugs", bugs)
	}

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func defaultWorkers() int {
	return min(maxDefaultWorkers, runtime.NumCPU())
}

func defaultOracleExecutable() string {
	if runtime.GOOS == "windows" {
		return "defects4j.bat"
	}

	return "defects4j"
}

// oracleConfig builds the oracle command line from oracle.* keys.
func oracleConfig() adapter.OracleConfig {
	cfg := adapter.DefaultOracleConfig()
	cfg.Executable = viper.GetString(oracleExecutableKey)
	cfg.DefaultTimeout = durationSetting(oracleTimeoutKey)
	cfg.KillGrace = durationSetting(oracleKillGraceKey)

	for _, mode := range []m.OracleMode{
		m.OracleCheckout,
		m.OracleCompile,
		m.OracleMutation,
		m.OracleTest,
		m.OracleCoverage,
		m.OracleInfo,
	} {
		if args := viper.GetStringSlice(oracleArgsKey + "." + string(mode)); len(args) > 0 {
			cfg.Args[mode] = args
		}

		if timeout := durationSetting(oracleTimeoutsKey + "." + string(mode)); timeout > 0 {
			cfg.Timeouts[mode] = timeout
		}
	}

	return cfg
}

func isolationConfig() domain.IsolationConfig {
	return domain.IsolationConfig{
		Root:      m.Path(viper.GetString(workspaceRootKey)),
		Excludes:  viper.GetStringSlice(workspaceExcludesKey),
		KillGrace: durationSetting(oracleKillGraceKey),
	}
}

// configuredBugs returns projects.<project>.bugs.
func configuredBugs(project string) []string {
	return viper.GetStringSlice(projectsKey + "." + project + ".bugs")
}

func taskTimeout() (time.Duration, error) {
	return parseDurationSetting(viper.GetString(taskTimeoutKey))
}

// parseDurationSetting reads a Go duration ("20m", "90s"); a bare number
// is taken as seconds.
func parseDurationSetting(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	var d time.Duration

	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		d = time.Duration(secs * float64(time.Second))
	} else {
		d, err = time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", value, err)
		}
	}

	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}

	return d, nil
}

// durationSetting is parseDurationSetting for config-only keys, which fall
// back to zero on bad input.
func durationSetting(key string) time.Duration {
	d, err := parseDurationSetting(viper.GetString(key))
	if err != nil {
		slog.Warn("ignoring invalid duration setting", "key", key, "error", err)
		return 0
	}

	return d
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
