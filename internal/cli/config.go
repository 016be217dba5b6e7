package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "hillclimb"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "HILLCLIMB"

	formatFlagName        = "format"
	strategyFlagName      = "strategy"
	workersFlagName       = "workers"
	maxClimbFlagName      = "max-climb"
	maxExpansionsFlagName = "max-expansions"
	verifyFlagName        = "verify"
	logFileFlagName       = "log-file"
	verboseFlagName       = "verbose"
	addrFlagName          = "addr"
	timeoutFlagName       = "timeout"

	formatKey        = "output.format"
	strategyKey      = "search.strategy"
	workersKey       = "search.workers"
	maxClimbKey      = "search.max_climb"
	maxExpansionsKey = "search.max_expansions"
	verifyKey        = "search.verify"
	serverAddrKey    = "server.addr"
	serverTimeoutKey = "server.timeout"
	serverMaxBodyKey = "server.max_body_bytes"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultFormat        = "table"
	defaultStrategy      = "independent"
	defaultMaxClimb      = 1
	defaultMaxExpansions = 0
	defaultVerify        = false
	defaultServerAddr    = ":8080"
	defaultServerTimeout = 10 // seconds
	defaultServerMaxBody = 1 << 20

	defaultLogFilename   = ".hillclimb.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultWorkers = runtime.NumCPU()

// configErr holds a config file that exists but could not be read.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(formatKey, defaultFormat)
	viper.SetDefault(strategyKey, defaultStrategy)
	viper.SetDefault(workersKey, defaultWorkers)
	viper.SetDefault(maxClimbKey, defaultMaxClimb)
	viper.SetDefault(maxExpansionsKey, defaultMaxExpansions)
	viper.SetDefault(verifyKey, defaultVerify)
	viper.SetDefault(serverAddrKey, defaultServerAddr)
	viper.SetDefault(serverTimeoutKey, defaultServerTimeout)
	viper.SetDefault(serverMaxBodyKey, defaultServerMaxBody)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}
		configErr = err
	}
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs a slog text logger writing to a rotating file.
//
// It logs at the configured level, or at Debug when verbose is set.
func configureLogger(logPath string, verbose bool) *slog.Logger {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     logLevel,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
