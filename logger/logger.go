package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/ranges/configuration"
	"github.com/iotaledger/ranges/ierrors"
)

// Logger is the underlying logger used by this package.
type Logger = zap.SugaredLogger

// ErrInvalidConfig is returned if a Config can not be turned into a logger.
var ErrInvalidConfig = ierrors.New("invalid logger config")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.WithMessagef(ErrInvalidConfig, "unknown level '%s': %w", cfg.Level, err)
	}

	stacktraceLevel := zapcore.PanicLevel
	if cfg.StacktraceLevel != "" {
		if err := stacktraceLevel.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
			return nil, ierrors.WithMessagef(ErrInvalidConfig, "unknown stacktrace level '%s': %w", cfg.StacktraceLevel, err)
		}
	}

	encoderConfig := defaultEncoderConfig
	if cfg.EncodingConfig.EncodeTime != "" {
		if err := encoderConfig.EncodeTime.UnmarshalText([]byte(cfg.EncodingConfig.EncodeTime)); err != nil {
			return nil, ierrors.WithMessagef(ErrInvalidConfig, "unknown time encoder '%s': %w", cfg.EncodingConfig.EncodeTime, err)
		}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}
	if zapCfg.Encoding == "" {
		zapCfg.Encoding = DefaultCfg.Encoding
	}
	if len(zapCfg.OutputPaths) == 0 {
		zapCfg.OutputPaths = DefaultCfg.OutputPaths
	}

	rootLogger, err := zapCfg.Build(zap.AddStacktrace(stacktraceLevel))
	if err != nil {
		return nil, ierrors.WithMessagef(ErrInvalidConfig, "failed to build logger: %w", err)
	}

	return rootLogger.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the "logger" section of the given configuration.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*Logger, error) {
	cfg := DefaultCfg

	// get config values one by one
	// flags define the keys of a group individually, so the group can not be unmarshaled as a whole
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyStacktraceLevel); val != "" {
		cfg.StacktraceLevel = val
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.String(ConfigurationKeyTimeEncoder); val != "" {
		cfg.EncodingConfig.EncodeTime = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}
