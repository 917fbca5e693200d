package logger

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *Logger
}

// NewWrappedLogger creates a new WrappedLogger. The logger may be nil, in which case nothing is logged.
func NewWrappedLogger(logger *Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// Logger return the underlying logger.
func (l *WrappedLogger) Logger() *Logger {
	return l.logger
}

// LoggerNamed adds a sub-scope to the logger's name. See Logger.Named for details.
func (l *WrappedLogger) LoggerNamed(name string) *Logger {
	if l.logger != nil {
		return l.logger.Named(name)
	}

	return nil
}

// LogDebug uses fmt.Sprint to construct and log a message.
func (l *WrappedLogger) LogDebug(args ...any) {
	if l.logger != nil {
		l.logger.Debug(args...)
	}
}

// LogDebugf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogDebugf(template string, args ...any) {
	if l.logger != nil {
		l.logger.Debugf(template, args...)
	}
}

// LogInfo uses fmt.Sprint to construct and log a message.
func (l *WrappedLogger) LogInfo(args ...any) {
	if l.logger != nil {
		l.logger.Info(args...)
	}
}

// LogInfof uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogInfof(template string, args ...any) {
	if l.logger != nil {
		l.logger.Infof(template, args...)
	}
}

// LogWarn uses fmt.Sprint to construct and log a message.
func (l *WrappedLogger) LogWarn(args ...any) {
	if l.logger != nil {
		l.logger.Warn(args...)
	}
}

// LogWarnf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogWarnf(template string, args ...any) {
	if l.logger != nil {
		l.logger.Warnf(template, args...)
	}
}

// LogError uses fmt.Sprint to construct and log a message.
func (l *WrappedLogger) LogError(args ...any) {
	if l.logger != nil {
		l.logger.Error(args...)
	}
}

// LogErrorf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogErrorf(template string, args ...any) {
	if l.logger != nil {
		l.logger.Errorf(template, args...)
	}
}
