package logger

import (
	"os"
	"time"

	"github.com/leandrodaf/pcspkr/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements contracts.Logger on top of zap.
type ZapLogger struct {
	logger    *zap.Logger
	level     zap.AtomicLevel
	closeSink func() // Releases the current file sink; nil while logging to stderr.
}

// NewZapLogger creates a JSON logger writing to stderr at InfoLevel.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	z := &ZapLogger{level: level}
	z.logger = z.build(zapcore.Lock(os.Stderr))
	return z
}

// NewZapLoggerWithCore wraps a caller-provided core, such as a tee to an existing
// zap setup or an observer core in tests. Level filtering still goes through SetLevel.
func NewZapLoggerWithCore(core zapcore.Core) contracts.Logger {
	return &ZapLogger{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)),
		level:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() contracts.Logger {
	return &ZapLogger{logger: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

func (z *ZapLogger) build(out zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, z.level)
	// Skip the wrapper method and log() so the caller is the SDK code that logged.
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
}

// Field returns a new instance of Field
func (z *ZapLogger) Field() contracts.Field {
	return &zapField{}
}

// SetLevel sets the logging level
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(toZapLevel(level))
}

// SetDestination switches output between stderr and a file.
// If the file cannot be opened the current destination is kept and the failure is logged.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	switch dest {
	case contracts.ConsoleLog:
		z.releaseSink()
		z.logger = z.build(zapcore.Lock(os.Stderr))
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			z.Warn("file log destination requested without a path")
			return
		}
		sink, closeSink, err := zap.Open(filePath[0])
		if err != nil {
			z.Error("failed to open log file",
				z.Field().String("path", filePath[0]),
				z.Field().Error("error", err))
			return
		}
		z.releaseSink()
		z.logger = z.build(sink)
		z.closeSink = closeSink
	default:
		z.Warn("unknown log destination", z.Field().String("destination", string(dest)))
	}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

// Close flushes and releases a file destination, then falls back to stderr.
// It is a no-op while logging to stderr.
func (z *ZapLogger) Close() error {
	if z.closeSink == nil {
		return nil
	}
	err := z.logger.Sync()
	z.releaseSink()
	z.logger = z.build(zapcore.Lock(os.Stderr))
	return err
}

func (z *ZapLogger) releaseSink() {
	if z.closeSink != nil {
		z.logger.Sync()
		z.closeSink()
		z.closeSink = nil
	}
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	if !z.level.Enabled(level) {
		return
	}
	zfields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if f, ok := field.(*zapField); ok && f.key != "" {
			zfields = append(zfields, f.zap())
		}
	}

	switch level {
	case zapcore.DebugLevel:
		z.logger.Debug(msg, zfields...)
	case zapcore.InfoLevel:
		z.logger.Info(msg, zfields...)
	case zapcore.WarnLevel:
		z.logger.Warn(msg, zfields...)
	case zapcore.ErrorLevel:
		z.logger.Error(msg, zfields...)
	case zapcore.FatalLevel:
		z.logger.Fatal(msg, zfields...)
	}
}

func toZapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// zapField implements contracts.Field
type zapField struct {
	key   string
	value interface{}
}

func (f *zapField) zap() zap.Field {
	if err, ok := f.value.(error); ok {
		return zap.NamedError(f.key, err)
	}
	return zap.Any(f.key, f.value)
}

func (f *zapField) Bool(key string, val bool) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int(key string, val int) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int32(key string, val int32) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Float64(key string, val float64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) String(key string, val string) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Time(key string, val time.Time) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Duration(key string, val time.Duration) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Int64(key string, val int64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Error(key string, val error) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint64(key string, val uint64) contracts.Field {
	return &zapField{key, val}
}

func (f *zapField) Uint16(key string, val uint16) contracts.Field {
	return &zapField{key, val}
}
