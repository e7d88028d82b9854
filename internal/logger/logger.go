package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The no-op defaults are replaced by InitLoggers at startup; tests that never
// call InitLoggers log nowhere instead of panicking.
var (
	AppLogger   = zap.NewNop() // server and database lifecycle events
	ErrorLogger = zap.NewNop() // API errors
	QueryLogger = zap.NewNop() // SQL queries
)

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.LevelKey = "level"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = customTimeEncoder
	encoderConfig.EncodeLevel = customLevelEncoder
	encoderConfig.CallerKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.StacktraceKey = ""

	return zapcore.NewConsoleEncoder(encoderConfig)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(level.String())
}

func newFileLogger(logDir, name string, level zapcore.Level) (*zap.Logger, error) {
	file, err := os.OpenFile(
		filepath.Join(logDir, fmt.Sprintf("%s_%s.log", name, time.Now().Format("2006-01-02"))),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(getEncoder(), zapcore.AddSync(file), level)
	return zap.New(core), nil
}

func InitLoggers() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	var err error
	if AppLogger, err = newFileLogger(logDir, "app", zap.InfoLevel); err != nil {
		return err
	}
	if ErrorLogger, err = newFileLogger(logDir, "error", zap.ErrorLevel); err != nil {
		return err
	}
	if QueryLogger, err = newFileLogger(logDir, "query", zap.InfoLevel); err != nil {
		return err
	}

	return nil
}
