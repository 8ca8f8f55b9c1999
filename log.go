package funccall

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLogFormat is returned by NewLogger for formats other than console and json.
var ErrUnknownLogFormat = errors.New("unknown log format")

// Config controls logger construction.
type Config struct {
	LogLevel  string `env:"FUNCCALL_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FUNCCALL_LOG_FORMAT" envDefault:"console"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a zap logger writing to out.
func NewLogger(cfg Config, out io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}

	var enc zapcore.Encoder
	switch cfg.LogFormat {
	case "console":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		encCfg.LevelKey = ""
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)), nil
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(defaultLogger())
}

// defaultLogger writes console text to stdout at info level. The config is
// fixed, so a construction error is a programming bug.
func defaultLogger() *zap.Logger {
	return zap.Must(NewLogger(Config{LogLevel: "info", LogFormat: "console"}, os.Stdout))
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger and returns a func restoring the
// previous one. A nil logger silences output.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() {
		logger.Store(prev)
	}
}
