package logger

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const StderrSink = "stderr"

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is a file path, "stderr", or stdout when empty.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var (
		out      io.Writer = os.Stdout
		terminal           = isatty.IsTerminal(os.Stdout.Fd())
	)
	switch cfg.Sink {
	case "":
		out = colorable.NewColorableStdout()
	case StderrSink:
		out = colorable.NewColorableStderr()
		terminal = isatty.IsTerminal(os.Stderr.Fd())
	default:
		terminal = false
		if f, err := os.OpenFile(cfg.Sink, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}

	encoder := zapcore.NewJSONEncoder(encCfg)
	if cfg.LogLevel == zapcore.DebugLevel {
		if terminal {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}
	sink := zapcore.Lock(zapcore.AddSync(out))

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(cfg.LogLevel))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel)).Named(name)
}
