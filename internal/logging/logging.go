package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zapcore.Field
	Option = zap.Option
)

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New builds a logger at the given level. Outside production a colored development encoder is used.
func New(level string, opts ...Option) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errs.New("invalid log level %q: %w", level, err)
	}

	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	return logCfg.Build(opts...)
}

// Result logs r under key using its Ok(...)/Err(...) form.
func Result[S ~string](key S, r fmt.Stringer) Field {
	return zap.Stringer(string(key), r)
}

// Panic logs a recovered panic value. Errors keep their error field, anything else is logged as-is.
func Panic(v any) Field {
	if err, ok := v.(error); ok {
		return zap.Error(err)
	}
	return zap.Any("panic", v)
}
