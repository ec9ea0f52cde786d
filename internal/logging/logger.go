// internal/logging/logger.go
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options описывает, куда и насколько подробно писать.
type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // человекочитаемый вывод вместо JSON
	Dir     string // каталог для файла лога; пусто — только stderr
}

// ParseLevel accepts the level names used on the command line.
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// New создаёт zap-логгер. При заданном Dir лог дублируется в файл
// game_<время>.log внутри него.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if opts.Console {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		name := fmt.Sprintf("game_%s.log", time.Now().Format("2006-01-02_15-04-05"))
		cfg.OutputPaths = append(cfg.OutputPaths, filepath.Join(opts.Dir, name))
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
