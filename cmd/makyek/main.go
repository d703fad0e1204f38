package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK = iota
	exitErr

	envLayout = "MAKYEK_LAYOUT"
)

var (
	debug  = flag.Bool("debug", false, "enable debug logging")
	layout = flag.String("layout", "", "starting layout, 8 rows joined by '/' with row 0 first (default standard start, or $"+envLayout+")")
	draw   = flag.Bool("draw", false, "draw the board in colour after every move")
	count  = flag.Bool("count", false, "print the material count after the last move")
)

type config struct {
	Layout string
	Draw   bool
	Count  bool
}

func main() {
	flag.Parse()

	logger := initLogger(*debug)

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("loading env error", zap.Error(err))
	}

	cfg := config{
		Layout: *layout,
		Draw:   *draw,
		Count:  *count,
	}
	if cfg.Layout == "" {
		cfg.Layout = os.Getenv(envLayout)
	}

	err = realMain(cfg, flag.Args(), os.Stdout, logger)
	if err != nil {
		logger.Error("makyek failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}
