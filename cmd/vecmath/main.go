package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/viant/vecmath/internal/scenario"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML scenario file")
	level := flag.String("level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "vecmath: -config is required")
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vecmath:", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, logger, *configPath); err != nil {
		logger.Error("scenario failed", zap.String("config", *configPath), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	logger.Info("scenario loaded", zap.String("config", path), zap.Int("pairs", len(s.Pairs)))

	results, err := scenario.NewRunner(logger).Run(ctx, s)
	for _, res := range results {
		fmt.Printf("%s: a=%v b=%v |a|=%g |b|=%g", res.Name, res.A, res.B, res.MagnitudeA, res.MagnitudeB)
		if res.Sum != nil {
			fmt.Printf(" a+b=%v", res.Sum)
		}
		if _, failed := res.Errors["angle"]; !failed {
			fmt.Printf(" angle=%g", res.Angle)
		}
		if res.Cross != nil {
			fmt.Printf(" axb=%v", res.Cross)
		}
		fmt.Printf(" equal=%t", res.Equal)
		ops := make([]string, 0, len(res.Errors))
		for op := range res.Errors {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		for _, op := range ops {
			fmt.Printf(" %s!", op)
		}
		fmt.Println()
	}
	return err
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
