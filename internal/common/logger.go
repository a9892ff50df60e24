package common

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the app global logger
	Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// LoggerOptions configures InitLogger.
type LoggerOptions struct {
	ServiceName        string
	ServiceVersion     string
	ServiceEnvironment string
	// ExporterEndpoint enables the OTLP log exporter when not empty.
	ExporterEndpoint string
	Level            slog.Level
	// File enables a rotating log file when not empty.
	File string
}

// InitLogger initializes the app global logger.
// Records go to stderr, and also to a rotating file and to the OTLP exporter when configured.
// The returned function flushes and closes whatever was opened.
func InitLogger(opts LoggerOptions) (func(ctx context.Context) error, error) {

	handlerOptions := &slog.HandlerOptions{Level: opts.Level}
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, handlerOptions),
	}
	var closers []func(ctx context.Context) error

	if opts.File != "" {
		rotatingLogFile := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  10,
			MaxAge:   15,
			Compress: true,
		}
		handlers = append(handlers, slog.NewTextHandler(rotatingLogFile, handlerOptions))
		closers = append(closers, func(context.Context) error { return rotatingLogFile.Close() })
	}

	if opts.ExporterEndpoint != "" {
		logExporter, err := otlploggrpc.New(context.Background(),
			otlploggrpc.WithEndpoint(opts.ExporterEndpoint),
			otlploggrpc.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("failed to otlploggrpc.New: %w", err)
		}

		lp := log.NewLoggerProvider(
			log.WithProcessor(
				log.NewBatchProcessor(logExporter),
			),
			log.WithResource(resource.NewWithAttributes(semconv.SchemaURL,
				semconv.ServiceNameKey.String(opts.ServiceName),
				semconv.ServiceVersionKey.String(opts.ServiceVersion),
				semconv.DeploymentEnvironmentNameKey.String(opts.ServiceEnvironment))),
		)

		handlers = append(handlers, otelslog.NewHandler("github.com/PithLimb/StreamingServices",
			otelslog.WithLoggerProvider(lp)))
		closers = append(closers, lp.Shutdown)
	}

	Log = slog.New(slogmulti.Fanout(handlers...))

	return func(ctx context.Context) error {
		var firstErr error
		for _, closeFn := range closers {
			if err := closeFn(ctx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}, nil
}
