package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/erc7824/fieldsig/pkg/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit status. Results
// go to stdout; logs and errors go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	conf, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "fieldsig: %v\n", err)
		return exitError
	}

	logger := log.NewZapLogger(conf.Log).WithName("fieldsig")
	if conf.DotEnvPath != "" {
		logger.Debug("loaded .env file", "path", conf.DotEnvPath)
	}

	tp, err := newTracerProvider(ctx, conf.OtelEndpoint)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		return exitError
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("failed to flush spans", "error", err)
		}
	}()

	ctx, span := tp.Tracer(serviceName).Start(ctx, spanName(args))
	defer span.End()
	ctx = log.SetContextLogger(ctx, logger)

	registry := prometheus.NewRegistry()
	a := &app{conf: conf, metrics: NewMetrics(registry)}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err = cmd.ExecuteContext(ctx)

	if conf.MetricsFile != "" {
		if werr := WriteTextfile(conf.MetricsFile, registry); werr != nil {
			logger.Warn("failed to write metrics file", "path", conf.MetricsFile, "error", werr)
		}
	}

	code := exitCode(err)
	span.SetAttributes(attribute.Int("exit.code", code))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, errVerificationFailed) {
			fmt.Fprintf(stderr, "fieldsig: %v\n", err)
		}
	}
	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errVerificationFailed):
		return exitInvalidSignature
	default:
		return exitError
	}
}

// spanName names the run span after the subcommand.
func spanName(args []string) string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return serviceName
	}
	return serviceName + " " + args[0]
}
