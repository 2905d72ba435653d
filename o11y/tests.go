package o11y

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// InitialiseTestLogger sets up an Observer for use in tests - no span export.
func InitialiseTestLogger(ctx context.Context, level slog.Level, logOut, logErr io.Writer) (ctxWithObserver context.Context, observer *Observer, fault error) {
	cfg := CreateConfig(level, "", "", "", []string{}, []string{})

	ctx, o, err := Initialise(ctx, cfg, logOut, logErr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialise observer: %w", err)
	}

	return ctx, o, nil
}

// InitialiseTestTracer sets up an Observer for use in tests that exports spans to the collector at otelHost:otelPort.
func InitialiseTestTracer(ctx context.Context, level slog.Level, logOut, logErr io.Writer, otelHost, otelPort, serviceName string) (ctxWithObserver context.Context, observer *Observer, fault error) {
	cfg := CreateConfig(level, otelHost, otelPort, serviceName, []string{}, []string{})

	ctx, o, err := Initialise(ctx, cfg, logOut, logErr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialise observer: %w", err)
	}

	return ctx, o, nil
}
