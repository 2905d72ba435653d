// Package o11y provides the structured logging and tracing used when loading the site descriptor and serving scale
// lookups. An Observer travels in a context.Context and carries the loggers, the tracer provider and any stable
// arguments that should be attached to every log line.
package o11y

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelSDKTrace "go.opentelemetry.io/otel/sdk/trace"
	otelTrace "go.opentelemetry.io/otel/trace"
)

// Observer holds the loggers, tracer provider and span stack for one context.
type Observer struct {
	cfg           Configurator
	output        io.Writer
	errOutput     io.Writer
	outLogger     *slog.Logger
	errLogger     *slog.Logger
	traceProvider *otelSDKTrace.TracerProvider
	stableArgs    []any
	span          otelTrace.Span
	spans         []otelTrace.Span
	skipCallers   int
}

type o11yContextKey string

var obsKeyInstance o11yContextKey = "cirruscomms/fragility/o11y"

// Initialise sets up the Observer with the provided configuration, log outputs, and initial arguments.
// A nil cfg is loaded from the environment; nil outputs default to stdout and stderr.
func Initialise(
	ctx context.Context,
	cfg Configurator,
	logOutput, errOutput io.Writer,
	initialArgs ...any,
) (
	ctxWithObserver context.Context,
	observer *Observer,
	fault error,
) {
	if logOutput == nil {
		logOutput = os.Stdout
	}

	if errOutput == nil {
		errOutput = os.Stderr
	}

	var err error

	if cfg == nil {
		cfg, err = LoadConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	tp, err := tracerProvider(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer provider: %w", err)
	}

	opts := defaultOptions(cfg)

	o := &Observer{
		cfg:           cfg,
		output:        logOutput,
		errOutput:     errOutput,
		outLogger:     slog.New(slog.NewJSONHandler(logOutput, opts)),
		errLogger:     slog.New(slog.NewJSONHandler(errOutput, opts)),
		traceProvider: tp,
		skipCallers:   3,
	}

	ctx = context.WithValue(ctx, obsKeyInstance, o)
	if len(initialArgs) != 0 {
		ctx, o, _ = Extend(ctx, initialArgs...)
	}

	o.Debug("initialised observer", FieldServiceName, cfg.ServiceName())

	return ctx, o, nil
}

// Reset drops the stable arguments of the Observer in the context and rebuilds its loggers.
func Reset(ctxWithObserver context.Context) (ctxWithResetObserver context.Context) {
	ctxWithObserver, o, err := Get(ctxWithObserver)
	if err != nil {
		return ctxWithObserver
	}

	o.outLogger = slog.New(slog.NewJSONHandler(o.output, defaultOptions(o.cfg)))
	o.errLogger = slog.New(slog.NewJSONHandler(o.errOutput, defaultOptions(o.cfg)))
	o.stableArgs = []any{}
	o.Debug("observer reset")

	return context.WithValue(ctxWithObserver, obsKeyInstance, o)
}

// Get retrieves the Observer from the context.
func Get(ctx context.Context) (ctxWithObserver context.Context, observer *Observer, fault error) {
	o, ok := ctx.Value(obsKeyInstance).(*Observer)
	if !ok || o == nil {
		return ctx, nil, ErrNoObserver
	}

	return ctx, o, nil
}

// Extend retrieves the Observer from the context and adds new arguments to its loggers.
func Extend(ctx context.Context, newArgs ...any) (ctxWithObserver context.Context, observer *Observer, fault error) {
	ctx, o, err := Get(ctx)
	if err != nil {
		return ctx, nil, err
	}

	if len(newArgs) != 0 {
		newArgs = DeduplicateArgs(newArgs)
		o.outLogger = o.outLogger.With(newArgs...)
		o.errLogger = o.errLogger.With(newArgs...)
		o.stableArgs = o.AddArgs(newArgs...)
	}

	return context.WithValue(ctx, obsKeyInstance, o), o, nil
}

// Span gets the Observer from the context and starts a new tracing span with the given name.
func Span(
	ctx context.Context,
	spanName string,
	spanKind otelTrace.SpanKind,
) (
	ctxWithSpan context.Context,
	observer *Observer,
	fault error,
) {
	ctx, o, err := Get(ctx)
	if err != nil {
		return ctx, nil, err
	}

	ctx, span := o.Tracer().Start(ctx, spanName, otelTrace.WithSpanKind(spanKind))

	o.span = span
	o.spans = append(o.spans, span)

	return context.WithValue(ctx, obsKeyInstance, o), o, nil
}

// Expand starts a new tracing span with the given name and adds new arguments to the Observer's loggers.
func Expand(
	ctx context.Context,
	spanName string,
	spanKind otelTrace.SpanKind,
	newArgs ...any,
) (
	ctxWithSpan context.Context,
	observer *Observer,
	fault error,
) {
	ctx, _, err := Span(ctx, spanName, spanKind)
	if err != nil {
		return ctx, nil, err
	}

	return Extend(ctx, newArgs...)
}

// Tracer returns the tracer for this Observer's service.
func (o *Observer) Tracer() otelTrace.Tracer {
	return o.traceProvider.Tracer(o.cfg.ServiceName())
}

// End ends the current tracing span and reverts to the previous span in the stack.
func (o *Observer) End() {
	if o.span == nil {
		return
	}

	o.span.End()

	o.spans = o.spans[:len(o.spans)-1]
	if len(o.spans) > 0 {
		o.span = o.spans[len(o.spans)-1]
	} else {
		o.span = nil
	}
}

// Close ends all active spans and shuts down the trace provider so that pending spans are flushed.
func (o *Observer) Close(ctx context.Context) (fault error) {
	for i := len(o.spans) - 1; i >= 0; i-- {
		o.spans[i].End()
	}

	o.spans = nil
	o.span = nil

	if err := o.traceProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shut down tracer provider: %w", err)
	}

	return nil
}

// InContext reports whether an Observer has been added to ctx.
// Packages that log opportunistically check this before calling Get.
func InContext(ctx context.Context) (response bool) {
	_, ok := ctx.Value(obsKeyInstance).(*Observer)
	return ok
}

// AddToContext adds the Observer to the provided context.
func AddToContext(ctx context.Context, o *Observer) context.Context {
	return context.WithValue(ctx, obsKeyInstance, o)
}

func defaultOptions(cfg Configurator) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       cfg.LogLevel(),
		ReplaceAttr: defaultReplacer(cfg.TrimModules(), cfg.TrimPaths()),
	}
}

// defaultReplacer creates a function to replace or modify log attributes
func defaultReplacer(trimModules, trimPaths []string) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if os.Getenv("ENV") == "test" && a.Key == slog.TimeKey {
			return slog.Attr{} // remove time key in test to make it easier to compare
		}

		switch a.Key {
		case slog.SourceKey:
			source, ok := a.Value.Any().(*slog.Source)
			if !ok {
				return a
			}

			for _, path := range trimPaths {
				if idx := strings.Index(source.File, path); idx != -1 {
					source.File = source.File[idx+len(path):]
				}
			}

			for _, module := range trimModules {
				if idx := strings.Index(source.Function, module); idx != -1 {
					source.Function = source.Function[idx+len(module):]
				}
			}

			return slog.Any(a.Key, source)
		case slog.LevelKey:
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				level = StringToLevel(a.Value.String())
			}

			a.Value = slog.StringValue(LevelName(level))
		}

		return a
	}
}

func (o *Observer) write(ctx context.Context, logger *slog.Logger, skipCallers int, level slog.Level, msg string, args ...any) (levelEnabled bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	if logger == nil || !logger.Enabled(ctx, level) {
		return false
	}

	var pcs [1]uintptr
	// skip [runtime.Callers, this function, this function's caller]
	runtime.Callers(skipCallers, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])

	if len(args) != 0 {
		r.Add(DeduplicateArgs(args)...)
	}

	_ = logger.Handler().Handle(ctx, r)

	return true
}

func (o *Observer) log(ctx context.Context, skipCallers int, level slog.Level, msg string, args ...any) (levelEnabled bool) {
	return o.write(ctx, o.outLogger, skipCallers+1, level, msg, args...)
}

func (o *Observer) error(ctx context.Context, skipCallers int, level slog.Level, msg string, args ...any) (levelEnabled bool) {
	return o.write(ctx, o.errLogger, skipCallers+1, level, msg, args...)
}

// AddArgs merges args into the Observer's stable arguments; later values do not replace earlier ones.
func (o *Observer) AddArgs(args ...any) (filteredArgs []any) {
	merged := make([]any, 0, len(o.stableArgs)+len(args))
	merged = append(merged, o.stableArgs...)
	merged = append(merged, args...)

	return DeduplicateArgs(merged)
}

// DeduplicateArgs removes key/value pairs whose key has already appeared, keeping the first value and the original
// order. A trailing key without a value is dropped.
func DeduplicateArgs(args []any) (dedupedArgs []any) {
	seen := make(map[string]struct{}, len(args)/2)
	out := make([]any, 0, len(args))

	for i := 0; i+1 < len(args); i += 2 {
		key := fmt.Sprintf("%v", args[i])
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, args[i], args[i+1])
	}

	return out
}

func argsToAttributes(args ...any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(args)/2)

	for i := 0; i+1 < len(args); i += 2 {
		key := fmt.Sprintf("%v", args[i])

		switch v := args[i+1].(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case fmt.Stringer:
			attrs = append(attrs, attribute.String(key, v.String()))
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprintf("%v", v)))
		}
	}

	return attrs
}
