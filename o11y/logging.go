package o11y

import (
	"context"
	"os"
)

// annotate mirrors a log line onto the active span, if there is one, and returns the args to log.
func (o *Observer) annotate(msg string, err error, ephemeralArgs []any) []any {
	if o.span == nil {
		return ephemeralArgs
	}

	args := make([]any, 0, len(o.stableArgs)+len(ephemeralArgs))
	args = append(args, o.stableArgs...)
	args = append(args, ephemeralArgs...)

	o.span.SetAttributes(argsToAttributes(args...)...)
	if err != nil {
		o.span.RecordError(err)
	} else {
		o.span.AddEvent(msg)
	}

	sc := o.span.SpanContext()
	if sc.IsValid() {
		ephemeralArgs = append(ephemeralArgs, FieldTraceID, sc.TraceID().String(), FieldSpanID, sc.SpanID().String())
	}

	return ephemeralArgs
}

// Develop logs a development-only message and adds an event to the span if available.
func (o *Observer) Develop(msg string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, nil, ephemeralArgs)
	o.log(context.Background(), o.skipCallers, LevelDevelop, msg, ephemeralArgs...)
}

// Debug logs a debug message and adds an event to the span if available.
func (o *Observer) Debug(msg string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, nil, ephemeralArgs)
	o.log(context.Background(), o.skipCallers, LevelDebug, msg, ephemeralArgs...)
}

// Info logs an informational message and adds an event to the span if available.
func (o *Observer) Info(msg string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, nil, ephemeralArgs)
	o.log(context.Background(), o.skipCallers, LevelInfo, msg, ephemeralArgs...)
}

// Notice logs a notice message and adds an event to the span if available.
func (o *Observer) Notice(msg string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, nil, ephemeralArgs)
	o.log(context.Background(), o.skipCallers, LevelNotice, msg, ephemeralArgs...)
}

// Warning logs a warning message and adds an event to the span if available.
func (o *Observer) Warning(msg string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, nil, ephemeralArgs)
	o.log(context.Background(), o.skipCallers, LevelWarning, msg, ephemeralArgs...)
}

// Warn is an alias for Warning.
func (o *Observer) Warn(msg string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, nil, ephemeralArgs)
	o.log(context.Background(), o.skipCallers, LevelWarning, msg, ephemeralArgs...)
}

// Error logs an error message to the error output, records the error in the span if available, and sets the severity.
func (o *Observer) Error(msg string, err error, severity string, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, err, ephemeralArgs)
	ephemeralArgs = append(ephemeralArgs, "error", errString(err), "severity", severity)
	o.error(context.Background(), o.skipCallers, LevelError, msg, ephemeralArgs...)
}

// Fatal logs a fatal error message, records the error in the span if available, and exits.
func (o *Observer) Fatal(msg string, err error, ephemeralArgs ...any) {
	ephemeralArgs = o.annotate(msg, err, ephemeralArgs)
	ephemeralArgs = append(ephemeralArgs, "error", errString(err), "severity", SeverityHighest)
	o.error(context.Background(), o.skipCallers, LevelFatal, msg, ephemeralArgs...)
	os.Exit(1)
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
