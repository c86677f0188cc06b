package logging

import (
	"log/slog"
	"regexp"
)

const traceparentHeader = "traceparent"

// W3C Trace Context format: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceHeaderRe = regexp.MustCompile(
	`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`,
)

// traceContext holds the fields of a parsed traceparent header.
type traceContext struct {
	TraceID string
	SpanID  string
	Sampled bool
}

func parseTraceparent(header string) (traceContext, bool) {
	m := traceHeaderRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return traceContext{}, false
	}
	// all-zero IDs are invalid per the W3C spec
	if m[2] == "00000000000000000000000000000000" || m[3] == "0000000000000000" {
		return traceContext{}, false
	}
	return traceContext{TraceID: m[2], SpanID: m[3], Sampled: m[4] == "01"}, true
}

func loggerWithTrace(base *slog.Logger, tc traceContext, requestID string) *slog.Logger {
	if base == nil {
		base = Logger()
	}
	var args []any
	if tc.TraceID != "" {
		args = append(args,
			slog.String("traceId", tc.TraceID),
			slog.String("spanId", tc.SpanID),
			slog.Bool("traceSampled", tc.Sampled),
		)
	}
	if requestID != "" {
		args = append(args, slog.String("requestId", requestID))
	}
	if len(args) == 0 {
		return base
	}
	return base.With(args...)
}
