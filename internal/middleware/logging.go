package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs one line per RPC with its procedure, caller,
// duration and outcome. Client errors log at warn, internal ones at error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("user_id", GetUserID(ctx)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			level, msg := rpcOutcome(err)
			if err != nil {
				attrs = append(attrs, slog.String("code", connect.CodeOf(err).String()), slog.Any("error", err))
			}
			logger.LogAttrs(ctx, level, msg, attrs...)

			return resp, err
		}
	}
}

func rpcOutcome(err error) (slog.Level, string) {
	switch {
	case err == nil:
		return slog.LevelInfo, "RPC ok"
	case connect.CodeOf(err) == connect.CodeInternal || connect.CodeOf(err) == connect.CodeUnknown:
		return slog.LevelError, "RPC failed"
	default:
		return slog.LevelWarn, "RPC error"
	}
}
