package delivery_grpc

import (
	"context"
	"log/slog"
	"time"

	ports "microblog-service/internal/domain/ports/output"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func UnaryLoggerInterceptor(log ports.Logger, metrics ports.MetricsProvider) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err).String()
		metrics.IncrementGRPCRequests(info.FullMethod, code)
		metrics.RecordGRPCRequestDuration(info.FullMethod, code, time.Since(start))

		if err != nil {
			log.Warn("gRPC request failed",
				slog.String("method", info.FullMethod),
				slog.String("code", code),
				slog.String("error", err.Error()))
		} else {
			log.Debug("gRPC request",
				slog.String("method", info.FullMethod),
				slog.Duration("duration", time.Since(start)))
		}
		return resp, err
	}
}
