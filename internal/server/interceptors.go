// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// RequestIDHeader is the response header carrying the per-RPC request id.
const RequestIDHeader = "x-request-id"

// toStatus converts a handler error into a gRPC status error. Errors that
// already carry a status pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return status.Error(kverr.GRPCStatus(err), err.Error())
}

// logRPC logs the outcome of one RPC. handlerErr is the error as returned
// by the handler, before status conversion, so its structured fields survive.
func logRPC(method, requestID string, start time.Time, handlerErr error) {
	code := status.Code(toStatus(handlerErr))
	attrs := []any{
		"method", method,
		"code", code.String(),
		"duration", time.Since(start),
		"request_id", requestID,
	}
	if handlerErr != nil {
		attrs = append(attrs, "error", handlerErr)
		if fields := kverr.FieldsOf(handlerErr); len(fields) > 0 {
			attrs = append(attrs, "fields", fields)
		}
	}
	switch code {
	case codes.OK, codes.Canceled:
		slog.Debug("rpc", attrs...)
	case codes.Internal, codes.DataLoss, codes.Unknown:
		slog.Error("rpc", attrs...)
	default:
		slog.Warn("rpc", attrs...)
	}
}

// unaryObserver tags every unary RPC with a request id, maps errors to
// statuses and logs the outcome.
func unaryObserver() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := uuid.NewString()
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		resp, err := handler(ctx, req)
		logRPC(info.FullMethod, requestID, start, err)
		return resp, toStatus(err)
	}
}

func streamObserver() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		requestID := uuid.NewString()
		_ = ss.SetHeader(metadata.Pairs(RequestIDHeader, requestID))

		err := handler(srv, ss)
		logRPC(info.FullMethod, requestID, start, err)
		return toStatus(err)
	}
}

// unaryRecovery turns a handler panic into an Internal error so one bad
// request cannot take the process down.
func unaryRecovery() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(info.FullMethod, r)
			}
		}()
		return handler(ctx, req)
	}
}

func streamRecovery() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(info.FullMethod, r)
			}
		}()
		return handler(srv, ss)
	}
}

func recovered(method string, r any) error {
	slog.Error("panic in rpc handler",
		"method", method,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	return kverr.New(kverr.CodeServerInternalFailure, "internal error", kverr.FieldMethod(method))
}
