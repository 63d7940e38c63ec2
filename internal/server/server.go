// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	"github.com/sigil-dev/kvstore/internal/store"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// Config holds gRPC server configuration.
type Config struct {
	ListenAddr string
	// GracePeriod bounds how long in-flight RPCs may run after shutdown
	// starts. Zero uses one second.
	GracePeriod time.Duration
	RateLimit   RateLimitConfig
	Reflection  bool
}

// Server runs the KeyValueStore gRPC service and owns the shutdown
// sequence, including the final snapshot save.
type Server struct {
	cfg    Config
	store  store.Store
	grpc   *grpc.Server
	health *health.Server
	done   chan struct{}
}

// New creates a Server with the KeyValueStore, health and (optionally)
// reflection services registered.
func New(cfg Config, st store.Store) (*Server, error) {
	if cfg.ListenAddr == "" {
		return nil, kverr.New(kverr.CodeServerConfigInvalid, "listen address is required")
	}
	if cfg.GracePeriod == 0 {
		cfg.GracePeriod = time.Second
	}
	if err := cfg.RateLimit.Validate(); err != nil {
		return nil, err
	}

	svc, err := NewService(st)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	unary := []grpc.UnaryServerInterceptor{unaryObserver(), unaryRecovery()}
	stream := []grpc.StreamServerInterceptor{streamObserver(), streamRecovery()}
	if limiter := newRateLimiter(cfg.RateLimit, done); limiter != nil {
		unary = append(unary, limiter.unaryInterceptor())
		stream = append(stream, limiter.streamInterceptor())
	}

	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)
	kvstorev1.RegisterKeyValueStoreServer(gs, svc)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	if cfg.Reflection {
		reflection.Register(gs)
	}

	return &Server{
		cfg:    cfg,
		store:  st,
		grpc:   gs,
		health: hs,
		done:   done,
	}, nil
}

// Start listens on the configured address and serves until ctx is
// cancelled. See Serve.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return kverr.Wrap(err, kverr.CodeServerStartFailure, "listening", kverr.Field("addr", s.cfg.ListenAddr))
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down:
// health turns NOT_SERVING, new RPCs are refused, in-flight RPCs get the
// grace period to finish, and the store is persisted exactly once. A failed
// final save is logged and does not make Serve fail.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(kvstorev1.KeyValueStore_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	slog.Info("kvstore listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.grpc.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	s.shutdown()

	if err := s.store.PersistToDisk(context.Background()); err != nil {
		slog.Error("final snapshot save failed", "error", err)
	}

	if serveErr != nil {
		return kverr.Wrap(serveErr, kverr.CodeServerStartFailure, "serving")
	}
	return <-errCh
}

func (s *Server) shutdown() {
	slog.Info("shutting down", "grace_period", s.cfg.GracePeriod)
	s.health.Shutdown()
	close(s.done)

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(s.cfg.GracePeriod)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		slog.Warn("grace period elapsed, cancelling in-flight rpcs")
		s.grpc.Stop()
		<-stopped
	}
}
