// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package server

import (
	"context"
	"log/slog"
	"net"
	"slices"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"

	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// RateLimitConfig configures per-peer rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained RPC rate per peer IP. Zero disables limiting.
	RequestsPerSecond float64
	// Burst is the maximum burst size per peer IP.
	Burst int
	// MaxVisitors caps how many peer IPs are tracked. Default: 10000.
	MaxVisitors int
}

// Validate checks that the RateLimitConfig is valid and applies defaults.
func (c *RateLimitConfig) Validate() error {
	if c.RequestsPerSecond < 0 {
		return kverr.Errorf(kverr.CodeServerConfigInvalid,
			"rate limit requests per second must not be negative (got %g)",
			c.RequestsPerSecond)
	}
	if c.RequestsPerSecond > 0 && c.Burst <= 0 {
		return kverr.Errorf(kverr.CodeServerConfigInvalid,
			"rate limit burst must be positive when rate is set (got burst=%d, rate=%g)",
			c.Burst, c.RequestsPerSecond)
	}
	if c.MaxVisitors < 0 {
		return kverr.Errorf(kverr.CodeServerConfigInvalid,
			"rate limit max visitors must not be negative (got %d)",
			c.MaxVisitors)
	}
	if c.MaxVisitors == 0 {
		c.MaxVisitors = 10000
	}
	return nil
}

type visitorEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter hands out one token bucket per peer IP.
type rateLimiter struct {
	cfg RateLimitConfig

	mu       sync.Mutex
	visitors map[string]*visitorEntry
}

// newRateLimiter returns nil when cfg.RequestsPerSecond is zero. The cleanup
// goroutine exits when done is closed.
func newRateLimiter(cfg RateLimitConfig, done <-chan struct{}) *rateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	l := &rateLimiter{cfg: cfg, visitors: make(map[string]*visitorEntry)}
	go l.cleanupLoop(done)
	return l
}

func (l *rateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitorEntry{limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *rateLimiter) cleanupLoop(done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now())
		case <-done:
			return
		}
	}
}

// cleanup drops peers idle for ten minutes, then evicts the oldest until
// at most MaxVisitors remain.
func (l *rateLimiter) cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	const staleThreshold = 10 * time.Minute

	type entry struct {
		ip       string
		lastSeen time.Time
	}
	entries := make([]entry, 0, len(l.visitors))
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > staleThreshold {
			delete(l.visitors, ip)
		} else {
			entries = append(entries, entry{ip: ip, lastSeen: v.lastSeen})
		}
	}

	if l.cfg.MaxVisitors > 0 && len(entries) > l.cfg.MaxVisitors {
		slices.SortFunc(entries, func(a, b entry) int {
			return a.lastSeen.Compare(b.lastSeen)
		})
		toEvict := len(entries) - l.cfg.MaxVisitors
		for i := range toEvict {
			delete(l.visitors, entries[i].ip)
		}
		slog.Warn("rate limiter visitor map cap enforced",
			"evicted", toEvict, "max_visitors", l.cfg.MaxVisitors, "remaining", len(l.visitors))
	}
}

func (l *rateLimiter) check(ctx context.Context, method string) error {
	if l == nil {
		return nil
	}
	ip := peerIP(ctx)
	if l.allow(ip) {
		return nil
	}
	slog.Warn("rate limit exceeded", "peer", ip, "method", method)
	return kverr.New(kverr.CodeServerRateLimited, "rate limit exceeded",
		kverr.FieldMethod(method), kverr.Field("peer", ip))
}

func (l *rateLimiter) unaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := l.check(ctx, info.FullMethod); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func (l *rateLimiter) streamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := l.check(ss.Context(), info.FullMethod); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}

// peerIP strips the port so a client opening several connections shares
// one bucket.
func peerIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
