// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/sigil-dev/kvstore/internal/config"
	"github.com/sigil-dev/kvstore/internal/server"
	"github.com/sigil-dev/kvstore/internal/store"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the kvstore gRPC server",
		Long: `Run the kvstore gRPC server.

The store is loaded from the snapshot file at startup and saved back to it
once on SIGINT or SIGTERM.`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", config.DefaultPort, "port to listen on")
	cmd.Flags().String("snapshot", "", "snapshot file path")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	if err := v.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		return kverr.Errorf(kverr.CodeCLISetupFailure, "binding port flag: %w", err)
	}
	if err := v.BindPFlag("storage.snapshot_path", cmd.Flags().Lookup("snapshot")); err != nil {
		return kverr.Errorf(kverr.CodeCLISetupFailure, "binding snapshot flag: %w", err)
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	compression, err := cfg.SnapshotCompression()
	if err != nil {
		return err
	}

	if err := prepareSnapshotDir(cfg.Storage.SnapshotPath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.New(ctx, store.Options{
		SnapshotPath:  cfg.Storage.SnapshotPath,
		Compression:   compression,
		ServerName:    store.DefaultServerName,
		ServerVersion: version,
	})
	if err != nil {
		return err
	}

	if used := v.ConfigFileUsed(); used != "" {
		config.WarnInsecurePermissions(used)
	}
	config.WarnInsecurePermissions(cfg.Storage.SnapshotPath)

	srv, err := server.New(server.Config{
		ListenAddr:  cfg.ListenAddr(),
		GracePeriod: cfg.Server.GracePeriod,
		RateLimit: server.RateLimitConfig{
			RequestsPerSecond: cfg.Server.RateLimit.RPS,
			Burst:             cfg.Server.RateLimit.Burst,
		},
		Reflection: cfg.Server.Reflection,
	}, st)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil && cmd.Context().Err() == nil {
			slog.Info("received shutdown signal")
		}
		return nil
	})

	return g.Wait()
}
