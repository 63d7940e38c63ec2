// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sigil-dev/kvstore/internal/config"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// NewRootCmd creates the root kvstore command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kvstore",
		Short:         "kvstore: textbook chunk and embedding store",
		Long:          "kvstore serves a key-value store of textbook chunks and their embeddings over gRPC, and talks to a running server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initViper(cmd)
		},
	}

	// Global flags; these map to viper keys via initViper.
	root.PersistentFlags().StringP("config", "c", "", "path to config file")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
		newConfigCmd(),
		newPutCmd(),
		newGetCmd(),
		newDeleteCmd(),
		newListCmd(),
		newStreamCmd(),
		newHealthCmd(),
	)

	return root
}

// initViper sets up the global Viper with defaults, env bindings, flag
// bindings, and optional config file so the standard precedence
// (flag > env > file > defaults) is handled uniformly. It then installs
// the default slog handler.
func initViper(cmd *cobra.Command) error {
	v := viper.GetViper()

	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return kverr.Errorf(kverr.CodeConfigLoadReadFailure, "loading %s: %w", envFile, err)
		}
	}

	config.SetDefaults(v)
	config.SetupEnv(v)

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return kverr.Errorf(kverr.CodeConfigLoadReadFailure, "reading config file: %w", err)
		}
	} else {
		// SetConfigType is omitted so viper does not fall back to the bare
		// name, which collides with the ./kvstore binary.
		v.SetConfigName("kvstore")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kvstore")
		v.AddConfigPath("/etc/kvstore")
		// No config file is fine; defaults and env vars still apply.
		// Parse or permission errors must surface.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return kverr.Errorf(kverr.CodeConfigLoadReadFailure, "reading config: %w", err)
			}
			// Only the server gets a bootstrapped config in ~/.config/kvstore/.
			if cmd.Name() == "serve" {
				if path := config.BootstrapConfig(); path != "" {
					v.SetConfigFile(path)
					if err := v.ReadInConfig(); err != nil {
						return kverr.Errorf(kverr.CodeConfigLoadReadFailure, "reading bootstrapped config: %w", err)
					}
				}
			}
		}
	}

	if err := v.BindPFlag("verbose", cmd.Root().PersistentFlags().Lookup("verbose")); err != nil {
		return kverr.Errorf(kverr.CodeCLISetupFailure, "binding verbose flag: %w", err)
	}

	setupLogging(cmd.ErrOrStderr(), v)
	return nil
}

// setupLogging installs the default slog handler from log.level and
// log.format. --verbose forces debug.
func setupLogging(w io.Writer, v *viper.Viper) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		level = slog.LevelInfo
	}
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if v.GetString("log.format") == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
