// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
	"github.com/sigil-dev/kvstore/pkg/health"
)

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show server name, version and key count",
		Args:  cobra.NoArgs,
		RunE:  runHealth,
	}
	addClientFlags(cmd, defaultTimeout)
	cmd.Flags().Bool("json", false, "print the report as JSON")
	return cmd
}

func runHealth(cmd *cobra.Command, _ []string) error {
	c, ctx, cancel, err := newClientFromFlags(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = c.Close() }()

	resp, err := c.Health(ctx, &kvstorev1.HealthRequest{})
	if err != nil {
		return c.callError(err, "health")
	}

	report := health.Report{
		ServerName:    resp.GetServerName(),
		ServerVersion: resp.GetServerVersion(),
		KeyCount:      resp.GetKeyCount(),
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return kverr.Wrap(err, kverr.CodeCLIResponseInvalid, "encoding health report")
		}
		return nil
	}

	_, err = fmt.Fprintf(out, "%s %s at %s: %d keys\n", report.ServerName, report.ServerVersion, c.addr, report.KeyCount)
	return err
}
