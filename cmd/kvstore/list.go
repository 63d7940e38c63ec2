// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored keys, sorted",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
	addClientFlags(cmd, defaultTimeout)
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	c, ctx, cancel, err := newClientFromFlags(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = c.Close() }()

	resp, err := c.List(ctx, &kvstorev1.ListRequest{})
	if err != nil {
		return c.callError(err, "list")
	}

	keys := slices.Clone(resp.GetKeys())
	slices.Sort(keys)
	out := cmd.OutOrStdout()
	for _, k := range keys {
		if _, err := fmt.Fprintln(out, k); err != nil {
			return err
		}
	}
	return nil
}
