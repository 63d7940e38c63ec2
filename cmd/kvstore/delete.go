// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete KEY",
		Aliases: []string{"rm"},
		Short:   "Remove the entry stored under KEY",
		Args:    cobra.ExactArgs(1),
		RunE:    runDelete,
	}
	addClientFlags(cmd, defaultTimeout)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClientFromFlags(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = c.Close() }()

	resp, err := c.Delete(ctx, &kvstorev1.DeleteRequest{Key: args[0]})
	if err != nil {
		return c.callError(err, "delete")
	}

	if resp.GetDeleted() {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
	} else {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%q not found\n", args[0])
	}
	return err
}
