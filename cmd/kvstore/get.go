// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"github.com/spf13/cobra"

	kvstorev1 "github.com/sigil-dev/kvstore/internal/gen/proto/kvstore/v1"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the text chunk stored under KEY",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}
	addClientFlags(cmd, defaultTimeout)
	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClientFromFlags(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer func() { _ = c.Close() }()

	resp, err := c.GetText(ctx, &kvstorev1.GetTextRequest{Key: args[0]})
	if err != nil {
		return c.callError(err, "get")
	}
	if !resp.GetFound() {
		return kverr.New(kverr.CodeStoreEntryNotFound, "key not found", kverr.FieldKey(args[0]))
	}

	out := cmd.OutOrStdout()
	text := resp.GetTextbookChunk()
	if _, err := out.Write(text); err != nil {
		return err
	}
	if len(text) == 0 || text[len(text)-1] != '\n' {
		_, err = out.Write([]byte{'\n'})
	}
	return err
}
