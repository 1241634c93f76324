package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (c *command) newOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations <namespace>",
		Short: "List the operations of a resource provider, e.g. Microsoft.AVS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, log *logrus.Entry, cl *clients) error {
				oc, err := cl.operations(args[0])
				if err != nil {
					return err
				}

				ops, err := oc.List(ctx)
				if err != nil {
					return err
				}

				for _, op := range ops {
					if op.Name != nil {
						fmt.Fprintln(cmd.OutOrStdout(), *op.Name)
					}
				}
				return nil
			})
		},
	}
}
