package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (c *command) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <resourceID>",
		Short: "Print a resource as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, log *logrus.Entry, cl *clients) error {
				r, err := cl.resources.GetByID(ctx, args[0])
				if err != nil {
					return err
				}

				b, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			})
		},
	}
}
