package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (c *command) newListCommand() *cobra.Command {
	var resourceGroup string
	var top int32

	cc := &cobra.Command{
		Use:   "list <kind>",
		Short: "List resource names",
		Long:  "List resource names. kind is one of " + strings.Join(kindNames(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := findKind(args[0])
			if err != nil {
				return err
			}

			if top < 0 {
				return fmt.Errorf("--top must not be negative")
			}

			return c.run(cmd, func(ctx context.Context, log *logrus.Entry, cl *clients) error {
				var pageSize *int32
				if top > 0 {
					pageSize = to.Int32Ptr(top)
				}

				n, err := k.list(ctx, cl, resourceGroup, pageSize)
				if err != nil {
					return err
				}

				if top > 0 && len(n) > int(top) {
					n = n[:top]
				}

				log.Debugf("listed %d %s", len(n), k.name)
				for _, name := range n {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}

	cc.Flags().StringVarP(&resourceGroup, "resource-group", "g", "", "only list resources in this resource group")
	cc.Flags().Int32Var(&top, "top", 0, "maximum number of resources to list")

	return cc
}
