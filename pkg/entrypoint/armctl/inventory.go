package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const inventoryConcurrency = 4

func (c *command) newInventoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Count the resources of every kind in the subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, log *logrus.Entry, cl *clients) error {
				return inventory(ctx, log, cl, cmd.OutOrStdout())
			})
		},
	}
}

// inventory lists every kind concurrently. A kind which fails to list is
// left out of the table and its error is returned alongside those of any
// other failing kinds.
func inventory(ctx context.Context, log *logrus.Entry, cl *clients, w io.Writer) error {
	counts := make([]int, len(kinds))
	errs := make([]error, len(kinds))

	g := &errgroup.Group{}
	g.SetLimit(inventoryConcurrency)

	for i, k := range kinds {
		g.Go(func() error {
			n, err := k.list(ctx, cl, "", nil)
			if err != nil {
				log.WithField("kind", k.name).Warn(err)
				errs[i] = fmt.Errorf("%s: %w", k.name, err)
				return nil
			}
			counts[i] = len(n)
			return nil
		})
	}

	_ = g.Wait()

	var merr *multierror.Error
	table := tablewriter.NewWriter(w)
	table.Header("Kind", "Count")
	for i, k := range kinds {
		if errs[i] != nil {
			merr = multierror.Append(merr, errs[i])
			continue
		}
		if err := table.Append(k.name, strconv.Itoa(counts[i])); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	return merr.ErrorOrNil()
}
