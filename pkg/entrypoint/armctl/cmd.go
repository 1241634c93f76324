package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Azure/armclients/pkg/env"
	"github.com/Azure/armclients/pkg/metrics"
	"github.com/Azure/armclients/pkg/metrics/noop"
	pkgprometheus "github.com/Azure/armclients/pkg/metrics/prometheus"
	utillog "github.com/Azure/armclients/pkg/util/log"
)

const flagMetrics = "metrics"

type command struct {
	cfg        *viper.Viper
	newClients func(env.Core) (*clients, error)
}

// NewCommand returns the cobra command for "armctl".
func NewCommand() *cobra.Command {
	return newCommand(env.NewConfig(), newClients)
}

func newCommand(cfg *viper.Viper, newClients func(env.Core) (*clients, error)) *cobra.Command {
	c := &command{
		cfg:        cfg,
		newClients: newClients,
	}

	cc := &cobra.Command{
		Use:           "armctl",
		Short:         "Inspect AVS, PostgreSQL, Private DNS and Arc vSphere resources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cc.PersistentFlags()
	flags.String("subscription", "", "subscription ID (default $"+env.EnvSubscriptionID+")")
	flags.String("environment", "", "Azure cloud environment (default $"+env.EnvEnvironment+" or AzurePublicCloud)")
	flags.String("loglevel", "", "log level (default $"+env.EnvLogLevel+" or info)")
	flags.Bool(flagMetrics, false, "print a summary of the ARM requests made")

	// BindPFlag only fails for a nil flag
	_ = cfg.BindPFlag(env.EnvSubscriptionID, flags.Lookup("subscription"))
	_ = cfg.BindPFlag(env.EnvEnvironment, flags.Lookup("environment"))
	_ = cfg.BindPFlag(env.EnvLogLevel, flags.Lookup("loglevel"))
	_ = cfg.BindPFlag(flagMetrics, flags.Lookup(flagMetrics))

	cc.AddCommand(
		c.newGetCommand(),
		c.newListCommand(),
		c.newInventoryCommand(),
		c.newOperationsCommand(),
	)

	return cc
}

// run sets up logging, configuration and clients, then calls f.
func (c *command) run(cmd *cobra.Command, f func(ctx context.Context, log *logrus.Entry, cl *clients) error) error {
	ctx := cmd.Context()
	log := utillog.GetLogger(c.cfg.GetString(env.EnvLogLevel))
	utillog.ForwardSDKEvents(log)

	var emitter metrics.Emitter = &noop.Noop{}
	var registry *prometheus.Registry
	if c.cfg.GetBool(flagMetrics) {
		registry = prometheus.NewRegistry()
		emitter = pkgprometheus.New(registry)
	}

	core, err := env.NewCore(log, c.cfg, emitter)
	if err != nil {
		return err
	}

	cl, err := c.newClients(core)
	if err != nil {
		return err
	}

	err = f(ctx, log, cl)

	if registry != nil {
		if serr := printRequestSummary(cmd.ErrOrStderr(), registry); serr != nil {
			log.Warn(serr)
		}
	}

	return err
}
