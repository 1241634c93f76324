package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/armclients/pkg/metrics"
	"github.com/Azure/armclients/pkg/util/azureclient"
)

const (
	EnvEnvironment    = "AZURE_ENVIRONMENT"
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvLogLevel       = "LOG_LEVEL"
)

// Core collects the configuration every armctl command needs: the cloud to
// talk to, the subscription to act on and how to authenticate.
type Core interface {
	Environment() *azureclient.ARMEnvironment
	SubscriptionID() string
	Logger() *logrus.Entry

	// ClientOptions returns the options resource clients are created with.
	ClientOptions() *arm.ClientOptions
	NewTokenCredential() (azcore.TokenCredential, error)

	GetEnv(string) string
	ValidateVars(...string) error
}

type core struct {
	cfg *viper.Viper
	log *logrus.Entry

	env            *azureclient.ARMEnvironment
	subscriptionID string
	emitter        metrics.Emitter
}

// NewConfig returns a viper instance reading the process environment, with
// defaults for the optional settings.
func NewConfig() *viper.Viper {
	cfg := viper.New()
	cfg.AutomaticEnv()
	cfg.SetDefault(EnvEnvironment, azureclient.PublicCloud.Name)
	cfg.SetDefault(EnvLogLevel, logrus.InfoLevel.String())

	return cfg
}

// NewCore validates cfg and returns a Core backed by it. emitter may be nil.
func NewCore(log *logrus.Entry, cfg *viper.Viper, emitter metrics.Emitter) (Core, error) {
	if err := ValidateVars(cfg, EnvSubscriptionID); err != nil {
		return nil, err
	}

	subscriptionID := cfg.GetString(EnvSubscriptionID)
	if _, err := uuid.Parse(subscriptionID); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", EnvSubscriptionID, subscriptionID, err)
	}

	env, err := azureclient.EnvironmentFromName(cfg.GetString(EnvEnvironment))
	if err != nil {
		return nil, err
	}

	log.Debugf("using cloud %s", env.ActualCloudName)

	return &core{
		cfg:            cfg,
		log:            log,
		env:            &env,
		subscriptionID: strings.ToLower(subscriptionID),
		emitter:        emitter,
	}, nil
}

func (c *core) Environment() *azureclient.ARMEnvironment {
	return c.env
}

func (c *core) SubscriptionID() string {
	return c.subscriptionID
}

func (c *core) Logger() *logrus.Entry {
	return c.log
}

func (c *core) ClientOptions() *arm.ClientOptions {
	return c.env.ArmClientOptions(c.log, c.emitter)
}

func (c *core) NewTokenCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(c.env.DefaultAzureCredentialOptions())
}

func (c *core) GetEnv(name string) string {
	return c.cfg.GetString(name)
}

func (c *core) ValidateVars(vars ...string) error {
	return ValidateVars(c.cfg, vars...)
}

// ValidateVars returns an error naming the first of vars which is unset.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	for _, v := range vars {
		if cfg.GetString(v) == "" {
			return fmt.Errorf("environment variable %q unset", v)
		}
	}

	return nil
}
