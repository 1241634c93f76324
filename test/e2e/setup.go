package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/sirupsen/logrus"

	"github.com/Azure/armclients/pkg/env"
	"github.com/Azure/armclients/pkg/metrics/noop"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/avs"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/connectedvmware"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/postgresql"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/privatedns"
	utillog "github.com/Azure/armclients/pkg/util/log"
)

type clientSet struct {
	PrivateClouds   *avs.PrivateCloudsClient
	FlexibleServers *postgresql.ServersClient
	PrivateZones    *privatedns.PrivateZonesClient
	VCenters        *connectedvmware.VCentersClient
}

var (
	log     *logrus.Entry
	_env    env.Core
	clients *clientSet

	credential azcore.TokenCredential
	options    *arm.ClientOptions
)

func newClientSet(subscriptionID string) (*clientSet, error) {
	privateClouds, err := avs.NewPrivateCloudsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	flexibleServers, err := postgresql.NewServersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	privateZones, err := privatedns.NewPrivateZonesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	vCenters, err := connectedvmware.NewVCentersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &clientSet{
		PrivateClouds:   privateClouds,
		FlexibleServers: flexibleServers,
		PrivateZones:    privateZones,
		VCenters:        vCenters,
	}, nil
}

func setup() error {
	cfg := env.NewConfig()

	log = utillog.GetLogger(cfg.GetString(env.EnvLogLevel))

	var err error
	_env, err = env.NewCore(log, cfg, &noop.Noop{})
	if err != nil {
		return err
	}

	credential, err = _env.NewTokenCredential()
	if err != nil {
		return err
	}
	options = _env.ClientOptions()

	clients, err = newClientSet(_env.SubscriptionID())
	return err
}

var _ = BeforeSuite(func() {
	if os.Getenv(env.EnvSubscriptionID) == "" {
		Skip(env.EnvSubscriptionID + " unset, skipping e2e tests")
	}

	SetDefaultEventuallyTimeout(5 * time.Minute)
	SetDefaultEventuallyPollingInterval(10 * time.Second)

	if err := setup(); err != nil {
		panic(err)
	}
})
