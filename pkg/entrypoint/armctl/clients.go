package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/armclients/pkg/entrypoint/$GOPACKAGE PrivateCloudsLister,FlexibleServersLister,PrivateZonesLister,VCentersLister,ResourceGetter,OperationsLister

import (
	"context"

	"github.com/Azure/armclients/pkg/api"
	"github.com/Azure/armclients/pkg/env"
	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/avs"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/connectedvmware"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/postgresql"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/privatedns"
)

type PrivateCloudsLister interface {
	List(ctx context.Context, resourceGroupName string) ([]avs.PrivateCloud, error)
	ListInSubscription(ctx context.Context) ([]avs.PrivateCloud, error)
}

type FlexibleServersLister interface {
	List(ctx context.Context) ([]postgresql.Server, error)
	ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]postgresql.Server, error)
}

type PrivateZonesLister interface {
	List(ctx context.Context, options *privatedns.PrivateZonesClientListOptions) ([]privatedns.PrivateZone, error)
	ListByResourceGroup(ctx context.Context, resourceGroupName string, options *privatedns.PrivateZonesClientListOptions) ([]privatedns.PrivateZone, error)
}

type VCentersLister interface {
	List(ctx context.Context) ([]connectedvmware.VCenter, error)
	ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]connectedvmware.VCenter, error)
}

type ResourceGetter interface {
	GetByID(ctx context.Context, resourceID string) (api.GenericResource, error)
}

type OperationsLister interface {
	List(ctx context.Context) ([]api.Operation, error)
}

var (
	_ PrivateCloudsLister   = &avs.PrivateCloudsClient{}
	_ FlexibleServersLister = &postgresql.ServersClient{}
	_ PrivateZonesLister    = &privatedns.PrivateZonesClient{}
	_ VCentersLister        = &connectedvmware.VCentersClient{}
	_ ResourceGetter        = &azureclient.ResourcesClient{}
	_ OperationsLister      = &azureclient.OperationsClient{}
)

// clients are the resource clients the commands work with.
type clients struct {
	privateClouds   PrivateCloudsLister
	flexibleServers FlexibleServersLister
	privateZones    PrivateZonesLister
	vCenters        VCentersLister
	resources       ResourceGetter
	operations      func(namespace string) (OperationsLister, error)
}

func newClients(core env.Core) (*clients, error) {
	credential, err := core.NewTokenCredential()
	if err != nil {
		return nil, err
	}

	subscriptionID := core.SubscriptionID()
	options := core.ClientOptions()

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

	resources, err := azureclient.NewResourcesClient(credential, options)
	if err != nil {
		return nil, err
	}

	return &clients{
		privateClouds:   privateClouds,
		flexibleServers: flexibleServers,
		privateZones:    privateZones,
		vCenters:        vCenters,
		resources:       resources,
		operations: func(namespace string) (OperationsLister, error) {
			return azureclient.NewOperationsClient(namespace, credential, options)
		},
	}, nil
}
