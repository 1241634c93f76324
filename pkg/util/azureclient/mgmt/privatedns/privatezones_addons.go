package privatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

// List returns every Private DNS zone in the subscription.
func (c *PrivateZonesClient) List(ctx context.Context, options *PrivateZonesClientListOptions) ([]PrivateZone, error) {
	return azureclient.Collect[PrivateZone](ctx, c.NewListPager(options))
}

// ListByResourceGroup returns every Private DNS zone in a resource group.
func (c *PrivateZonesClient) ListByResourceGroup(ctx context.Context, resourceGroupName string, options *PrivateZonesClientListOptions) ([]PrivateZone, error) {
	return azureclient.Collect[PrivateZone](ctx, c.NewListByResourceGroupPager(resourceGroupName, options))
}

// CreateOrUpdateAndWait creates or updates a Private DNS zone and waits until
// the service has finished provisioning it.
func (c *PrivateZonesClient) CreateOrUpdateAndWait(ctx context.Context, resourceGroupName, privateZoneName string, parameters PrivateZone, options *PrivateZonesClientCreateOrUpdateOptions) (PrivateZone, error) {
	return azureclient.InvokeAndWait[PrivateZone](ctx, c.Client, c.createOrUpdate(resourceGroupName, privateZoneName, parameters, options))
}
