package avs

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

func (c *PrivateCloudsClient) List(ctx context.Context, resourceGroupName string) ([]PrivateCloud, error) {
	return azureclient.Collect[PrivateCloud](ctx, c.NewListPager(resourceGroupName))
}

func (c *PrivateCloudsClient) ListInSubscription(ctx context.Context) ([]PrivateCloud, error) {
	return azureclient.Collect[PrivateCloud](ctx, c.NewListInSubscriptionPager())
}

// CreateOrUpdateAndWait creates or updates a PrivateCloud and waits for
// provisioning to finish.
func (c *PrivateCloudsClient) CreateOrUpdateAndWait(ctx context.Context, resourceGroupName, privateCloudName string, privateCloud PrivateCloud) (PrivateCloud, error) {
	return azureclient.InvokeAndWait[PrivateCloud](ctx, c.Client, c.createOrUpdate(resourceGroupName, privateCloudName, privateCloud))
}
