package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

func (c *ServersClient) List(ctx context.Context) ([]Server, error) {
	return azureclient.Collect[Server](ctx, c.NewListPager())
}

func (c *ServersClient) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]Server, error) {
	return azureclient.Collect[Server](ctx, c.NewListByResourceGroupPager(resourceGroupName))
}

func (c *ServersClient) CreateAndWait(ctx context.Context, resourceGroupName, serverName string, parameters Server) (Server, error) {
	return azureclient.InvokeAndWait[Server](ctx, c.Client, c.create(resourceGroupName, serverName, parameters))
}
