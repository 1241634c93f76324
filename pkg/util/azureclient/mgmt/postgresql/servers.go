package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

// ServersClient manages PostgreSQL flexible servers.
type ServersClient struct {
	*azureclient.Client
}

// NewServersClient creates a new ServersClient
func NewServersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*ServersClient, error) {
	client, err := newClient("postgresql.ServersClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &ServersClient{Client: client}, nil
}

func (c *ServersClient) create(resourceGroupName, serverName string, parameters Server) *azureclient.RequestBuilder {
	return server(c.Client, "Create", http.MethodPut, "", resourceGroupName, serverName, http.StatusOK, http.StatusCreated, http.StatusAccepted).
		Body(parameters)
}

// Get gets information about a server.
func (c *ServersClient) Get(ctx context.Context, resourceGroupName, serverName string) (Server, error) {
	return azureclient.Invoke[Server](ctx, c.Client, server(c.Client, "Get", http.MethodGet, "", resourceGroupName, serverName, http.StatusOK))
}

// Create creates a new server. The service usually answers 202 and
// provisions the server asynchronously.
func (c *ServersClient) Create(ctx context.Context, resourceGroupName, serverName string, parameters Server) (azureclient.Result[Server], error) {
	return azureclient.InvokeResult[Server](ctx, c.Client, c.create(resourceGroupName, serverName, parameters))
}

// Update updates an existing server. The request body can contain one to
// many of the properties present in the normal server definition.
func (c *ServersClient) Update(ctx context.Context, resourceGroupName, serverName string, parameters ServerForUpdate) (azureclient.Result[Server], error) {
	b := server(c.Client, "Update", http.MethodPatch, "", resourceGroupName, serverName, http.StatusOK, http.StatusAccepted).
		Body(parameters)

	return azureclient.InvokeResult[Server](ctx, c.Client, b)
}

// Delete deletes a server.
func (c *ServersClient) Delete(ctx context.Context, resourceGroupName, serverName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, server(c.Client, "Delete", http.MethodDelete, "", resourceGroupName, serverName, http.StatusOK, http.StatusAccepted, http.StatusNoContent))
}

// Restart restarts a server. parameters is optional.
func (c *ServersClient) Restart(ctx context.Context, resourceGroupName, serverName string, parameters *RestartParameter) (azureclient.Response, error) {
	b := server(c.Client, "Restart", http.MethodPost, "/restart", resourceGroupName, serverName, http.StatusOK, http.StatusAccepted)
	if parameters != nil {
		b.Body(*parameters)
	}

	return c.InvokeNoContent(ctx, b)
}

// Start starts a stopped server.
func (c *ServersClient) Start(ctx context.Context, resourceGroupName, serverName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, server(c.Client, "Start", http.MethodPost, "/start", resourceGroupName, serverName, http.StatusOK, http.StatusAccepted))
}

// Stop stops a server.
func (c *ServersClient) Stop(ctx context.Context, resourceGroupName, serverName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, server(c.Client, "Stop", http.MethodPost, "/stop", resourceGroupName, serverName, http.StatusOK, http.StatusAccepted))
}

// NewListPager lists all the servers in the subscription.
func (c *ServersClient) NewListPager() *runtime.Pager[azureclient.Page[Server]] {
	b := azureclient.NewRequestBuilder("NewListPager", http.MethodGet, "/subscriptions/{subscriptionId}/providers/Microsoft.DBforPostgreSQL/flexibleServers", http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID())

	return azureclient.NewPager[Server](c.Client, b)
}

// NewListByResourceGroupPager lists all the servers in a resource group.
func (c *ServersClient) NewListByResourceGroupPager(resourceGroupName string) *runtime.Pager[azureclient.Page[Server]] {
	b := azureclient.NewRequestBuilder("NewListByResourceGroupPager", http.MethodGet, serversPath, http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName)

	return azureclient.NewPager[Server](c.Client, b)
}
