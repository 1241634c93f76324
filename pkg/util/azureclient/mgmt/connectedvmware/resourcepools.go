package connectedvmware

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

const resourcePoolsPath = resourceGroupPath + "/resourcePools"

// ResourcePoolsClient manages the vCenter resource pools projected into Azure.
type ResourcePoolsClient struct {
	*azureclient.Client
}

// NewResourcePoolsClient creates a new ResourcePoolsClient
func NewResourcePoolsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*ResourcePoolsClient, error) {
	client, err := newClient("connectedvmware.ResourcePoolsClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &ResourcePoolsClient{Client: client}, nil
}

func (c *ResourcePoolsClient) resourcePool(operation, method, resourceGroupName, resourcePoolName string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, resourcePoolsPath+"/{resourcePoolName}", statusCodes...).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("resourcePoolName", resourcePoolName)
}

func (c *ResourcePoolsClient) Get(ctx context.Context, resourceGroupName, resourcePoolName string) (ResourcePool, error) {
	return azureclient.Invoke[ResourcePool](ctx, c.Client, c.resourcePool("Get", http.MethodGet, resourceGroupName, resourcePoolName, http.StatusOK))
}

func (c *ResourcePoolsClient) Create(ctx context.Context, resourceGroupName, resourcePoolName string, body ResourcePool) (azureclient.Result[ResourcePool], error) {
	b := c.resourcePool("Create", http.MethodPut, resourceGroupName, resourcePoolName, http.StatusOK, http.StatusCreated).
		Body(body)

	return azureclient.InvokeResult[ResourcePool](ctx, c.Client, b)
}

func (c *ResourcePoolsClient) Delete(ctx context.Context, resourceGroupName, resourcePoolName string, options *ResourcePoolsClientDeleteOptions) (azureclient.Response, error) {
	if options == nil {
		options = &ResourcePoolsClientDeleteOptions{}
	}

	b := c.resourcePool("Delete", http.MethodDelete, resourceGroupName, resourcePoolName, http.StatusOK, http.StatusAccepted, http.StatusNoContent)

	return c.InvokeNoContent(ctx, boolQuery(b, "force", options.Force))
}

func (c *ResourcePoolsClient) NewListByResourceGroupPager(resourceGroupName string) *runtime.Pager[azureclient.Page[ResourcePool]] {
	b := azureclient.NewRequestBuilder("NewListByResourceGroupPager", http.MethodGet, resourcePoolsPath, http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName)

	return azureclient.NewPager[ResourcePool](c.Client, b)
}
