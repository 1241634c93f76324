package avs

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

const (
	privateCloudsPath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.AVS/privateClouds"
	privateCloudPath  = privateCloudsPath + "/{privateCloudName}"
)

// PrivateCloudsClient manages Microsoft.AVS/privateClouds.
type PrivateCloudsClient struct {
	*azureclient.Client
}

// NewPrivateCloudsClient creates a new PrivateCloudsClient
func NewPrivateCloudsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*PrivateCloudsClient, error) {
	client, err := newClient("avs.PrivateCloudsClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &PrivateCloudsClient{Client: client}, nil
}

func (c *PrivateCloudsClient) privateCloud(operation, method, resourceGroupName, privateCloudName string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, privateCloudPath, statusCodes...).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("privateCloudName", privateCloudName)
}

func (c *PrivateCloudsClient) createOrUpdate(resourceGroupName, privateCloudName string, privateCloud PrivateCloud) *azureclient.RequestBuilder {
	return c.privateCloud("CreateOrUpdate", http.MethodPut, resourceGroupName, privateCloudName, http.StatusOK, http.StatusCreated).
		Body(privateCloud)
}

// Get a PrivateCloud
func (c *PrivateCloudsClient) Get(ctx context.Context, resourceGroupName, privateCloudName string) (PrivateCloud, error) {
	return azureclient.Invoke[PrivateCloud](ctx, c.Client, c.privateCloud("Get", http.MethodGet, resourceGroupName, privateCloudName, http.StatusOK))
}

// CreateOrUpdate creates or updates a PrivateCloud. A 201 means provisioning
// continues in the background.
func (c *PrivateCloudsClient) CreateOrUpdate(ctx context.Context, resourceGroupName, privateCloudName string, privateCloud PrivateCloud) (azureclient.Result[PrivateCloud], error) {
	return azureclient.InvokeResult[PrivateCloud](ctx, c.Client, c.createOrUpdate(resourceGroupName, privateCloudName, privateCloud))
}

// Update a PrivateCloud
func (c *PrivateCloudsClient) Update(ctx context.Context, resourceGroupName, privateCloudName string, privateCloudUpdate PrivateCloudUpdate) (azureclient.Result[PrivateCloud], error) {
	b := c.privateCloud("Update", http.MethodPatch, resourceGroupName, privateCloudName, http.StatusOK, http.StatusCreated).
		Body(privateCloudUpdate)

	return azureclient.InvokeResult[PrivateCloud](ctx, c.Client, b)
}

// Delete a PrivateCloud
func (c *PrivateCloudsClient) Delete(ctx context.Context, resourceGroupName, privateCloudName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, c.privateCloud("Delete", http.MethodDelete, resourceGroupName, privateCloudName, http.StatusOK, http.StatusAccepted, http.StatusNoContent))
}

// ListAdminCredentials lists the admin credentials for the private cloud
func (c *PrivateCloudsClient) ListAdminCredentials(ctx context.Context, resourceGroupName, privateCloudName string) (AdminCredentials, error) {
	b := azureclient.NewRequestBuilder("ListAdminCredentials", http.MethodPost, privateCloudPath+"/listAdminCredentials", http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("privateCloudName", privateCloudName)

	return azureclient.Invoke[AdminCredentials](ctx, c.Client, b)
}

// NewListPager lists the PrivateClouds of a resource group
func (c *PrivateCloudsClient) NewListPager(resourceGroupName string) *runtime.Pager[azureclient.Page[PrivateCloud]] {
	b := azureclient.NewRequestBuilder("NewListPager", http.MethodGet, privateCloudsPath, http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName)

	return azureclient.NewPager[PrivateCloud](c.Client, b)
}

// NewListInSubscriptionPager lists the PrivateClouds of the subscription
func (c *PrivateCloudsClient) NewListInSubscriptionPager() *runtime.Pager[azureclient.Page[PrivateCloud]] {
	b := azureclient.NewRequestBuilder("NewListInSubscriptionPager", http.MethodGet, "/subscriptions/{subscriptionId}/providers/Microsoft.AVS/privateClouds", http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID())

	return azureclient.NewPager[PrivateCloud](c.Client, b)
}
