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

const vCentersPath = resourceGroupPath + "/vcenters"

// VCentersClient manages vCenters connected through Azure Arc.
type VCentersClient struct {
	*azureclient.Client
}

// NewVCentersClient creates a new VCentersClient
func NewVCentersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*VCentersClient, error) {
	client, err := newClient("connectedvmware.VCentersClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &VCentersClient{Client: client}, nil
}

func (c *VCentersClient) vCenter(operation, method, resourceGroupName, vcenterName string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, vCentersPath+"/{vcenterName}", statusCodes...).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("vcenterName", vcenterName)
}

// Get implements vCenter GET method.
func (c *VCentersClient) Get(ctx context.Context, resourceGroupName, vcenterName string) (VCenter, error) {
	return azureclient.Invoke[VCenter](ctx, c.Client, c.vCenter("Get", http.MethodGet, resourceGroupName, vcenterName, http.StatusOK))
}

// Create or update vCenter.
func (c *VCentersClient) Create(ctx context.Context, resourceGroupName, vcenterName string, body VCenter) (azureclient.Result[VCenter], error) {
	b := c.vCenter("Create", http.MethodPut, resourceGroupName, vcenterName, http.StatusOK, http.StatusCreated).
		Body(body)

	return azureclient.InvokeResult[VCenter](ctx, c.Client, b)
}

// Update the tags of a vCenter.
func (c *VCentersClient) Update(ctx context.Context, resourceGroupName, vcenterName string, body ResourcePatch) (VCenter, error) {
	b := c.vCenter("Update", http.MethodPatch, resourceGroupName, vcenterName, http.StatusOK).
		Body(body)

	return azureclient.Invoke[VCenter](ctx, c.Client, b)
}

// Delete a vCenter. Force removes the Azure resource even when the vCenter
// cannot be reached.
func (c *VCentersClient) Delete(ctx context.Context, resourceGroupName, vcenterName string, options *VCentersClientDeleteOptions) (azureclient.Response, error) {
	if options == nil {
		options = &VCentersClientDeleteOptions{}
	}

	b := c.vCenter("Delete", http.MethodDelete, resourceGroupName, vcenterName, http.StatusOK, http.StatusAccepted, http.StatusNoContent)

	return c.InvokeNoContent(ctx, boolQuery(b, "force", options.Force))
}

// NewListPager lists the vCenters in a subscription.
func (c *VCentersClient) NewListPager() *runtime.Pager[azureclient.Page[VCenter]] {
	b := azureclient.NewRequestBuilder("NewListPager", http.MethodGet, "/subscriptions/{subscriptionId}/providers/Microsoft.ConnectedVMwarevSphere/vcenters", http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID())

	return azureclient.NewPager[VCenter](c.Client, b)
}

// NewListByResourceGroupPager lists the vCenters in a resource group.
func (c *VCentersClient) NewListByResourceGroupPager(resourceGroupName string) *runtime.Pager[azureclient.Page[VCenter]] {
	b := azureclient.NewRequestBuilder("NewListByResourceGroupPager", http.MethodGet, vCentersPath, http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName)

	return azureclient.NewPager[VCenter](c.Client, b)
}

func (c *VCentersClient) List(ctx context.Context) ([]VCenter, error) {
	return azureclient.Collect[VCenter](ctx, c.NewListPager())
}

func (c *VCentersClient) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]VCenter, error) {
	return azureclient.Collect[VCenter](ctx, c.NewListByResourceGroupPager(resourceGroupName))
}
