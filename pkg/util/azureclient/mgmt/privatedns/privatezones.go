package privatedns

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

// PrivateZonesClient manages Private DNS zones.
type PrivateZonesClient struct {
	*azureclient.Client
}

// NewPrivateZonesClient creates a new PrivateZonesClient
func NewPrivateZonesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*PrivateZonesClient, error) {
	client, err := newClient("privatedns.PrivateZonesClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &PrivateZonesClient{Client: client}, nil
}

func (c *PrivateZonesClient) createOrUpdate(resourceGroupName, privateZoneName string, parameters PrivateZone, options *PrivateZonesClientCreateOrUpdateOptions) *azureclient.RequestBuilder {
	if options == nil {
		options = &PrivateZonesClientCreateOrUpdateOptions{}
	}

	return privateZone(c.Client, "CreateOrUpdate", http.MethodPut, "", resourceGroupName, privateZoneName, http.StatusOK, http.StatusCreated, http.StatusAccepted).
		Header("If-Match", options.IfMatch).
		Header("If-None-Match", options.IfNoneMatch).
		Body(parameters)
}

// Get gets a Private DNS zone. Retrieves the zone properties, but not the
// virtual networks links or the record sets within the zone.
func (c *PrivateZonesClient) Get(ctx context.Context, resourceGroupName, privateZoneName string) (PrivateZone, error) {
	return azureclient.Invoke[PrivateZone](ctx, c.Client, privateZone(c.Client, "Get", http.MethodGet, "", resourceGroupName, privateZoneName, http.StatusOK))
}

// CreateOrUpdate creates or updates a Private DNS zone. Does not modify Links
// to virtual networks or DNS records within the zone.
func (c *PrivateZonesClient) CreateOrUpdate(ctx context.Context, resourceGroupName, privateZoneName string, parameters PrivateZone, options *PrivateZonesClientCreateOrUpdateOptions) (azureclient.Result[PrivateZone], error) {
	return azureclient.InvokeResult[PrivateZone](ctx, c.Client, c.createOrUpdate(resourceGroupName, privateZoneName, parameters, options))
}

// Update updates a Private DNS zone. Does not modify virtual network links or
// DNS records within the zone.
func (c *PrivateZonesClient) Update(ctx context.Context, resourceGroupName, privateZoneName string, parameters PrivateZone, options *PrivateZonesClientUpdateOptions) (azureclient.Result[PrivateZone], error) {
	if options == nil {
		options = &PrivateZonesClientUpdateOptions{}
	}

	b := privateZone(c.Client, "Update", http.MethodPatch, "", resourceGroupName, privateZoneName, http.StatusOK, http.StatusAccepted).
		Header("If-Match", options.IfMatch).
		Body(parameters)

	return azureclient.InvokeResult[PrivateZone](ctx, c.Client, b)
}

// Delete deletes a Private DNS zone. WARNING: All DNS records in the zone will
// also be deleted. This operation cannot be undone. Private DNS zone cannot be
// deleted unless all virtual network links to it are removed.
func (c *PrivateZonesClient) Delete(ctx context.Context, resourceGroupName, privateZoneName string, options *PrivateZonesClientDeleteOptions) (azureclient.Response, error) {
	if options == nil {
		options = &PrivateZonesClientDeleteOptions{}
	}

	b := privateZone(c.Client, "Delete", http.MethodDelete, "", resourceGroupName, privateZoneName, http.StatusOK, http.StatusAccepted, http.StatusNoContent).
		Header("If-Match", options.IfMatch)

	return c.InvokeNoContent(ctx, b)
}

// NewListPager lists the Private DNS zones in all resource groups in a subscription.
func (c *PrivateZonesClient) NewListPager(options *PrivateZonesClientListOptions) *runtime.Pager[azureclient.Page[PrivateZone]] {
	if options == nil {
		options = &PrivateZonesClientListOptions{}
	}

	b := azureclient.NewRequestBuilder("NewListPager", http.MethodGet, "/subscriptions/{subscriptionId}/providers/Microsoft.Network/privateDnsZones", http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID())

	return azureclient.NewPager[PrivateZone](c.Client, top(b, options.Top))
}

// NewListByResourceGroupPager lists the Private DNS zones within a resource group.
func (c *PrivateZonesClient) NewListByResourceGroupPager(resourceGroupName string, options *PrivateZonesClientListOptions) *runtime.Pager[azureclient.Page[PrivateZone]] {
	if options == nil {
		options = &PrivateZonesClientListOptions{}
	}

	b := azureclient.NewRequestBuilder("NewListByResourceGroupPager", http.MethodGet, privateZonesPath, http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName)

	return azureclient.NewPager[PrivateZone](c.Client, top(b, options.Top))
}
