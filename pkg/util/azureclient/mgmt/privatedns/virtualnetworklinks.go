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

// VirtualNetworkLinksClient manages the virtual network links of a Private
// DNS zone.
type VirtualNetworkLinksClient struct {
	*azureclient.Client
}

// NewVirtualNetworkLinksClient creates a new VirtualNetworkLinksClient
func NewVirtualNetworkLinksClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*VirtualNetworkLinksClient, error) {
	client, err := newClient("privatedns.VirtualNetworkLinksClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &VirtualNetworkLinksClient{Client: client}, nil
}

func (c *VirtualNetworkLinksClient) virtualNetworkLink(operation, method, resourceGroupName, privateZoneName, virtualNetworkLinkName string, statusCodes ...int) *azureclient.RequestBuilder {
	return privateZone(c.Client, operation, method, "/virtualNetworkLinks/{virtualNetworkLinkName}", resourceGroupName, privateZoneName, statusCodes...).
		PathParam("virtualNetworkLinkName", virtualNetworkLinkName)
}

func (c *VirtualNetworkLinksClient) Get(ctx context.Context, resourceGroupName, privateZoneName, virtualNetworkLinkName string) (VirtualNetworkLink, error) {
	return azureclient.Invoke[VirtualNetworkLink](ctx, c.Client, c.virtualNetworkLink("Get", http.MethodGet, resourceGroupName, privateZoneName, virtualNetworkLinkName, http.StatusOK))
}

func (c *VirtualNetworkLinksClient) CreateOrUpdate(ctx context.Context, resourceGroupName, privateZoneName, virtualNetworkLinkName string, parameters VirtualNetworkLink, options *VirtualNetworkLinksClientCreateOrUpdateOptions) (azureclient.Result[VirtualNetworkLink], error) {
	if options == nil {
		options = &VirtualNetworkLinksClientCreateOrUpdateOptions{}
	}

	b := c.virtualNetworkLink("CreateOrUpdate", http.MethodPut, resourceGroupName, privateZoneName, virtualNetworkLinkName, http.StatusOK, http.StatusCreated, http.StatusAccepted).
		Header("If-Match", options.IfMatch).
		Header("If-None-Match", options.IfNoneMatch).
		Body(parameters)

	return azureclient.InvokeResult[VirtualNetworkLink](ctx, c.Client, b)
}

func (c *VirtualNetworkLinksClient) Delete(ctx context.Context, resourceGroupName, privateZoneName, virtualNetworkLinkName string, options *VirtualNetworkLinksClientDeleteOptions) (azureclient.Response, error) {
	if options == nil {
		options = &VirtualNetworkLinksClientDeleteOptions{}
	}

	b := c.virtualNetworkLink("Delete", http.MethodDelete, resourceGroupName, privateZoneName, virtualNetworkLinkName, http.StatusOK, http.StatusAccepted, http.StatusNoContent).
		Header("If-Match", options.IfMatch)

	return c.InvokeNoContent(ctx, b)
}

// NewListPager lists the virtual network links to the specified Private DNS zone.
func (c *VirtualNetworkLinksClient) NewListPager(resourceGroupName, privateZoneName string, options *VirtualNetworkLinksClientListOptions) *runtime.Pager[azureclient.Page[VirtualNetworkLink]] {
	if options == nil {
		options = &VirtualNetworkLinksClientListOptions{}
	}

	b := privateZone(c.Client, "NewListPager", http.MethodGet, "/virtualNetworkLinks", resourceGroupName, privateZoneName, http.StatusOK)

	return azureclient.NewPager[VirtualNetworkLink](c.Client, top(b, options.Top))
}

func (c *VirtualNetworkLinksClient) List(ctx context.Context, resourceGroupName, privateZoneName string, options *VirtualNetworkLinksClientListOptions) ([]VirtualNetworkLink, error) {
	return azureclient.Collect[VirtualNetworkLink](ctx, c.NewListPager(resourceGroupName, privateZoneName, options))
}
