package privatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

const (
	resourceType = "Microsoft.Network/privateDnsZones"

	privateZonesPath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Network/privateDnsZones"
	privateZonePath  = privateZonesPath + "/{privateZoneName}"
)

func newClient(name, subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*azureclient.Client, error) {
	return azureclient.NewClient(name, subscriptionID, azureclient.APIVersion(resourceType), credential, options)
}

func privateZone(c *azureclient.Client, operation, method, suffix, resourceGroupName, privateZoneName string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, privateZonePath+suffix, statusCodes...).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("privateZoneName", privateZoneName)
}

// top sets the $top page size hint when one was given.
func top(b *azureclient.RequestBuilder, top *int32) *azureclient.RequestBuilder {
	if top != nil {
		b.Query("$top", strconv.FormatInt(int64(*top), 10))
	}
	return b
}
