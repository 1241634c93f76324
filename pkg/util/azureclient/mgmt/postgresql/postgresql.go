package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

const (
	providerNamespace = "Microsoft.DBforPostgreSQL"

	serversPath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.DBforPostgreSQL/flexibleServers"
	serverPath  = serversPath + "/{serverName}"
)

func newClient(name, subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*azureclient.Client, error) {
	return azureclient.NewClient(name, subscriptionID, azureclient.APIVersion(providerNamespace), credential, options)
}

// server returns a builder addressing one flexible server or, with a suffix,
// one of its child resources.
func server(c *azureclient.Client, operation, method, suffix, resourceGroupName, serverName string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, serverPath+suffix, statusCodes...).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		Validate("serverName", serverName,
			validation.Constraint{Name: validation.MaxLength, Rule: 63},
			validation.Constraint{Name: validation.MinLength, Rule: 3},
			validation.Constraint{Name: validation.Pattern, Rule: `^[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`},
		).
		PathParam("serverName", serverName)
}
