package connectedvmware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

const (
	providerNamespace = "Microsoft.ConnectedVMwarevSphere"

	resourceGroupPath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.ConnectedVMwarevSphere"
)

func newClient(name, subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*azureclient.Client, error) {
	return azureclient.NewClient(name, subscriptionID, azureclient.APIVersion(providerNamespace), credential, options)
}

func boolQuery(b *azureclient.RequestBuilder, key string, value *bool) *azureclient.RequestBuilder {
	if value != nil {
		b.Query(key, strconv.FormatBool(*value))
	}
	return b
}
