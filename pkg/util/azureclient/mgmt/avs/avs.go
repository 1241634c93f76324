package avs

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

const providerNamespace = "Microsoft.AVS"

func newClient(name, subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*azureclient.Client, error) {
	return azureclient.NewClient(name, subscriptionID, azureclient.APIVersion(providerNamespace), credential, options)
}
