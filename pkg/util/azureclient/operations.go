package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/armclients/pkg/api"
)

// OperationsClient lists the operations a resource provider exposes.
type OperationsClient struct {
	*Client
	namespace string
}

// NewOperationsClient creates an OperationsClient for a provider namespace
// known to APIVersion, e.g. "Microsoft.AVS".
func NewOperationsClient(namespace string, credential azcore.TokenCredential, options *arm.ClientOptions) (*OperationsClient, error) {
	apiVersion := APIVersion(namespace)
	if apiVersion == "" {
		return nil, fmt.Errorf("provider namespace %q is not supported", namespace)
	}

	client, err := NewClient("azureclient.OperationsClient", "", apiVersion, credential, options)
	if err != nil {
		return nil, err
	}

	return &OperationsClient{
		Client:    client,
		namespace: namespace,
	}, nil
}

// NewListPager lists all of the available REST API operations of the provider.
func (c *OperationsClient) NewListPager() *runtime.Pager[Page[api.Operation]] {
	b := NewRequestBuilder("List", http.MethodGet, "/providers/{providerNamespace}/operations", http.StatusOK).
		PathParam("providerNamespace", c.namespace)

	return NewPager[api.Operation](c.Client, b)
}

// List drains NewListPager.
func (c *OperationsClient) List(ctx context.Context) ([]api.Operation, error) {
	return Collect[api.Operation](ctx, c.NewListPager())
}
