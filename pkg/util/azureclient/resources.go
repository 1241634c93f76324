package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/armclients/pkg/api"
)

// ResourcesClient reads arbitrary resources of the supported providers by
// resource ID, picking the api-version from the resource type.
type ResourcesClient struct {
	*Client
}

// NewResourcesClient creates a ResourcesClient.
func NewResourcesClient(credential azcore.TokenCredential, options *arm.ClientOptions) (*ResourcesClient, error) {
	client, err := NewClient("azureclient.ResourcesClient", "", "", credential, options)
	if err != nil {
		return nil, err
	}

	return &ResourcesClient{Client: client}, nil
}

// GetByID gets the resource identified by resourceID.
func (c *ResourcesClient) GetByID(ctx context.Context, resourceID string) (api.GenericResource, error) {
	id, err := arm.ParseResourceID(resourceID)
	if err != nil {
		return api.GenericResource{}, err
	}

	apiVersion := APIVersion(id.ResourceType.String())
	if apiVersion == "" {
		return api.GenericResource{}, fmt.Errorf("resource type %q is not supported", id.ResourceType.String())
	}

	b := NewRequestBuilder("GetByID", http.MethodGet, "/{resourceId}", http.StatusOK).
		RawPathParam("resourceId", id.String()).
		APIVersion(apiVersion)

	return Invoke[api.GenericResource](ctx, c.Client, b)
}
