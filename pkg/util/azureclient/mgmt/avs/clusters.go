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
	clustersPath = privateCloudPath + "/clusters"
	clusterPath  = clustersPath + "/{clusterName}"
)

// ClustersClient manages the clusters of a private cloud.
type ClustersClient struct {
	*azureclient.Client
}

// NewClustersClient creates a new ClustersClient
func NewClustersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*ClustersClient, error) {
	client, err := newClient("avs.ClustersClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &ClustersClient{Client: client}, nil
}

func (c *ClustersClient) cluster(operation, method, resourceGroupName, privateCloudName, clusterName string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, clusterPath, statusCodes...).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("privateCloudName", privateCloudName).
		PathParam("clusterName", clusterName)
}

func (c *ClustersClient) Get(ctx context.Context, resourceGroupName, privateCloudName, clusterName string) (Cluster, error) {
	return azureclient.Invoke[Cluster](ctx, c.Client, c.cluster("Get", http.MethodGet, resourceGroupName, privateCloudName, clusterName, http.StatusOK))
}

func (c *ClustersClient) CreateOrUpdate(ctx context.Context, resourceGroupName, privateCloudName, clusterName string, cluster Cluster) (azureclient.Result[Cluster], error) {
	b := c.cluster("CreateOrUpdate", http.MethodPut, resourceGroupName, privateCloudName, clusterName, http.StatusOK, http.StatusCreated).
		Body(cluster)

	return azureclient.InvokeResult[Cluster](ctx, c.Client, b)
}

func (c *ClustersClient) Delete(ctx context.Context, resourceGroupName, privateCloudName, clusterName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, c.cluster("Delete", http.MethodDelete, resourceGroupName, privateCloudName, clusterName, http.StatusOK, http.StatusAccepted, http.StatusNoContent))
}

// NewListPager lists the clusters of a private cloud
func (c *ClustersClient) NewListPager(resourceGroupName, privateCloudName string) *runtime.Pager[azureclient.Page[Cluster]] {
	b := azureclient.NewRequestBuilder("NewListPager", http.MethodGet, clustersPath, http.StatusOK).
		PathParam("subscriptionId", c.SubscriptionID()).
		ResourceGroup(resourceGroupName).
		PathParam("privateCloudName", privateCloudName)

	return azureclient.NewPager[Cluster](c.Client, b)
}

func (c *ClustersClient) List(ctx context.Context, resourceGroupName, privateCloudName string) ([]Cluster, error) {
	return azureclient.Collect[Cluster](ctx, c.NewListPager(resourceGroupName, privateCloudName))
}
