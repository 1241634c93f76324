package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

// DatabasesClient manages the databases of a flexible server.
type DatabasesClient struct {
	*azureclient.Client
}

// NewDatabasesClient creates a new DatabasesClient
func NewDatabasesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*DatabasesClient, error) {
	client, err := newClient("postgresql.DatabasesClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &DatabasesClient{Client: client}, nil
}

func (c *DatabasesClient) database(operation, method, resourceGroupName, serverName, databaseName string, statusCodes ...int) *azureclient.RequestBuilder {
	return server(c.Client, operation, method, "/databases/{databaseName}", resourceGroupName, serverName, statusCodes...).
		Validate("databaseName", databaseName,
			validation.Constraint{Name: validation.Pattern, Rule: `^[-\w\.]+$`},
		).
		PathParam("databaseName", databaseName)
}

func (c *DatabasesClient) Get(ctx context.Context, resourceGroupName, serverName, databaseName string) (Database, error) {
	return azureclient.Invoke[Database](ctx, c.Client, c.database("Get", http.MethodGet, resourceGroupName, serverName, databaseName, http.StatusOK))
}

// Create creates a new database or updates an existing database.
func (c *DatabasesClient) Create(ctx context.Context, resourceGroupName, serverName, databaseName string, parameters Database) (azureclient.Result[Database], error) {
	b := c.database("Create", http.MethodPut, resourceGroupName, serverName, databaseName, http.StatusOK, http.StatusCreated, http.StatusAccepted).
		Body(parameters)

	return azureclient.InvokeResult[Database](ctx, c.Client, b)
}

func (c *DatabasesClient) Delete(ctx context.Context, resourceGroupName, serverName, databaseName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, c.database("Delete", http.MethodDelete, resourceGroupName, serverName, databaseName, http.StatusOK, http.StatusAccepted, http.StatusNoContent))
}

// NewListByServerPager lists all the databases in a given server.
func (c *DatabasesClient) NewListByServerPager(resourceGroupName, serverName string) *runtime.Pager[azureclient.Page[Database]] {
	return azureclient.NewPager[Database](c.Client, server(c.Client, "NewListByServerPager", http.MethodGet, "/databases", resourceGroupName, serverName, http.StatusOK))
}
