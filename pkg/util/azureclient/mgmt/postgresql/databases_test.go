package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/test/util/armtest"
	testhttp "github.com/Azure/armclients/test/util/http"
)

func TestDatabasesClient(t *testing.T) {
	ctx := context.Background()

	transport, cred, options := armtest.New(t)
	c, err := NewDatabasesClient(armtest.SubscriptionID, cred, options)
	require.NoError(t, err)

	transport.
		AddResponse(testhttp.WithStatusCode(http.StatusCreated), testhttp.WithBody(`{"name":"app","properties":{"charset":"UTF8","collation":"en_US.utf8"}}`)).
		AddResponse(testhttp.WithCloudError(http.StatusNotFound, "ResourceNotFound", "database not found")).
		AddResponse(testhttp.WithBody(`{"value":[]}`)).
		AddResponse(testhttp.WithStatusCode(http.StatusAccepted))

	result, err := c.Create(ctx, "rg", "pg-1", "app", Database{
		Properties: &DatabaseProperties{Charset: to.StringPtr("UTF8"), Collation: to.StringPtr("en_US.utf8")},
	})
	require.NoError(t, err)
	assert.True(t, result.Created())
	require.NotNil(t, result.Value)
	assert.Equal(t, "UTF8", *result.Value.Properties.Charset)

	_, err = c.Get(ctx, "rg", "pg-1", "app")
	assert.True(t, azureclient.IsNotFoundError(err))
	assert.Equal(t, "ResourceNotFound", azureclient.ErrorCode(err))

	dbs, err := azureclient.Collect[Database](ctx, c.NewListByServerPager("rg", "pg-1"))
	require.NoError(t, err)
	assert.Empty(t, dbs)

	resp, err := c.Delete(ctx, "rg", "pg-1", "app")
	require.NoError(t, err)
	assert.True(t, resp.Accepted())

	assert.Equal(t, serverURL+"/databases/app?api-version=2022-12-01", transport.Requests()[0].URL.String())
	assert.Equal(t, serverURL+"/databases?api-version=2022-12-01", transport.Requests()[2].URL.String())

	_, err = c.Get(ctx, "rg", "pg-1", "app/../x")
	assert.Error(t, err)
	assert.Len(t, transport.Requests(), 4)
}
