package privatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/armclients/pkg/api"
	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/test/util/armtest"
	utilerror "github.com/Azure/armclients/test/util/error"
	testhttp "github.com/Azure/armclients/test/util/http"
)

const (
	privateZoneID  = "/subscriptions/" + armtest.SubscriptionID + "/resourceGroups/rg/providers/Microsoft.Network/privateDnsZones/example.internal"
	privateZoneURL = armtest.Endpoint + privateZoneID

	privateZoneBody = `{
	"id": "` + privateZoneID + `",
	"name": "example.internal",
	"type": "Microsoft.Network/privateDnsZones",
	"location": "global",
	"etag": "00000000-0000-0000-0000-000000000001",
	"properties": {
		"maxNumberOfRecordSets": 25000,
		"numberOfRecordSets": 1,
		"provisioningState": "Succeeded"
	}
}`
)

func newTestPrivateZonesClient(t *testing.T) (*PrivateZonesClient, *testhttp.Transport) {
	t.Helper()

	transport, cred, options := armtest.New(t)

	c, err := NewPrivateZonesClient(armtest.SubscriptionID, cred, options)
	require.NoError(t, err)

	return c, transport
}

func TestPrivateZonesClientGet(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c, transport := newTestPrivateZonesClient(t)
		transport.AddResponse(testhttp.WithBody(privateZoneBody))

		zone, err := c.Get(ctx, "rg", "example.internal")
		require.NoError(t, err)

		assert.Equal(t, privateZoneURL+"?api-version=2020-06-01", transport.Requests()[0].URL.String())
		assert.Equal(t, "00000000-0000-0000-0000-000000000001", *zone.Etag)
		assert.Equal(t, int64(25000), *zone.Properties.MaxNumberOfRecordSets)
		assert.Equal(t, ProvisioningStateSucceeded, *zone.Properties.ProvisioningState)
	})

	t.Run("not found", func(t *testing.T) {
		c, transport := newTestPrivateZonesClient(t)
		transport.AddResponse(testhttp.WithCloudError(http.StatusNotFound, "ResourceNotFound", "The Resource 'Microsoft.Network/privateDnsZones/example.internal' was not found."))

		_, err := c.Get(ctx, "rg", "example.internal")
		assert.True(t, azureclient.IsNotFoundError(err))
		assert.Equal(t, "ResourceNotFound", azureclient.ErrorCode(err))
	})
}

func TestPrivateZonesClientCreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	zone := PrivateZone{TrackedResource: api.TrackedResource{Location: to.StringPtr("global")}}

	for _, tt := range []struct {
		name            string
		options         *PrivateZonesClientCreateOrUpdateOptions
		opts            []testhttp.Option
		wantIfMatch     string
		wantIfNoneMatch string
		wantAccepted    bool
		wantValue       bool
	}{
		{
			name:      "no options",
			opts:      []testhttp.Option{testhttp.WithBody(privateZoneBody)},
			wantValue: true,
		},
		{
			name:            "create only",
			options:         &PrivateZonesClientCreateOrUpdateOptions{IfNoneMatch: to.StringPtr("*")},
			opts:            []testhttp.Option{testhttp.WithStatusCode(http.StatusCreated), testhttp.WithBody(privateZoneBody)},
			wantIfNoneMatch: "*",
			wantValue:       true,
		},
		{
			name:         "conditional update accepted",
			options:      &PrivateZonesClientCreateOrUpdateOptions{IfMatch: to.StringPtr("etag")},
			opts:         []testhttp.Option{testhttp.WithStatusCode(http.StatusAccepted)},
			wantIfMatch:  "etag",
			wantAccepted: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestPrivateZonesClient(t)
			transport.AddResponse(tt.opts...)

			result, err := c.CreateOrUpdate(ctx, "rg", "example.internal", zone, tt.options)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAccepted, result.Accepted())
			assert.Equal(t, tt.wantValue, result.Value != nil)

			req := transport.Requests()[0]
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, tt.wantIfMatch, req.Header.Get("If-Match"))
			assert.Equal(t, tt.wantIfNoneMatch, req.Header.Get("If-None-Match"))
			_, ok := req.Header["If-Match"]
			assert.Equal(t, tt.wantIfMatch != "", ok)
			assert.JSONEq(t, `{"location":"global"}`, string(transport.RequestBodies()[0]))
		})
	}
}

func TestPrivateZonesClientUpdate(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestPrivateZonesClient(t)
	transport.AddResponse(testhttp.WithBody(privateZoneBody))

	result, err := c.Update(ctx, "rg", "example.internal", PrivateZone{
		TrackedResource: api.TrackedResource{Tags: map[string]*string{"env": to.StringPtr("test")}},
	}, &PrivateZonesClientUpdateOptions{IfMatch: to.StringPtr("etag")})
	require.NoError(t, err)
	require.NotNil(t, result.Value)

	req := transport.Requests()[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "etag", req.Header.Get("If-Match"))
	assert.JSONEq(t, `{"tags":{"env":"test"}}`, string(transport.RequestBodies()[0]))
}

func TestPrivateZonesClientDelete(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name       string
		statusCode int
		options    *PrivateZonesClientDeleteOptions
		wantErr    string
	}{
		{name: "deleted", statusCode: http.StatusOK},
		{name: "accepted", statusCode: http.StatusAccepted, options: &PrivateZonesClientDeleteOptions{IfMatch: to.StringPtr("etag")}},
		{name: "did not exist", statusCode: http.StatusNoContent},
		{name: "etag mismatch", statusCode: http.StatusPreconditionFailed, wantErr: "PreconditionFailed"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestPrivateZonesClient(t)
			if tt.wantErr != "" {
				transport.AddResponse(testhttp.WithCloudError(tt.statusCode, tt.wantErr, "The etag does not match."))
			} else {
				transport.AddResponse(testhttp.WithStatusCode(tt.statusCode))
			}

			resp, err := c.Delete(ctx, "rg", "example.internal", tt.options)
			if tt.wantErr != "" {
				utilerror.AssertResponseError(t, err, tt.statusCode, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, resp.StatusCode)

			req := transport.Requests()[0]
			assert.Equal(t, http.MethodDelete, req.Method)
			if tt.options != nil {
				assert.Equal(t, *tt.options.IfMatch, req.Header.Get("If-Match"))
			} else {
				assert.Empty(t, req.Header.Get("If-Match"))
			}
		})
	}
}

func TestPrivateZonesClientList(t *testing.T) {
	ctx := context.Background()

	t.Run("subscription with top", func(t *testing.T) {
		c, transport := newTestPrivateZonesClient(t)
		transport.
			AddResponse(testhttp.WithBody(`{"value":[{"name":"a.internal"}],"nextLink":"` + armtest.Endpoint + `/subscriptions/` + armtest.SubscriptionID + `/providers/Microsoft.Network/privateDnsZones?api-version=2020-06-01&$skipToken=1"}`)).
			AddResponse(testhttp.WithBody(`{"value":[{"name":"b.internal"}]}`))

		zones, err := c.List(ctx, &PrivateZonesClientListOptions{Top: to.Int32Ptr(1)})
		require.NoError(t, err)
		require.Len(t, zones, 2)
		assert.Equal(t, "b.internal", *zones[1].Name)

		reqs := transport.Requests()
		assert.Equal(t, "/subscriptions/"+armtest.SubscriptionID+"/providers/Microsoft.Network/privateDnsZones", reqs[0].URL.Path)
		assert.Equal(t, "1", reqs[0].URL.Query().Get("$top"))
		assert.Equal(t, "1", reqs[1].URL.Query().Get("$skipToken"))
	})

	t.Run("resource group", func(t *testing.T) {
		c, transport := newTestPrivateZonesClient(t)
		transport.AddResponse(testhttp.WithBody(`{"value":[]}`))

		zones, err := c.ListByResourceGroup(ctx, "rg", nil)
		require.NoError(t, err)
		assert.Empty(t, zones)

		req := transport.Requests()[0]
		assert.Equal(t, "/subscriptions/"+armtest.SubscriptionID+"/resourceGroups/rg/providers/Microsoft.Network/privateDnsZones", req.URL.Path)
		assert.NotContains(t, req.URL.Query(), "$top")
	})
}

func TestPrivateZonesClientCreateOrUpdateAndWait(t *testing.T) {
	ctx := context.Background()

	defer func(d time.Duration) { azureclient.PollFrequency = d }(azureclient.PollFrequency)
	azureclient.PollFrequency = 10 * time.Millisecond

	c, transport := newTestPrivateZonesClient(t)
	transport.
		AddResponse(
			testhttp.WithStatusCode(http.StatusAccepted),
			testhttp.WithHeader("Azure-AsyncOperation", armtest.Endpoint+"/subscriptions/"+armtest.SubscriptionID+"/resourceGroups/rg/providers/Microsoft.Network/privateDnsOperationStatuses/op?api-version=2020-06-01"),
		).
		AddResponse(testhttp.WithBody(`{"status":"Succeeded"}`)).
		AddResponse(testhttp.WithBody(privateZoneBody))

	zone, err := c.CreateOrUpdateAndWait(ctx, "rg", "example.internal", PrivateZone{TrackedResource: api.TrackedResource{Location: to.StringPtr("global")}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "example.internal", *zone.Name)
	assert.Zero(t, transport.Pending())
}
