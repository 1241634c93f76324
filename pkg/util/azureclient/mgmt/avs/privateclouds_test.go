package avs

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/armclients/pkg/api"
	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/test/util/armtest"
	testhttp "github.com/Azure/armclients/test/util/http"
)

const (
	privateCloudURL = armtest.Endpoint + "/subscriptions/" + armtest.SubscriptionID + "/resourceGroups/rg/providers/Microsoft.AVS/privateClouds/pc"
	privateCloudID  = "/subscriptions/" + armtest.SubscriptionID + "/resourceGroups/rg/providers/Microsoft.AVS/privateClouds/pc"

	privateCloudBody = `{
	"id": "` + privateCloudID + `",
	"name": "pc",
	"type": "Microsoft.AVS/privateClouds",
	"location": "eastus",
	"tags": {"env": "test"},
	"sku": {"name": "av36"},
	"systemData": {"createdBy": "user@example.com", "createdByType": "User", "createdAt": "2023-10-01T10:00:00Z"},
	"properties": {
		"managementCluster": {"clusterSize": 3, "clusterId": 1, "hosts": ["esx01"], "provisioningState": "Succeeded"},
		"networkBlock": "192.168.48.0/22",
		"internet": "Disabled",
		"provisioningState": "Succeeded",
		"endpoints": {"vcsa": "https://vcsa.example.com"}
	}
}`
)

func newTestPrivateCloudsClient(t *testing.T) (*PrivateCloudsClient, *testhttp.Transport) {
	t.Helper()

	transport, cred, options := armtest.New(t)

	c, err := NewPrivateCloudsClient(armtest.SubscriptionID, cred, options)
	require.NoError(t, err)

	return c, transport
}

func TestPrivateCloudsClientGet(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestPrivateCloudsClient(t)
	transport.AddResponse(testhttp.WithBody(privateCloudBody))

	pc, err := c.Get(ctx, "rg", "pc")
	require.NoError(t, err)

	reqs := transport.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, privateCloudURL+"?api-version=2023-09-01", reqs[0].URL.String())

	assert.Equal(t, privateCloudID, *pc.ID)
	assert.Equal(t, "eastus", *pc.Location)
	assert.Equal(t, "test", *pc.Tags["env"])
	assert.Equal(t, api.CreatedByTypeUser, *pc.SystemData.CreatedByType)
	assert.Equal(t, 2023, pc.SystemData.CreatedAt.Year())
	assert.Equal(t, PrivateCloudProvisioningStateSucceeded, *pc.Properties.ProvisioningState)
	assert.Equal(t, int32(3), *pc.Properties.ManagementCluster.ClusterSize)
	assert.Equal(t, InternetEnumDisabled, *pc.Properties.Internet)
}

func TestPrivateCloudsClientCreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	privateCloud := PrivateCloud{
		TrackedResource: api.TrackedResource{
			Location: to.StringPtr("eastus"),
		},
		SKU: &SKU{Name: to.StringPtr("av36")},
		Properties: &PrivateCloudProperties{
			ManagementCluster: &ManagementCluster{ClusterSize: to.Int32Ptr(3)},
			NetworkBlock:      to.StringPtr("192.168.48.0/22"),
		},
	}

	for _, tt := range []struct {
		name        string
		opts        []testhttp.Option
		wantCreated bool
		wantValue   bool
	}{
		{
			name:      "updated",
			opts:      []testhttp.Option{testhttp.WithBody(privateCloudBody)},
			wantValue: true,
		},
		{
			name:        "created",
			opts:        []testhttp.Option{testhttp.WithStatusCode(http.StatusCreated), testhttp.WithBody(privateCloudBody)},
			wantCreated: true,
			wantValue:   true,
		},
		{
			name:        "created without body",
			opts:        []testhttp.Option{testhttp.WithStatusCode(http.StatusCreated)},
			wantCreated: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestPrivateCloudsClient(t)
			transport.AddResponse(tt.opts...)

			result, err := c.CreateOrUpdate(ctx, "rg", "pc", privateCloud)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCreated, result.Created())
			assert.Equal(t, tt.wantValue, result.Value != nil)

			reqs := transport.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodPut, reqs[0].Method)
			assert.Equal(t, privateCloudURL+"?api-version=2023-09-01", reqs[0].URL.String())

			var got, want map[string]any
			require.NoError(t, json.Unmarshal(transport.RequestBodies()[0], &got))
			require.NoError(t, json.Unmarshal([]byte(`{"location":"eastus","sku":{"name":"av36"},"properties":{"managementCluster":{"clusterSize":3},"networkBlock":"192.168.48.0/22"}}`), &want))
			for _, diff := range deep.Equal(got, want) {
				t.Error(diff)
			}
		})
	}
}

func TestPrivateCloudsClientCreateOrUpdateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestPrivateCloudsClient(t)
	transport.AddResponse().AddResponse()

	privateCloud := PrivateCloud{
		TrackedResource: api.TrackedResource{
			Location: to.StringPtr("eastus"),
			Tags:     map[string]*string{"b": to.StringPtr("2"), "a": to.StringPtr("1")},
		},
		SKU: &SKU{Name: to.StringPtr("av36")},
	}

	for i := 0; i < 2; i++ {
		_, err := c.CreateOrUpdate(ctx, "rg", "pc", privateCloud)
		require.NoError(t, err)
	}

	reqs := transport.Requests()
	bodies := transport.RequestBodies()
	assert.Equal(t, reqs[0].URL.String(), reqs[1].URL.String())
	assert.Equal(t, string(bodies[0]), string(bodies[1]))
}

func TestPrivateCloudsClientUpdate(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestPrivateCloudsClient(t)
	transport.AddResponse(testhttp.WithBody(privateCloudBody))

	internet := InternetEnumEnabled
	result, err := c.Update(ctx, "rg", "pc", PrivateCloudUpdate{
		Properties: &PrivateCloudUpdateProperties{Internet: &internet},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Value)

	assert.Equal(t, http.MethodPatch, transport.Requests()[0].Method)
	assert.JSONEq(t, `{"properties":{"internet":"Enabled"}}`, string(transport.RequestBodies()[0]))
}

func TestPrivateCloudsClientDelete(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "deleted", statusCode: http.StatusOK},
		{name: "accepted", statusCode: http.StatusAccepted},
		{name: "did not exist", statusCode: http.StatusNoContent},
		{name: "conflict", statusCode: http.StatusConflict, wantErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestPrivateCloudsClient(t)
			transport.AddResponse(testhttp.WithStatusCode(tt.statusCode))

			resp, err := c.Delete(ctx, "rg", "pc")
			if tt.wantErr {
				assert.Equal(t, tt.statusCode, azureclient.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, resp.StatusCode)
			assert.Equal(t, http.MethodDelete, transport.Requests()[0].Method)
		})
	}
}

func TestPrivateCloudsClientListAdminCredentials(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestPrivateCloudsClient(t)
	transport.AddResponse(testhttp.WithBody(`{"nsxtUsername":"admin","nsxtPassword":"p1","vcenterUsername":"cloudadmin@vsphere.local","vcenterPassword":"p2"}`))

	creds, err := c.ListAdminCredentials(ctx, "rg", "pc")
	require.NoError(t, err)

	assert.Equal(t, "cloudadmin@vsphere.local", *creds.VcenterUsername)
	assert.Equal(t, http.MethodPost, transport.Requests()[0].Method)
	assert.Equal(t, privateCloudURL+"/listAdminCredentials?api-version=2023-09-01", transport.Requests()[0].URL.String())
}

func TestPrivateCloudsClientList(t *testing.T) {
	ctx := context.Background()

	t.Run("resource group", func(t *testing.T) {
		c, transport := newTestPrivateCloudsClient(t)
		transport.
			AddResponse(testhttp.WithBody(`{"value":[{"name":"a"},{"name":"b"}],"nextLink":"` + armtest.Endpoint + `/subscriptions/` + armtest.SubscriptionID + `/resourceGroups/rg/providers/Microsoft.AVS/privateClouds?api-version=2023-09-01&$skiptoken=2"}`)).
			AddResponse(testhttp.WithBody(`{"value":[{"name":"c"},{"name":"d"}],"nextLink":"` + armtest.Endpoint + `/subscriptions/` + armtest.SubscriptionID + `/resourceGroups/rg/providers/Microsoft.AVS/privateClouds?api-version=2023-09-01&$skiptoken=4"}`)).
			AddResponse(testhttp.WithBody(`{"value":[{"name":"e"}]}`))

		pcs, err := c.List(ctx, "rg")
		require.NoError(t, err)

		var names []string
		for _, pc := range pcs {
			names = append(names, *pc.Name)
		}
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names)

		for _, req := range transport.Requests() {
			assert.Equal(t, []string{"2023-09-01"}, req.URL.Query()["api-version"])
		}
	})

	t.Run("subscription", func(t *testing.T) {
		c, transport := newTestPrivateCloudsClient(t)
		transport.AddResponse(testhttp.WithBody(`{"value":[{"name":"a"}]}`))

		pcs, err := c.ListInSubscription(ctx)
		require.NoError(t, err)
		assert.Len(t, pcs, 1)
		assert.Equal(t, armtest.Endpoint+"/subscriptions/"+armtest.SubscriptionID+"/providers/Microsoft.AVS/privateClouds?api-version=2023-09-01", transport.Requests()[0].URL.String())
	})

	t.Run("invalid resource group", func(t *testing.T) {
		c, transport := newTestPrivateCloudsClient(t)

		_, err := c.List(ctx, "")
		assert.Error(t, err)
		assert.Empty(t, transport.Requests())
	})
}

func TestPrivateCloudsClientCreateOrUpdateAndWait(t *testing.T) {
	ctx := context.Background()

	defer func(d time.Duration) { azureclient.PollFrequency = d }(azureclient.PollFrequency)
	azureclient.PollFrequency = 10 * time.Millisecond

	c, transport := newTestPrivateCloudsClient(t)
	transport.
		AddResponse(
			testhttp.WithStatusCode(http.StatusCreated),
			testhttp.WithHeader("Azure-AsyncOperation", armtest.Endpoint+"/subscriptions/"+armtest.SubscriptionID+"/providers/Microsoft.AVS/locations/eastus/operationStatuses/1?api-version=2023-09-01"),
			testhttp.WithBody(`{"name":"pc","properties":{"provisioningState":"Building"}}`),
		).
		AddResponse(testhttp.WithBody(`{"status":"InProgress"}`)).
		AddResponse(testhttp.WithBody(`{"status":"Succeeded"}`)).
		AddResponse(testhttp.WithBody(privateCloudBody))

	pc, err := c.CreateOrUpdateAndWait(ctx, "rg", "pc", PrivateCloud{TrackedResource: api.TrackedResource{Location: to.StringPtr("eastus")}})
	require.NoError(t, err)

	assert.Equal(t, PrivateCloudProvisioningStateSucceeded, *pc.Properties.ProvisioningState)
	assert.Zero(t, transport.Pending())
}

func TestOpenEnums(t *testing.T) {
	for _, tt := range []struct {
		name string
		body string
	}{
		{
			name: "unknown provisioning state",
			body: `{"properties":{"managementCluster":{"provisioningState":"Hibernating"},"provisioningState":"Hibernating"},"sku":{"name":"av64","tier":"Gold"}}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var pc PrivateCloud
			require.NoError(t, json.Unmarshal([]byte(tt.body), &pc))

			assert.False(t, pc.Properties.ProvisioningState.IsKnown())
			assert.Equal(t, PrivateCloudProvisioningState("Hibernating"), *pc.Properties.ProvisioningState)
			assert.False(t, pc.Properties.ManagementCluster.ProvisioningState.IsKnown())
			assert.False(t, pc.SKU.Tier.IsKnown())
			assert.True(t, PrivateCloudProvisioningStateSucceeded.IsKnown())

			b, err := json.Marshal(pc)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(b))
		})
	}
}
