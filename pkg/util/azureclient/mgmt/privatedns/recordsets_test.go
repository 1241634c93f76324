package privatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/test/util/armtest"
	testhttp "github.com/Azure/armclients/test/util/http"
)

func newTestRecordSetsClient(t *testing.T) (*RecordSetsClient, *testhttp.Transport) {
	t.Helper()

	transport, cred, options := armtest.New(t)

	c, err := NewRecordSetsClient(armtest.SubscriptionID, cred, options)
	require.NoError(t, err)

	return c, transport
}

func TestRecordSetsClientGet(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestRecordSetsClient(t)
	transport.AddResponse(testhttp.WithBody(`{"name":"www","type":"Microsoft.Network/privateDnsZones/A","etag":"e1","properties":{"ttl":3600,"fqdn":"www.example.internal.","aRecords":[{"ipv4Address":"10.0.0.4"}]}}`))

	rs, err := c.Get(ctx, "rg", "example.internal", RecordTypeA, "www")
	require.NoError(t, err)

	assert.Equal(t, privateZoneURL+"/A/www?api-version=2020-06-01", transport.Requests()[0].URL.String())
	assert.Equal(t, int64(3600), *rs.Properties.TTL)
	assert.Equal(t, "10.0.0.4", *rs.Properties.ARecords[0].IPv4Address)
}

func TestRecordSetsClientCreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	rs := RecordSet{
		Properties: &RecordSetProperties{
			TTL:         to.Int64Ptr(300),
			CnameRecord: &CnameRecord{Cname: to.StringPtr("target.example.com")},
		},
	}

	for _, tt := range []struct {
		name            string
		options         *RecordSetsClientCreateOrUpdateOptions
		statusCode      int
		wantIfNoneMatch string
	}{
		{name: "upsert", statusCode: http.StatusOK},
		{name: "create only", statusCode: http.StatusCreated, options: &RecordSetsClientCreateOrUpdateOptions{IfNoneMatch: to.StringPtr("*")}, wantIfNoneMatch: "*"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestRecordSetsClient(t)
			transport.AddResponse(testhttp.WithStatusCode(tt.statusCode), testhttp.WithBody(`{"name":"alias"}`))

			result, err := c.CreateOrUpdate(ctx, "rg", "example.internal", RecordTypeCNAME, "alias", rs, tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode == http.StatusCreated, result.Created())

			req := transport.Requests()[0]
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, privateZoneURL+"/CNAME/alias?api-version=2020-06-01", req.URL.String())
			assert.Equal(t, tt.wantIfNoneMatch, req.Header.Get("If-None-Match"))
			assert.JSONEq(t, `{"properties":{"ttl":300,"cnameRecord":{"cname":"target.example.com"}}}`, string(transport.RequestBodies()[0]))
		})
	}

	t.Run("accepted is unexpected", func(t *testing.T) {
		c, transport := newTestRecordSetsClient(t)
		transport.AddResponse(testhttp.WithStatusCode(http.StatusAccepted))

		_, err := c.CreateOrUpdate(ctx, "rg", "example.internal", RecordTypeCNAME, "alias", rs, nil)
		assert.Equal(t, http.StatusAccepted, azureclient.StatusCode(err))
	})
}

func TestRecordSetsClientUpdate(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestRecordSetsClient(t)
	transport.AddResponse(testhttp.WithBody(`{"name":"www","properties":{"ttl":60}}`))

	rs, err := c.Update(ctx, "rg", "example.internal", RecordTypeA, "www", RecordSet{Properties: &RecordSetProperties{TTL: to.Int64Ptr(60)}}, &RecordSetsClientUpdateOptions{IfMatch: to.StringPtr("e1")})
	require.NoError(t, err)
	assert.Equal(t, int64(60), *rs.Properties.TTL)

	req := transport.Requests()[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "e1", req.Header.Get("If-Match"))
}

func TestRecordSetsClientDelete(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "deleted", statusCode: http.StatusOK},
		{name: "did not exist", statusCode: http.StatusNoContent},
		{name: "accepted is unexpected", statusCode: http.StatusAccepted, wantErr: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestRecordSetsClient(t)
			transport.AddResponse(testhttp.WithStatusCode(tt.statusCode))

			resp, err := c.Delete(ctx, "rg", "example.internal", RecordTypeTXT, "@", nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, resp.StatusCode)
			assert.Equal(t, "/subscriptions/"+armtest.SubscriptionID+"/resourceGroups/rg/providers/Microsoft.Network/privateDnsZones/example.internal/TXT/@", transport.Requests()[0].URL.Path)
		})
	}
}

func TestRecordSetsClientListPagers(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name      string
		pager     func(c *RecordSetsClient) ([]RecordSet, error)
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name: "all with suffix",
			pager: func(c *RecordSetsClient) ([]RecordSet, error) {
				return azureclient.Collect[RecordSet](ctx, c.NewListPager("rg", "example.internal", &RecordSetsClientListOptions{
					Top:                 to.Int32Ptr(10),
					Recordsetnamesuffix: to.StringPtr("svc"),
				}))
			},
			wantPath:  "/ALL",
			wantQuery: map[string]string{"$top": "10", "$recordsetnamesuffix": "svc"},
		},
		{
			name: "by type",
			pager: func(c *RecordSetsClient) ([]RecordSet, error) {
				return azureclient.Collect[RecordSet](ctx, c.NewListByTypePager("rg", "example.internal", RecordTypeSRV, nil))
			},
			wantPath:  "/SRV",
			wantQuery: map[string]string{"$top": "", "$recordsetnamesuffix": ""},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestRecordSetsClient(t)
			transport.AddResponse(testhttp.WithBody(`{"value":[{"name":"@"},{"name":"www"}]}`))

			rss, err := tt.pager(c)
			require.NoError(t, err)
			assert.Len(t, rss, 2)

			req := transport.Requests()[0]
			assert.Equal(t, "/subscriptions/"+armtest.SubscriptionID+"/resourceGroups/rg/providers/Microsoft.Network/privateDnsZones/example.internal"+tt.wantPath, req.URL.Path)
			for k, v := range tt.wantQuery {
				assert.Equal(t, v, req.URL.Query().Get(k), k)
			}
		})
	}
}

func TestOpenEnums(t *testing.T) {
	var link VirtualNetworkLink
	require.NoError(t, json.Unmarshal([]byte(`{"properties":{"provisioningState":"Migrating","virtualNetworkLinkState":"Completed"}}`), &link))

	assert.False(t, link.Properties.ProvisioningState.IsKnown())
	assert.True(t, link.Properties.VirtualNetworkLinkState.IsKnown())

	b, err := json.Marshal(link)
	require.NoError(t, err)
	assert.JSONEq(t, `{"properties":{"provisioningState":"Migrating","virtualNetworkLinkState":"Completed"}}`, string(b))

	assert.True(t, RecordTypeSRV.IsKnown())
	assert.False(t, RecordType("CAA").IsKnown())
	assert.Len(t, PossibleRecordTypeValues(), 8)
}
