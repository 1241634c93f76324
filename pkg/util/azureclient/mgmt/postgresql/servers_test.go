package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/armclients/pkg/api"
	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/test/util/armtest"
	testcmp "github.com/Azure/armclients/test/util/cmp"
	utilerror "github.com/Azure/armclients/test/util/error"
	testhttp "github.com/Azure/armclients/test/util/http"
)

const serverURL = armtest.Endpoint + "/subscriptions/" + armtest.SubscriptionID + "/resourceGroups/rg/providers/Microsoft.DBforPostgreSQL/flexibleServers/pg-1"

func newTestServersClient(t *testing.T) (*ServersClient, *testhttp.Transport) {
	t.Helper()

	transport, cred, options := armtest.New(t)

	c, err := NewServersClient(armtest.SubscriptionID, cred, options)
	require.NoError(t, err)

	return c, transport
}

func TestServersClientGet(t *testing.T) {
	ctx := context.Background()
	c, transport := newTestServersClient(t)
	transport.AddResponse(testhttp.WithBody(`{
		"name": "pg-1",
		"location": "westeurope",
		"sku": {"name": "Standard_B1ms", "tier": "Burstable"},
		"properties": {
			"version": "14",
			"state": "Ready",
			"fullyQualifiedDomainName": "pg-1.postgres.database.azure.com",
			"backup": {"backupRetentionDays": 7, "geoRedundantBackup": "Disabled", "earliestRestoreDate": "2023-01-02T03:04:05Z"},
			"highAvailability": {"mode": "Disabled", "state": "NotEnabled"}
		}
	}`))

	got, err := c.Get(ctx, "rg", "pg-1")
	require.NoError(t, err)

	earliest := date.Time{Time: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)}
	tier := SKUTierBurstable
	version := ServerVersionFourteen
	state := ServerStateReady
	geo := GeoRedundantBackupEnumDisabled
	haMode := HighAvailabilityModeDisabled
	haState := ServerHAStateNotEnabled

	want := Server{
		TrackedResource: api.TrackedResource{
			Resource: api.Resource{Name: to.StringPtr("pg-1")},
			Location: to.StringPtr("westeurope"),
		},
		SKU: &SKU{Name: to.StringPtr("Standard_B1ms"), Tier: &tier},
		Properties: &ServerProperties{
			Version:                  &version,
			State:                    &state,
			FullyQualifiedDomainName: to.StringPtr("pg-1.postgres.database.azure.com"),
			Backup:                   &Backup{BackupRetentionDays: to.Int32Ptr(7), GeoRedundantBackup: &geo, EarliestRestoreDate: &earliest},
			HighAvailability:         &HighAvailability{Mode: &haMode, State: &haState},
		},
	}
	if diff := testcmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}

	assert.Equal(t, serverURL+"?api-version=2022-12-01", transport.Requests()[0].URL.String())
}

func TestServersClientCreate(t *testing.T) {
	ctx := context.Background()

	version := ServerVersionFourteen
	parameters := Server{
		TrackedResource: api.TrackedResource{Location: to.StringPtr("westeurope")},
		Properties: &ServerProperties{
			AdministratorLogin:         to.StringPtr("admin"),
			AdministratorLoginPassword: to.StringPtr("secret"),
			Version:                    &version,
			Storage:                    &Storage{StorageSizeGB: to.Int32Ptr(32)},
		},
	}

	for _, tt := range []struct {
		name         string
		opts         []testhttp.Option
		wantAccepted bool
		wantValue    bool
	}{
		{
			name: "accepted without body",
			opts: []testhttp.Option{
				testhttp.WithStatusCode(http.StatusAccepted),
				testhttp.WithHeader("Azure-AsyncOperation", armtest.Endpoint+"/subscriptions/"+armtest.SubscriptionID+"/providers/Microsoft.DBforPostgreSQL/locations/westeurope/azureAsyncOperation/1"),
			},
			wantAccepted: true,
		},
		{
			name:      "ok with body",
			opts:      []testhttp.Option{testhttp.WithBody(`{"name":"pg-1","properties":{"state":"Ready"}}`)},
			wantValue: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestServersClient(t)
			transport.AddResponse(tt.opts...)

			result, err := c.Create(ctx, "rg", "pg-1", parameters)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAccepted, result.Accepted())
			assert.Equal(t, tt.wantAccepted, result.AsyncOperation != "")
			assert.Equal(t, tt.wantValue, result.Value != nil)

			assert.Equal(t, http.MethodPut, transport.Requests()[0].Method)
			assert.JSONEq(t, `{"location":"westeurope","properties":{"administratorLogin":"admin","administratorLoginPassword":"secret","version":"14","storage":{"storageSizeGB":32}}}`, string(transport.RequestBodies()[0]))
		})
	}
}

func TestServersClientActions(t *testing.T) {
	ctx := context.Background()

	failoverMode := FailoverModePlannedFailover

	for _, tt := range []struct {
		name     string
		call     func(*ServersClient) (azureclient.Response, error)
		status   int
		wantURL  string
		wantBody string
	}{
		{
			name: "restart without parameters",
			call: func(c *ServersClient) (azureclient.Response, error) {
				return c.Restart(ctx, "rg", "pg-1", nil)
			},
			status:  http.StatusAccepted,
			wantURL: serverURL + "/restart?api-version=2022-12-01",
		},
		{
			name: "restart with failover",
			call: func(c *ServersClient) (azureclient.Response, error) {
				return c.Restart(ctx, "rg", "pg-1", &RestartParameter{RestartWithFailover: to.BoolPtr(true), FailoverMode: &failoverMode})
			},
			status:   http.StatusOK,
			wantURL:  serverURL + "/restart?api-version=2022-12-01",
			wantBody: `{"restartWithFailover":true,"failoverMode":"PlannedFailover"}`,
		},
		{
			name: "start",
			call: func(c *ServersClient) (azureclient.Response, error) {
				return c.Start(ctx, "rg", "pg-1")
			},
			status:  http.StatusAccepted,
			wantURL: serverURL + "/start?api-version=2022-12-01",
		},
		{
			name: "stop",
			call: func(c *ServersClient) (azureclient.Response, error) {
				return c.Stop(ctx, "rg", "pg-1")
			},
			status:  http.StatusOK,
			wantURL: serverURL + "/stop?api-version=2022-12-01",
		},
		{
			name: "delete",
			call: func(c *ServersClient) (azureclient.Response, error) {
				return c.Delete(ctx, "rg", "pg-1")
			},
			status:  http.StatusNoContent,
			wantURL: serverURL + "?api-version=2022-12-01",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestServersClient(t)
			transport.AddResponse(testhttp.WithStatusCode(tt.status))

			resp, err := tt.call(c)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			req := transport.Requests()[0]
			assert.Equal(t, tt.wantURL, req.URL.String())

			body := transport.RequestBodies()[0]
			if tt.wantBody == "" {
				assert.Empty(t, body)
			} else {
				assert.JSONEq(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestServersClientList(t *testing.T) {
	ctx := context.Background()

	c, transport := newTestServersClient(t)
	transport.
		AddResponse(testhttp.WithBody(`{"value":[{"name":"a"},{"name":"b"}],"nextLink":"` + armtest.Endpoint + `/subscriptions/` + armtest.SubscriptionID + `/providers/Microsoft.DBforPostgreSQL/flexibleServers?api-version=2022-12-01&%24skipToken=b"}`)).
		AddResponse(testhttp.WithBody(`{"value":[{"name":"c"}]}`)).
		AddResponse(testhttp.WithBody(`{"value":[{"name":"d"}]}`))

	servers, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, servers, 3)

	servers, err = c.ListByResourceGroup(ctx, "rg")
	require.NoError(t, err)
	assert.Len(t, servers, 1)

	reqs := transport.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "/subscriptions/"+armtest.SubscriptionID+"/providers/Microsoft.DBforPostgreSQL/flexibleServers", reqs[0].URL.Path)
	assert.Equal(t, "api-version=2022-12-01&%24skipToken=b", reqs[1].URL.RawQuery)
	assert.Equal(t, "/subscriptions/"+armtest.SubscriptionID+"/resourceGroups/rg/providers/Microsoft.DBforPostgreSQL/flexibleServers", reqs[2].URL.Path)
}

func TestServerNameValidation(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name       string
		serverName string
		wantErr    string
	}{
		{
			name:       "too short",
			serverName: "pg",
			wantErr:    `postgresql.ServersClient#Get: Invalid input: autorest/validation: validation failed: parameter=serverName constraint=MinLength value="pg" details: value length must be greater than or equal to 3`,
		},
		{
			name:       "trailing hyphen",
			serverName: "pg-1-",
			wantErr:    `postgresql.ServersClient#Get: Invalid input: autorest/validation: validation failed: parameter=serverName constraint=Pattern value="pg-1-" details: value doesn't match pattern ^[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newTestServersClient(t)

			_, err := c.Get(ctx, "rg", tt.serverName)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			assert.Empty(t, transport.Requests())
		})
	}
}

func TestServerOpenEnums(t *testing.T) {
	in := `{"properties":{"state":"Provisioning","version":"16","highAvailability":{"mode":"CrossRegion"}}}`

	var s Server
	require.NoError(t, json.Unmarshal([]byte(in), &s))

	assert.False(t, s.Properties.State.IsKnown())
	assert.False(t, s.Properties.Version.IsKnown())
	assert.False(t, s.Properties.HighAvailability.Mode.IsKnown())
	assert.Equal(t, ServerVersion("16"), *s.Properties.Version)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}
