package privatedns

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

// RecordSetsClient manages the record sets of a Private DNS zone.
type RecordSetsClient struct {
	*azureclient.Client
}

// NewRecordSetsClient creates a new RecordSetsClient
func NewRecordSetsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*RecordSetsClient, error) {
	client, err := newClient("privatedns.RecordSetsClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &RecordSetsClient{Client: client}, nil
}

func (c *RecordSetsClient) recordSet(operation, method, resourceGroupName, privateZoneName string, recordType RecordType, relativeRecordSetName string, statusCodes ...int) *azureclient.RequestBuilder {
	return privateZone(c.Client, operation, method, "/{recordType}/{relativeRecordSetName}", resourceGroupName, privateZoneName, statusCodes...).
		PathParam("recordType", string(recordType)).
		PathParam("relativeRecordSetName", relativeRecordSetName)
}

func listRecordSets(b *azureclient.RequestBuilder, options *RecordSetsClientListOptions) *azureclient.RequestBuilder {
	if options == nil {
		return b
	}
	if options.Recordsetnamesuffix != nil {
		b.Query("$recordsetnamesuffix", *options.Recordsetnamesuffix)
	}
	return top(b, options.Top)
}

// Get gets a record set. relativeRecordSetName is the name of the record set
// relative to the zone, "@" for the apex.
func (c *RecordSetsClient) Get(ctx context.Context, resourceGroupName, privateZoneName string, recordType RecordType, relativeRecordSetName string) (RecordSet, error) {
	return azureclient.Invoke[RecordSet](ctx, c.Client, c.recordSet("Get", http.MethodGet, resourceGroupName, privateZoneName, recordType, relativeRecordSetName, http.StatusOK))
}

// CreateOrUpdate creates or updates a record set within a Private DNS zone.
func (c *RecordSetsClient) CreateOrUpdate(ctx context.Context, resourceGroupName, privateZoneName string, recordType RecordType, relativeRecordSetName string, parameters RecordSet, options *RecordSetsClientCreateOrUpdateOptions) (azureclient.Result[RecordSet], error) {
	if options == nil {
		options = &RecordSetsClientCreateOrUpdateOptions{}
	}

	b := c.recordSet("CreateOrUpdate", http.MethodPut, resourceGroupName, privateZoneName, recordType, relativeRecordSetName, http.StatusOK, http.StatusCreated).
		Header("If-Match", options.IfMatch).
		Header("If-None-Match", options.IfNoneMatch).
		Body(parameters)

	return azureclient.InvokeResult[RecordSet](ctx, c.Client, b)
}

// Update updates a record set within a Private DNS zone.
func (c *RecordSetsClient) Update(ctx context.Context, resourceGroupName, privateZoneName string, recordType RecordType, relativeRecordSetName string, parameters RecordSet, options *RecordSetsClientUpdateOptions) (RecordSet, error) {
	if options == nil {
		options = &RecordSetsClientUpdateOptions{}
	}

	b := c.recordSet("Update", http.MethodPatch, resourceGroupName, privateZoneName, recordType, relativeRecordSetName, http.StatusOK).
		Header("If-Match", options.IfMatch).
		Body(parameters)

	return azureclient.Invoke[RecordSet](ctx, c.Client, b)
}

// Delete deletes a record set from a Private DNS zone. This operation cannot
// be undone.
func (c *RecordSetsClient) Delete(ctx context.Context, resourceGroupName, privateZoneName string, recordType RecordType, relativeRecordSetName string, options *RecordSetsClientDeleteOptions) (azureclient.Response, error) {
	if options == nil {
		options = &RecordSetsClientDeleteOptions{}
	}

	b := c.recordSet("Delete", http.MethodDelete, resourceGroupName, privateZoneName, recordType, relativeRecordSetName, http.StatusOK, http.StatusNoContent).
		Header("If-Match", options.IfMatch)

	return c.InvokeNoContent(ctx, b)
}

// NewListPager lists all record sets in a Private DNS zone.
func (c *RecordSetsClient) NewListPager(resourceGroupName, privateZoneName string, options *RecordSetsClientListOptions) *runtime.Pager[azureclient.Page[RecordSet]] {
	b := privateZone(c.Client, "NewListPager", http.MethodGet, "/ALL", resourceGroupName, privateZoneName, http.StatusOK)

	return azureclient.NewPager[RecordSet](c.Client, listRecordSets(b, options))
}

// NewListByTypePager lists the record sets of a specified type in a Private DNS zone.
func (c *RecordSetsClient) NewListByTypePager(resourceGroupName, privateZoneName string, recordType RecordType, options *RecordSetsClientListOptions) *runtime.Pager[azureclient.Page[RecordSet]] {
	b := privateZone(c.Client, "NewListByTypePager", http.MethodGet, "/{recordType}", resourceGroupName, privateZoneName, http.StatusOK).
		PathParam("recordType", string(recordType))

	return azureclient.NewPager[RecordSet](c.Client, listRecordSets(b, options))
}
