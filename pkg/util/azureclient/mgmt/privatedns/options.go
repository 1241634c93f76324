package privatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// PrivateZonesClientCreateOrUpdateOptions contains the optional parameters for PrivateZonesClient.CreateOrUpdate.
type PrivateZonesClientCreateOrUpdateOptions struct {
	// The ETag of the Private DNS zone. Omit this value to always overwrite the current zone. Specify the last-seen ETag value
	// to prevent accidentally overwriting any concurrent changes.
	IfMatch *string

	// Set to '*' to allow a new Private DNS zone to be created, but to prevent updating an existing zone. Other values will be
	// ignored.
	IfNoneMatch *string
}

// PrivateZonesClientUpdateOptions contains the optional parameters for PrivateZonesClient.Update.
type PrivateZonesClientUpdateOptions struct {
	IfMatch *string
}

// PrivateZonesClientDeleteOptions contains the optional parameters for PrivateZonesClient.Delete.
type PrivateZonesClientDeleteOptions struct {
	IfMatch *string
}

// PrivateZonesClientListOptions contains the optional parameters for PrivateZonesClient.NewListPager and
// PrivateZonesClient.NewListByResourceGroupPager.
type PrivateZonesClientListOptions struct {
	// The maximum number of Private DNS zones to return per page.
	Top *int32
}

// RecordSetsClientCreateOrUpdateOptions contains the optional parameters for RecordSetsClient.CreateOrUpdate.
type RecordSetsClientCreateOrUpdateOptions struct {
	IfMatch     *string
	IfNoneMatch *string
}

// RecordSetsClientUpdateOptions contains the optional parameters for RecordSetsClient.Update.
type RecordSetsClientUpdateOptions struct {
	IfMatch *string
}

// RecordSetsClientDeleteOptions contains the optional parameters for RecordSetsClient.Delete.
type RecordSetsClientDeleteOptions struct {
	IfMatch *string
}

// RecordSetsClientListOptions contains the optional parameters for RecordSetsClient.NewListPager and
// RecordSetsClient.NewListByTypePager.
type RecordSetsClientListOptions struct {
	// The maximum number of record sets to return per page.
	Top *int32

	// The suffix label of the record set name to be used to filter the record set enumeration. If this parameter is specified,
	// the returned enumeration will only contain records that end with ".<recordsetnamesuffix>".
	Recordsetnamesuffix *string
}

// VirtualNetworkLinksClientCreateOrUpdateOptions contains the optional parameters for VirtualNetworkLinksClient.CreateOrUpdate.
type VirtualNetworkLinksClientCreateOrUpdateOptions struct {
	IfMatch     *string
	IfNoneMatch *string
}

// VirtualNetworkLinksClientDeleteOptions contains the optional parameters for VirtualNetworkLinksClient.Delete.
type VirtualNetworkLinksClientDeleteOptions struct {
	IfMatch *string
}

// VirtualNetworkLinksClientListOptions contains the optional parameters for VirtualNetworkLinksClient.NewListPager.
type VirtualNetworkLinksClientListOptions struct {
	Top *int32
}
