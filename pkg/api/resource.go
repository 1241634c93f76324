package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// Resource holds the fields every ARM resource carries. Service models embed
// it (directly or through ProxyResource/TrackedResource) so that its fields are
// serialised inline with the model's own fields.
type Resource struct {
	// READ-ONLY; Fully qualified resource ID.
	ID *string `json:"id,omitempty"`

	// READ-ONLY; The name of the resource.
	Name *string `json:"name,omitempty"`

	// READ-ONLY; The type of the resource, e.g. "Microsoft.AVS/privateClouds".
	Type *string `json:"type,omitempty"`

	// READ-ONLY; Metadata pertaining to creation and last modification of the resource.
	SystemData *SystemData `json:"systemData,omitempty"`
}

// ProxyResource is a resource without location or tags.
type ProxyResource struct {
	Resource
}

// TrackedResource is a top level ARM resource which has a location and tags.
type TrackedResource struct {
	Resource

	// REQUIRED; The geo-location where the resource lives.
	Location *string `json:"location,omitempty"`

	// Resource tags.
	Tags map[string]*string `json:"tags,omitempty"`
}

// CreatedByType by defines user type, which executed the request
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

// PossibleCreatedByTypeValues returns the known values for CreatedByType.
func PossibleCreatedByTypeValues() []CreatedByType {
	return []CreatedByType{
		CreatedByTypeApplication,
		CreatedByTypeKey,
		CreatedByTypeManagedIdentity,
		CreatedByTypeUser,
	}
}

// IsKnown reports whether c is one of PossibleCreatedByTypeValues.
func (c CreatedByType) IsKnown() bool {
	return IsKnown(c, PossibleCreatedByTypeValues())
}

// SystemData represets metadata provided by arm. Time fields are pointers so
// that absent values are not serialised.
type SystemData struct {
	CreatedBy          *string        `json:"createdBy,omitempty"`
	CreatedByType      *CreatedByType `json:"createdByType,omitempty"`
	CreatedAt          *date.Time     `json:"createdAt,omitempty"`
	LastModifiedBy     *string        `json:"lastModifiedBy,omitempty"`
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty"`
	LastModifiedAt     *date.Time     `json:"lastModifiedAt,omitempty"`
}
