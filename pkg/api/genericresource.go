package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// GenericResource is any ARM resource, with its properties left undecoded.
type GenericResource struct {
	Resource

	Location *string           `json:"location,omitempty"`
	Tags     map[string]*string `json:"tags,omitempty"`
	Kind     *string           `json:"kind,omitempty"`

	Properties map[string]any `json:"properties,omitempty"`
}
