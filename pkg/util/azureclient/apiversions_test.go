package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
	"testing"
)

func TestAPIVersion(t *testing.T) {
	for _, tt := range []struct {
		typ  string
		want string
	}{
		{typ: "Microsoft.AVS/privateClouds", want: "2023-09-01"},
		{typ: "Microsoft.AVS/privateClouds/clusters", want: "2023-09-01"},
		{typ: "microsoft.dbforpostgresql/flexibleServers", want: "2022-12-01"},
		{typ: "Microsoft.Network/privateDnsZones/A", want: "2020-06-01"},
		{typ: "Microsoft.ConnectedVMwarevSphere/vcenters", want: "2023-10-01"},
		{typ: "Microsoft.Compute/virtualMachines"},
		{typ: ""},
	} {
		t.Run(tt.typ, func(t *testing.T) {
			if got := APIVersion(tt.typ); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIVersionKeysAreLowerCase(t *testing.T) {
	for k := range apiVersions {
		if k != strings.ToLower(k) {
			t.Error(k)
		}
	}
}
