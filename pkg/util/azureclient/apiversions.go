package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
)

// keys must be lower case
var apiVersions = map[string]string{
	"microsoft.avs":                     "2023-09-01",
	"microsoft.connectedvmwarevsphere":  "2023-10-01",
	"microsoft.dbforpostgresql":         "2022-12-01",
	"microsoft.network":                 "2020-06-01",
	"microsoft.network/privatednszones": "2020-06-01",
}

// APIVersion gets the APIVersion from a full resource type
func APIVersion(typ string) string {
	t := strings.ToLower(typ)

	for {
		if apiVersion, ok := apiVersions[t]; ok {
			return apiVersion
		}

		i := strings.LastIndexByte(t, '/')
		if i == -1 {
			break
		}

		t = t[:i]
	}

	return ""
}
