package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/stretchr/testify/assert"

	"github.com/Azure/armclients/pkg/api"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/connectedvmware"
)

func TestNames(t *testing.T) {
	vCenter := func(name, id *string) connectedvmware.VCenter {
		var vc connectedvmware.VCenter
		vc.Name = name
		vc.ID = id
		return vc
	}
	resource := func(vc connectedvmware.VCenter) api.Resource { return vc.Resource }

	for _, tt := range []struct {
		name  string
		items []connectedvmware.VCenter
		want  []string
	}{
		{
			name: "nil list",
		},
		{
			name:  "named resources",
			items: []connectedvmware.VCenter{vCenter(to.StringPtr("a"), nil), vCenter(to.StringPtr("b"), to.StringPtr("/id/b"))},
			want:  []string{"a", "b"},
		},
		{
			name: "resources without a name are kept",
			items: []connectedvmware.VCenter{
				vCenter(to.StringPtr("a"), nil),
				vCenter(nil, to.StringPtr("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.ConnectedVMwarevSphere/vcenters/b")),
				vCenter(nil, nil),
			},
			want: []string{"a", "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.ConnectedVMwarevSphere/vcenters/b", ""},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tt.items, resource))
		})
	}
}
