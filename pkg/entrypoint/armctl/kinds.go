package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Azure/armclients/pkg/api"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/avs"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/connectedvmware"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/postgresql"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/privatedns"
)

// kind is a resource type the list and inventory commands know about. list
// returns resource names, across the subscription if resourceGroup is empty.
type kind struct {
	name string
	list func(ctx context.Context, c *clients, resourceGroup string, top *int32) ([]string, error)
}

var kinds = []kind{
	{
		name: "privateclouds",
		list: func(ctx context.Context, c *clients, resourceGroup string, top *int32) ([]string, error) {
			var pcs []avs.PrivateCloud
			var err error
			if resourceGroup == "" {
				pcs, err = c.privateClouds.ListInSubscription(ctx)
			} else {
				pcs, err = c.privateClouds.List(ctx, resourceGroup)
			}
			return names(pcs, func(pc avs.PrivateCloud) api.Resource { return pc.Resource }), err
		},
	},
	{
		name: "flexibleservers",
		list: func(ctx context.Context, c *clients, resourceGroup string, top *int32) ([]string, error) {
			var servers []postgresql.Server
			var err error
			if resourceGroup == "" {
				servers, err = c.flexibleServers.List(ctx)
			} else {
				servers, err = c.flexibleServers.ListByResourceGroup(ctx, resourceGroup)
			}
			return names(servers, func(s postgresql.Server) api.Resource { return s.Resource }), err
		},
	},
	{
		name: "privatednszones",
		list: func(ctx context.Context, c *clients, resourceGroup string, top *int32) ([]string, error) {
			options := &privatedns.PrivateZonesClientListOptions{Top: top}

			var zones []privatedns.PrivateZone
			var err error
			if resourceGroup == "" {
				zones, err = c.privateZones.List(ctx, options)
			} else {
				zones, err = c.privateZones.ListByResourceGroup(ctx, resourceGroup, options)
			}
			return names(zones, func(z privatedns.PrivateZone) api.Resource { return z.Resource }), err
		},
	},
	{
		name: "vcenters",
		list: func(ctx context.Context, c *clients, resourceGroup string, top *int32) ([]string, error) {
			var vcs []connectedvmware.VCenter
			var err error
			if resourceGroup == "" {
				vcs, err = c.vCenters.List(ctx)
			} else {
				vcs, err = c.vCenters.ListByResourceGroup(ctx, resourceGroup)
			}
			return names(vcs, func(vc connectedvmware.VCenter) api.Resource { return vc.Resource }), err
		},
	},
}

func kindNames() []string {
	n := make([]string, 0, len(kinds))
	for _, k := range kinds {
		n = append(n, k.name)
	}
	return n
}

func findKind(name string) (kind, error) {
	i := slices.IndexFunc(kinds, func(k kind) bool { return k.name == strings.ToLower(name) })
	if i == -1 {
		return kind{}, fmt.Errorf("unknown kind %q, must be one of %s", name, strings.Join(kindNames(), ", "))
	}
	return kinds[i], nil
}

// names returns one label per item: its name, or its ID when the service
// omitted the name.
func names[T any](items []T, resource func(T) api.Resource) []string {
	if items == nil {
		return nil
	}

	n := make([]string, 0, len(items))
	for _, item := range items {
		r := resource(item)
		switch {
		case r.Name != nil:
			n = append(n, *r.Name)
		case r.ID != nil:
			n = append(n, *r.ID)
		default:
			n = append(n, "")
		}
	}
	return n
}
