package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Azure/go-autorest/autorest/to"

	"github.com/Azure/armclients/pkg/util/azureclient"
	"github.com/Azure/armclients/pkg/util/azureclient/mgmt/privatedns"
)

var _ = Describe("List resources in the subscription", func() {
	Specify("private clouds can be listed", func(ctx context.Context) {
		_, err := clients.PrivateClouds.ListInSubscription(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	Specify("flexible servers can be listed", func(ctx context.Context) {
		_, err := clients.FlexibleServers.List(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	Specify("vCenters can be listed", func(ctx context.Context) {
		_, err := clients.VCenters.List(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	Specify("private DNS zones are paged with $top", func(ctx context.Context) {
		pager := clients.PrivateZones.NewListPager(&privatedns.PrivateZonesClientListOptions{Top: to.Int32Ptr(1)})

		var pages int
		for pager.More() && pages < 3 {
			page, err := pager.NextPage(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(len(page.Value)).To(BeNumerically("<=", 1))
			pages++
		}
	})

	Specify("a private DNS zone which does not exist is not found", func(ctx context.Context) {
		_, err := clients.PrivateZones.Get(ctx, "armclients-e2e-does-not-exist", "does-not-exist.internal")
		Expect(azureclient.IsNotFoundError(err)).To(BeTrue())
	})
})
