package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

var _ = Describe("List operations", func() {
	DescribeTable("the provider publishes its operations",
		func(ctx context.Context, namespace string) {
			oc, err := azureclient.NewOperationsClient(namespace, credential, options)
			Expect(err).NotTo(HaveOccurred())

			ops, err := oc.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ops).NotTo(BeEmpty())
		},
		Entry("AVS", "Microsoft.AVS"),
		Entry("PostgreSQL", "Microsoft.DBforPostgreSQL"),
		Entry("Private DNS", "Microsoft.Network"),
		Entry("Arc vSphere", "Microsoft.ConnectedVMwarevSphere"),
	)
})
