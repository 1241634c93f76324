package connectedvmware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// VCentersClientDeleteOptions contains the optional parameters for the VCentersClient.Delete method.
type VCentersClientDeleteOptions struct {
	// Whether force delete was specified.
	Force *bool
}

// ResourcePoolsClientDeleteOptions contains the optional parameters for the ResourcePoolsClient.Delete method.
type ResourcePoolsClientDeleteOptions struct {
	// Whether force delete was specified.
	Force *bool
}

// VirtualMachineInstancesClientDeleteOptions contains the optional parameters for the
// VirtualMachineInstancesClient.Delete method.
type VirtualMachineInstancesClientDeleteOptions struct {
	// Whether to delete the VM from the vCenter.
	DeleteFromHost *bool

	// Whether force delete was specified.
	Force *bool
}
