package connectedvmware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

// virtualMachineInstancesPath is relative to the Arc machine the instance
// extends. {resourceUri} is the full ARM ID of that machine.
const virtualMachineInstancesPath = "/{resourceUri}/providers/Microsoft.ConnectedVMwarevSphere/virtualMachineInstances"

// VirtualMachineInstancesClient manages the vSphere extension of an Arc
// enabled machine. There is at most one instance per machine, named default.
type VirtualMachineInstancesClient struct {
	*azureclient.Client
}

// NewVirtualMachineInstancesClient creates a new VirtualMachineInstancesClient.
// The subscription is implied by the resource URI passed to each operation.
func NewVirtualMachineInstancesClient(credential azcore.TokenCredential, options *arm.ClientOptions) (*VirtualMachineInstancesClient, error) {
	client, err := newClient("connectedvmware.VirtualMachineInstancesClient", "", credential, options)
	if err != nil {
		return nil, err
	}

	return &VirtualMachineInstancesClient{Client: client}, nil
}

func virtualMachineInstance(operation, method, resourceURI string, statusCodes ...int) *azureclient.RequestBuilder {
	return azureclient.NewRequestBuilder(operation, method, virtualMachineInstancesPath+"/default", statusCodes...).
		RawPathParam("resourceUri", resourceURI)
}

// Get retrieves information about a virtual machine instance.
func (c *VirtualMachineInstancesClient) Get(ctx context.Context, resourceURI string) (VirtualMachineInstance, error) {
	return azureclient.Invoke[VirtualMachineInstance](ctx, c.Client, virtualMachineInstance("Get", http.MethodGet, resourceURI, http.StatusOK))
}

// CreateOrUpdate creates or updates a virtual machine instance.
func (c *VirtualMachineInstancesClient) CreateOrUpdate(ctx context.Context, resourceURI string, body VirtualMachineInstance) (azureclient.Result[VirtualMachineInstance], error) {
	b := virtualMachineInstance("CreateOrUpdate", http.MethodPut, resourceURI, http.StatusOK, http.StatusCreated).
		Body(body)

	return azureclient.InvokeResult[VirtualMachineInstance](ctx, c.Client, b)
}

// Delete a virtual machine instance. DeleteFromHost also removes the VM from
// the vCenter.
func (c *VirtualMachineInstancesClient) Delete(ctx context.Context, resourceURI string, options *VirtualMachineInstancesClientDeleteOptions) (azureclient.Response, error) {
	if options == nil {
		options = &VirtualMachineInstancesClientDeleteOptions{}
	}

	b := virtualMachineInstance("Delete", http.MethodDelete, resourceURI, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	boolQuery(b, "deleteFromHost", options.DeleteFromHost)
	boolQuery(b, "force", options.Force)

	return c.InvokeNoContent(ctx, b)
}

// NewListPager lists the virtual machine instances of the machine at resourceURI.
func (c *VirtualMachineInstancesClient) NewListPager(resourceURI string) *runtime.Pager[azureclient.Page[VirtualMachineInstance]] {
	b := azureclient.NewRequestBuilder("NewListPager", http.MethodGet, virtualMachineInstancesPath, http.StatusOK).
		RawPathParam("resourceUri", resourceURI)

	return azureclient.NewPager[VirtualMachineInstance](c.Client, b)
}
