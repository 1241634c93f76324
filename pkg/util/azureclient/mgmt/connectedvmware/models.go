package connectedvmware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/armclients/pkg/api"
)

// ExtendedLocation - The extended location, i.e. the Arc custom location the
// resource is projected into.
type ExtendedLocation struct {
	// The extended location name.
	Name *string `json:"name,omitempty"`

	// The extended location type.
	Type *string `json:"type,omitempty"`
}

// HardwareProfile - Specifies the hardware settings for the virtual machine.
type HardwareProfile struct {
	// Gets or sets memory size in MBs for the vm.
	MemorySizeMB *int32 `json:"memorySizeMB,omitempty"`

	// Gets or sets the number of vCPUs for the vm.
	NumCPUs *int32 `json:"numCPUs,omitempty"`

	// Gets or sets the number of cores per socket for the vm. Defaults to 1 if unspecified.
	NumCoresPerSocket *int32 `json:"numCoresPerSocket,omitempty"`

	// READ-ONLY; Gets or sets a value indicating whether virtual processors can be added while this virtual machine is running.
	CPUHotAddEnabled *bool `json:"cpuHotAddEnabled,omitempty"`

	// READ-ONLY; Gets or sets a value indicating whether memory can be added while this virtual machine is running.
	MemoryHotAddEnabled *bool `json:"memoryHotAddEnabled,omitempty"`
}

// InfrastructureProfile - Specifies the vCenter infrastructure specific settings for the virtual machine.
type InfrastructureProfile struct {
	FirmwareType *FirmwareType `json:"firmwareType,omitempty"`

	// Gets or sets the inventory Item ID for the virtual machine.
	InventoryItemID *string `json:"inventoryItemId,omitempty"`

	// Gets or sets the SMBIOS UUID of the vm.
	SmbiosUUID *string `json:"smbiosUuid,omitempty"`

	// Gets or sets the ARM Id of the template resource to deploy the virtual machine.
	TemplateID *string `json:"templateId,omitempty"`

	// Gets or sets the ARM Id of the vCenter resource in which this resource pool resides.
	VCenterID *string `json:"vCenterId,omitempty"`

	// READ-ONLY; Gets or sets the folder path of the vm.
	FolderPath *string `json:"folderPath,omitempty"`

	// READ-ONLY; Gets or sets the instance uuid of the vm.
	InstanceUUID *string `json:"instanceUuid,omitempty"`

	// READ-ONLY; Gets or sets the vCenter MoRef (Managed Object Reference) ID for the virtual machine.
	MoRefID *string `json:"moRefId,omitempty"`

	// READ-ONLY; Gets or sets the vCenter Managed Object name for the virtual machine.
	MoName *string `json:"moName,omitempty"`
}

// OsProfileForVMInstance - Specifies the operating system settings for the virtual machine.
type OsProfileForVMInstance struct {
	// Sets administrator password.
	AdminPassword *string `json:"adminPassword,omitempty"`

	// Gets or sets administrator username.
	AdminUsername *string `json:"adminUsername,omitempty"`

	// Gets or sets computer name.
	ComputerName *string `json:"computerName,omitempty"`

	// Gets or sets the guestId.
	GuestID *string `json:"guestId,omitempty"`

	// Gets or sets the type of the os.
	OSType *OsType `json:"osType,omitempty"`

	// READ-ONLY; Gets or sets os sku.
	OSSKU *string `json:"osSku,omitempty"`

	// READ-ONLY; Gets or sets the current running status of VMware Tools running in the guest operating system.
	ToolsRunningStatus *string `json:"toolsRunningStatus,omitempty"`

	// READ-ONLY; Gets or sets the current version of VMware Tools.
	ToolsVersion *string `json:"toolsVersion,omitempty"`
}

// PlacementProfile - Specifies the compute and storage placement settings for the virtual machine.
type PlacementProfile struct {
	// Gets or sets the ARM Id of the cluster resource on which this virtual machine will deploy.
	ClusterID *string `json:"clusterId,omitempty"`

	// Gets or sets the ARM Id of the datastore resource on which the data for the virtual machine will be kept.
	DatastoreID *string `json:"datastoreId,omitempty"`

	// Gets or sets the ARM Id of the host resource on which this virtual machine will deploy.
	HostID *string `json:"hostId,omitempty"`

	// Gets or sets the ARM Id of the resourcePool resource on which this virtual machine will deploy.
	ResourcePoolID *string `json:"resourcePoolId,omitempty"`
}

// ResourcePatch - Object containing updates for patch operations.
type ResourcePatch struct {
	// Resource tags.
	Tags map[string]*string `json:"tags,omitempty"`
}

// ResourcePool - Define the resourcePool.
type ResourcePool struct {
	api.TrackedResource

	// Gets or sets the extended location.
	ExtendedLocation *ExtendedLocation `json:"extendedLocation,omitempty"`

	// Metadata used by portal/tooling/etc to render different UX experiences for resources of the same type; e.g. ApiApps are
	// a kind of Microsoft.Web/sites type. If supported, the resource provider must
	// validate and persist this value.
	Kind *string `json:"kind,omitempty"`

	// Resource properties.
	Properties *ResourcePoolProperties `json:"properties,omitempty"`
}

// ResourcePoolProperties - Describes the properties of a Resource Pool.
type ResourcePoolProperties struct {
	// Gets or sets the inventory Item ID for the resource pool.
	InventoryItemID *string `json:"inventoryItemId,omitempty"`

	// Gets or sets the vCenter MoRef (Managed Object Reference) ID for the resource pool.
	MoRefID *string `json:"moRefId,omitempty"`

	// Gets or sets the ARM Id of the vCenter resource in which this resource pool resides.
	VCenterID *string `json:"vCenterId,omitempty"`

	// READ-ONLY; Gets or sets CPULimitMHz which specifies a CPU usage limit in MHz.
	CPULimitMHz *int64 `json:"cpuLimitMHz,omitempty"`

	// READ-ONLY; Gets or sets CPUReservationMHz which specifies the CPU size in MHz that is guaranteed to be available.
	CPUReservationMHz *int64 `json:"cpuReservationMHz,omitempty"`

	// READ-ONLY; Gets the name of the corresponding resource in Kubernetes.
	CustomResourceName *string `json:"customResourceName,omitempty"`

	// READ-ONLY; Gets or sets MemLimitMB specifies a memory usage limit in megabytes.
	MemLimitMB *int64 `json:"memLimitMB,omitempty"`

	// READ-ONLY; Gets or sets MemReservationMB which specifies the guaranteed available memory in megabytes.
	MemReservationMB *int64 `json:"memReservationMB,omitempty"`

	// READ-ONLY; Gets or sets the vCenter Managed Object name for the resource pool.
	MoName *string `json:"moName,omitempty"`

	// READ-ONLY; Gets the provisioning state.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`

	// READ-ONLY; The resource status information.
	Statuses []*ResourceStatus `json:"statuses,omitempty"`

	// READ-ONLY; Gets or sets a unique identifier for this resource.
	UUID *string `json:"uuid,omitempty"`
}

// ResourceStatus - The resource status information.
type ResourceStatus struct {
	// READ-ONLY; The last update time for this condition.
	LastUpdatedAt *date.Time `json:"lastUpdatedAt,omitempty"`

	// READ-ONLY; A human readable message indicating details about the status.
	Message *string `json:"message,omitempty"`

	// READ-ONLY; The reason for the condition's status.
	Reason *string `json:"reason,omitempty"`

	// READ-ONLY; Severity with which to treat failures of this type of condition.
	Severity *string `json:"severity,omitempty"`

	// READ-ONLY; Status of the condition.
	Status *string `json:"status,omitempty"`

	// READ-ONLY; The type of the condition.
	Type *string `json:"type,omitempty"`
}

// VCenter - Defines the vCenter.
type VCenter struct {
	api.TrackedResource

	// Gets or sets the extended location.
	ExtendedLocation *ExtendedLocation `json:"extendedLocation,omitempty"`

	// Metadata used by portal/tooling/etc to render different UX experiences for resources of the same type.
	Kind *string `json:"kind,omitempty"`

	// Resource properties.
	Properties *VCenterProperties `json:"properties,omitempty"`
}

// VCenterProperties - Describes the properties of a VCenter.
type VCenterProperties struct {
	// Gets or sets the FQDN/IPAddress of the vCenter.
	Fqdn *string `json:"fqdn,omitempty"`

	// Username / Password Credentials to connect to vcenter.
	Credentials *VICredential `json:"credentials,omitempty"`

	// Gets or sets the port of the vCenter.
	Port *int32 `json:"port,omitempty"`

	// READ-ONLY; Gets or sets the connection status to the vCenter.
	ConnectionStatus *string `json:"connectionStatus,omitempty"`

	// READ-ONLY; Gets the name of the corresponding resource in Kubernetes.
	CustomResourceName *string `json:"customResourceName,omitempty"`

	// READ-ONLY; Gets or sets the instance UUID of the vCenter.
	InstanceUUID *string `json:"instanceUuid,omitempty"`

	// READ-ONLY; Gets the provisioning state.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`

	// READ-ONLY; The resource status information.
	Statuses []*ResourceStatus `json:"statuses,omitempty"`

	// READ-ONLY; Gets or sets a unique identifier for this resource.
	UUID *string `json:"uuid,omitempty"`

	// READ-ONLY; Gets or sets the version of the vCenter.
	Version *string `json:"version,omitempty"`
}

// VICredential - Username / Password Credentials to connect to vcenter.
type VICredential struct {
	// Gets or sets the password to connect with the vCenter.
	Password *string `json:"password,omitempty"`

	// Gets or sets username to connect with the vCenter.
	Username *string `json:"username,omitempty"`
}

// VirtualMachineInstance - Define the virtualMachineInstance.
type VirtualMachineInstance struct {
	api.ProxyResource

	// Gets or sets the extended location.
	ExtendedLocation *ExtendedLocation `json:"extendedLocation,omitempty"`

	// Resource properties.
	Properties *VirtualMachineInstanceProperties `json:"properties,omitempty"`
}

// VirtualMachineInstanceProperties - Describes the properties of a Virtual Machine Instance.
type VirtualMachineInstanceProperties struct {
	HardwareProfile       *HardwareProfile        `json:"hardwareProfile,omitempty"`
	InfrastructureProfile *InfrastructureProfile  `json:"infrastructureProfile,omitempty"`
	OSProfile             *OsProfileForVMInstance `json:"osProfile,omitempty"`
	PlacementProfile      *PlacementProfile       `json:"placementProfile,omitempty"`

	// READ-ONLY; Gets the power state of the virtual machine.
	PowerState *string `json:"powerState,omitempty"`

	// READ-ONLY; Gets the provisioning state.
	ProvisioningState *ProvisioningState `json:"provisioningState,omitempty"`

	// READ-ONLY; Gets or sets a unique identifier for the vm resource.
	ResourceUID *string `json:"resourceUid,omitempty"`

	// READ-ONLY; The resource status information.
	Statuses []*ResourceStatus `json:"statuses,omitempty"`
}
