package avs

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/armclients/pkg/api"
)

// AdminCredentials - Administrative credentials for accessing vCenter and NSX-T
type AdminCredentials struct {
	// READ-ONLY; NSX-T Manager password
	NsxtPassword *string `json:"nsxtPassword,omitempty"`

	// READ-ONLY; NSX-T Manager username
	NsxtUsername *string `json:"nsxtUsername,omitempty"`

	// READ-ONLY; vCenter admin password
	VcenterPassword *string `json:"vcenterPassword,omitempty"`

	// READ-ONLY; vCenter admin username
	VcenterUsername *string `json:"vcenterUsername,omitempty"`
}

// AvailabilityProperties - The properties describing private cloud availability zone distribution
type AvailabilityProperties struct {
	// The secondary availability zone for the private cloud
	SecondaryZone *int32 `json:"secondaryZone,omitempty"`

	// The availability strategy for the private cloud
	Strategy *AvailabilityStrategy `json:"strategy,omitempty"`

	// The primary availability zone for the private cloud
	Zone *int32 `json:"zone,omitempty"`
}

// Circuit - An ExpressRoute Circuit
type Circuit struct {
	// READ-ONLY; Identifier of the ExpressRoute Circuit (Microsoft Colo only)
	ExpressRouteID *string `json:"expressRouteID,omitempty"`

	// READ-ONLY; ExpressRoute Circuit private peering identifier
	ExpressRoutePrivatePeeringID *string `json:"expressRoutePrivatePeeringID,omitempty"`

	// READ-ONLY; CIDR of primary subnet
	PrimarySubnet *string `json:"primarySubnet,omitempty"`

	// READ-ONLY; CIDR of secondary subnet
	SecondarySubnet *string `json:"secondarySubnet,omitempty"`
}

// Cluster - A cluster resource
type Cluster struct {
	api.ProxyResource

	// REQUIRED; The SKU (Stock Keeping Unit) assigned to this resource.
	SKU *SKU `json:"sku,omitempty"`

	// The resource-specific properties for this resource.
	Properties *ClusterProperties `json:"properties,omitempty"`
}

// ClusterProperties - The properties of a cluster
type ClusterProperties struct {
	// The cluster size
	ClusterSize *int32 `json:"clusterSize,omitempty"`

	// The hosts
	Hosts []*string `json:"hosts,omitempty"`

	// Name of the vsan datastore associated with the cluster
	VsanDatastoreName *string `json:"vsanDatastoreName,omitempty"`

	// READ-ONLY; The identity
	ClusterID *int32 `json:"clusterId,omitempty"`

	// READ-ONLY; The state of the cluster provisioning
	ProvisioningState *ClusterProvisioningState `json:"provisioningState,omitempty"`
}

// Endpoints - Endpoint addresses
type Endpoints struct {
	// READ-ONLY; Endpoint FQDN for the HCX Cloud Manager
	HcxCloudManager *string `json:"hcxCloudManager,omitempty"`

	// READ-ONLY; Endpoint FQDN for the NSX-T Data Center manager
	NsxtManager *string `json:"nsxtManager,omitempty"`

	// READ-ONLY; Endpoint FQDN for Virtual Center Server Appliance
	Vcsa *string `json:"vcsa,omitempty"`
}

// IdentitySource - vCenter Single Sign On Identity Source
type IdentitySource struct {
	// The domain's NetBIOS name
	Alias *string `json:"alias,omitempty"`

	// The base distinguished name for groups
	BaseGroupDN *string `json:"baseGroupDN,omitempty"`

	// The base distinguished name for users
	BaseUserDN *string `json:"baseUserDN,omitempty"`

	// The domain's DNS name
	Domain *string `json:"domain,omitempty"`

	// The name of the identity source
	Name *string `json:"name,omitempty"`

	// The password of the Active Directory user with a minimum of read-only access to Base DN for users and groups.
	Password *string `json:"password,omitempty"`

	// Primary server URL
	PrimaryServer *string `json:"primaryServer,omitempty"`

	// Protect LDAP communication using SSL certificate (LDAPS)
	SSL *SSLEnum `json:"ssl,omitempty"`

	// Secondary server URL
	SecondaryServer *string `json:"secondaryServer,omitempty"`

	// The ID of an Active Directory user with a minimum of read-only access to Base DN for users and group
	Username *string `json:"username,omitempty"`
}

// ManagementCluster - The properties of a management cluster
type ManagementCluster struct {
	// The cluster size
	ClusterSize *int32 `json:"clusterSize,omitempty"`

	// The hosts
	Hosts []*string `json:"hosts,omitempty"`

	// Name of the vsan datastore associated with the cluster
	VsanDatastoreName *string `json:"vsanDatastoreName,omitempty"`

	// READ-ONLY; The identity
	ClusterID *int32 `json:"clusterId,omitempty"`

	// READ-ONLY; The state of the cluster provisioning
	ProvisioningState *ClusterProvisioningState `json:"provisioningState,omitempty"`
}

// PrivateCloud - A private cloud resource
type PrivateCloud struct {
	api.TrackedResource

	// REQUIRED; The SKU (Stock Keeping Unit) assigned to this resource.
	SKU *SKU `json:"sku,omitempty"`

	// The managed service identities assigned to this resource.
	Identity *SystemAssignedServiceIdentity `json:"identity,omitempty"`

	// The resource-specific properties for this resource.
	Properties *PrivateCloudProperties `json:"properties,omitempty"`

	// The availability zones.
	Zones []*string `json:"zones,omitempty"`
}

// PrivateCloudProperties - The properties of a private cloud resource
type PrivateCloudProperties struct {
	// REQUIRED; The default cluster used for management
	ManagementCluster *ManagementCluster `json:"managementCluster,omitempty"`

	// REQUIRED; The block of addresses should be unique across VNet in your subscription as well as on-premise. Make sure the
	// CIDR format is conformed to (A.B.C.D/X) where A,B,C,D are between 0 and 255, and X is between 0 and 22
	NetworkBlock *string `json:"networkBlock,omitempty"`

	// Properties describing how the cloud is distributed across availability zones
	Availability *AvailabilityProperties `json:"availability,omitempty"`

	// An ExpressRoute Circuit
	Circuit *Circuit `json:"circuit,omitempty"`

	// Array of additional networks noncontiguous with networkBlock. Networks must be unique and non-overlapping across VNet in
	// your subscription, on-premise, and this privateCloud networkBlock attribute.
	ExtendedNetworkBlocks []*string `json:"extendedNetworkBlocks,omitempty"`

	// vCenter Single Sign On Identity Sources
	IdentitySources []*IdentitySource `json:"identitySources,omitempty"`

	// Connectivity to internet is enabled or disabled
	Internet *InternetEnum `json:"internet,omitempty"`

	// Optionally, set the NSX-T Manager password when the private cloud is created
	NsxtPassword *string `json:"nsxtPassword,omitempty"`

	// Optionally, set the vCenter admin password when the private cloud is created
	VcenterPassword *string `json:"vcenterPassword,omitempty"`

	// READ-ONLY; The endpoints
	Endpoints *Endpoints `json:"endpoints,omitempty"`

	// READ-ONLY; Array of cloud link IDs from other clouds that connect to this one
	ExternalCloudLinks []*string `json:"externalCloudLinks,omitempty"`

	// READ-ONLY; Network used to access vCenter Server and NSX-T Manager
	ManagementNetwork *string `json:"managementNetwork,omitempty"`

	// READ-ONLY; Thumbprint of the NSX-T Manager SSL certificate
	NsxtCertificateThumbprint *string `json:"nsxtCertificateThumbprint,omitempty"`

	// READ-ONLY; Used for virtual machine cold migration, cloning, and snapshot migration
	ProvisioningNetwork *string `json:"provisioningNetwork,omitempty"`

	// READ-ONLY; The provisioning state
	ProvisioningState *PrivateCloudProvisioningState `json:"provisioningState,omitempty"`

	// READ-ONLY; Thumbprint of the vCenter Server SSL certificate
	VcenterCertificateThumbprint *string `json:"vcenterCertificateThumbprint,omitempty"`

	// READ-ONLY; Used for live migration of virtual machines
	VmotionNetwork *string `json:"vmotionNetwork,omitempty"`
}

// PrivateCloudUpdate - An update to a private cloud resource
type PrivateCloudUpdate struct {
	// The managed service identities assigned to this resource.
	Identity *SystemAssignedServiceIdentity `json:"identity,omitempty"`

	// The updatable properties of a private cloud resource
	Properties *PrivateCloudUpdateProperties `json:"properties,omitempty"`

	// Resource tags.
	Tags map[string]*string `json:"tags,omitempty"`
}

// PrivateCloudUpdateProperties - The properties of a private cloud resource that may be updated
type PrivateCloudUpdateProperties struct {
	Availability          *AvailabilityProperties `json:"availability,omitempty"`
	ExtendedNetworkBlocks []*string               `json:"extendedNetworkBlocks,omitempty"`
	IdentitySources       []*IdentitySource       `json:"identitySources,omitempty"`
	Internet              *InternetEnum           `json:"internet,omitempty"`
	ManagementCluster     *ManagementCluster      `json:"managementCluster,omitempty"`
}

// SKU - The resource model definition representing SKU
type SKU struct {
	// REQUIRED; The name of the SKU. E.g. P3. It is typically a letter+number code
	Name *string `json:"name,omitempty"`

	// If the SKU supports scale out/in then the capacity integer should be included. If scale out/in is not possible for the
	// resource this may be omitted.
	Capacity *int32 `json:"capacity,omitempty"`

	// If the service has different generations of hardware, for the same SKU, then that can be captured here.
	Family *string `json:"family,omitempty"`

	// The SKU size. When the name field is the combination of tier and some other value, this would be the standalone code.
	Size *string `json:"size,omitempty"`

	// This field is required to be implemented by the Resource Provider if the service has more than one tier, but is not required
	// on a PUT.
	Tier *SKUTier `json:"tier,omitempty"`
}

// SystemAssignedServiceIdentity - Managed service identity (either system assigned, or none)
type SystemAssignedServiceIdentity struct {
	// REQUIRED; Type of managed service identity (either system assigned, or none).
	Type *SystemAssignedServiceIdentityType `json:"type,omitempty"`

	// READ-ONLY; The service principal ID of the system assigned identity.
	PrincipalID *string `json:"principalId,omitempty"`

	// READ-ONLY; The tenant ID of the system assigned identity.
	TenantID *string `json:"tenantId,omitempty"`
}
