package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/armclients/pkg/api"
)

// AuthConfig - Authentication configuration properties of a server
type AuthConfig struct {
	// If Enabled, Azure Active Directory authentication is enabled.
	ActiveDirectoryAuth *ActiveDirectoryAuthEnum `json:"activeDirectoryAuth,omitempty"`

	// If Enabled, Password authentication is enabled.
	PasswordAuth *PasswordAuthEnum `json:"passwordAuth,omitempty"`

	// Tenant id of the server.
	TenantID *string `json:"tenantId,omitempty"`
}

// Backup properties of a server
type Backup struct {
	// Backup retention days for the server.
	BackupRetentionDays *int32 `json:"backupRetentionDays,omitempty"`

	// A value indicating whether Geo-Redundant backup is enabled on the server.
	GeoRedundantBackup *GeoRedundantBackupEnum `json:"geoRedundantBackup,omitempty"`

	// READ-ONLY; The earliest restore point time (ISO8601 format) for server.
	EarliestRestoreDate *date.Time `json:"earliestRestoreDate,omitempty"`
}

// Database - Represents a Database.
type Database struct {
	api.ProxyResource

	// The properties of a database.
	Properties *DatabaseProperties `json:"properties,omitempty"`
}

// DatabaseProperties - The properties of a database.
type DatabaseProperties struct {
	// The charset of the database.
	Charset *string `json:"charset,omitempty"`

	// The collation of the database.
	Collation *string `json:"collation,omitempty"`
}

// FirewallRule - Represents a server firewall rule.
type FirewallRule struct {
	api.ProxyResource

	// REQUIRED; The properties of a firewall rule.
	Properties *FirewallRuleProperties `json:"properties,omitempty"`
}

// FirewallRuleProperties - The properties of a server firewall rule.
type FirewallRuleProperties struct {
	// REQUIRED; The end IP address of the server firewall rule. Must be IPv4 format.
	EndIPAddress *string `json:"endIpAddress,omitempty"`

	// REQUIRED; The start IP address of the server firewall rule. Must be IPv4 format.
	StartIPAddress *string `json:"startIpAddress,omitempty"`
}

// HighAvailability properties of a server
type HighAvailability struct {
	// The HA mode for the server.
	Mode *HighAvailabilityMode `json:"mode,omitempty"`

	// availability zone information of the standby.
	StandbyAvailabilityZone *string `json:"standbyAvailabilityZone,omitempty"`

	// READ-ONLY; A state of a HA server that is visible to user.
	State *ServerHAState `json:"state,omitempty"`
}

// MaintenanceWindow - Maintenance window properties of a server.
type MaintenanceWindow struct {
	// indicates whether custom window is enabled or disabled
	CustomWindow *string `json:"customWindow,omitempty"`

	// day of week for maintenance window
	DayOfWeek *int32 `json:"dayOfWeek,omitempty"`

	// start hour for maintenance window
	StartHour *int32 `json:"startHour,omitempty"`

	// start minute for maintenance window
	StartMinute *int32 `json:"startMinute,omitempty"`
}

// Network properties of a server.
type Network struct {
	// Delegated subnet arm resource id. This is required to be passed during create, in case we want the server to be VNET injected,
	// i.e. Private access server. During update, pass this only if we want to update the value for Private DNS zone.
	DelegatedSubnetResourceID *string `json:"delegatedSubnetResourceId,omitempty"`

	// Private dns zone arm resource id. This is required to be passed during create, in case we want the server to be VNET injected,
	// i.e. Private access server. During update, pass this only if we want to update the value for Private DNS zone.
	PrivateDNSZoneArmResourceID *string `json:"privateDnsZoneArmResourceId,omitempty"`

	// READ-ONLY; public network access is enabled or not
	PublicNetworkAccess *ServerPublicNetworkAccessState `json:"publicNetworkAccess,omitempty"`
}

// RestartParameter - Represents server restart parameters.
type RestartParameter struct {
	// Failover mode.
	FailoverMode *FailoverMode `json:"failoverMode,omitempty"`

	// Indicates whether to restart the server with failover.
	RestartWithFailover *bool `json:"restartWithFailover,omitempty"`
}

// SKU - Sku information related properties of a server.
type SKU struct {
	// REQUIRED; The name of the sku, typically, tier + family + cores, e.g. Standard_D4s_v3.
	Name *string `json:"name,omitempty"`

	// REQUIRED; The tier of the particular SKU, e.g. Burstable.
	Tier *SKUTier `json:"tier,omitempty"`
}

// Server - Represents a server.
type Server struct {
	api.TrackedResource

	// Describes the identity of the application.
	Identity *UserAssignedIdentity `json:"identity,omitempty"`

	// Properties of the server.
	Properties *ServerProperties `json:"properties,omitempty"`

	// The SKU (pricing tier) of the server.
	SKU *SKU `json:"sku,omitempty"`
}

// ServerForUpdate - Represents a server to be updated.
type ServerForUpdate struct {
	// Describes the identity of the application.
	Identity *UserAssignedIdentity `json:"identity,omitempty"`

	// The location the resource resides in.
	Location *string `json:"location,omitempty"`

	// Properties of the server.
	Properties *ServerPropertiesForUpdate `json:"properties,omitempty"`

	// The SKU (pricing tier) of the server.
	SKU *SKU `json:"sku,omitempty"`

	// Application-specific metadata in the form of key-value pairs.
	Tags map[string]*string `json:"tags,omitempty"`
}

// ServerProperties - The properties of a server.
type ServerProperties struct {
	// The administrator's login name of a server. Can only be specified when the server is being created (and is required for
	// creation).
	AdministratorLogin *string `json:"administratorLogin,omitempty"`

	// The administrator login password (required for server creation).
	AdministratorLoginPassword *string `json:"administratorLoginPassword,omitempty"`

	// AuthConfig properties of a server.
	AuthConfig *AuthConfig `json:"authConfig,omitempty"`

	// availability zone information of the server.
	AvailabilityZone *string `json:"availabilityZone,omitempty"`

	// Backup properties of a server.
	Backup *Backup `json:"backup,omitempty"`

	// The mode to create a new PostgreSQL server.
	CreateMode *CreateMode `json:"createMode,omitempty"`

	// High availability properties of a server.
	HighAvailability *HighAvailability `json:"highAvailability,omitempty"`

	// Maintenance window properties of a server.
	MaintenanceWindow *MaintenanceWindow `json:"maintenanceWindow,omitempty"`

	// Network properties of a server. This Network property is required to be passed only in case you want the server to be
	// Private access server.
	Network *Network `json:"network,omitempty"`

	// Restore point creation time (ISO8601 format), specifying the time to restore from. It's required when 'createMode' is
	// 'PointInTimeRestore' or 'GeoRestore'.
	PointInTimeUTC *date.Time `json:"pointInTimeUTC,omitempty"`

	// Replicas allowed for a server.
	ReplicationRole *ReplicationRole `json:"replicationRole,omitempty"`

	// The source server resource ID to restore from. It's required when 'createMode' is 'PointInTimeRestore' or 'GeoRestore'
	// or 'Replica'.
	SourceServerResourceID *string `json:"sourceServerResourceId,omitempty"`

	// Storage properties of a server.
	Storage *Storage `json:"storage,omitempty"`

	// PostgreSQL Server version.
	Version *ServerVersion `json:"version,omitempty"`

	// READ-ONLY; The fully qualified domain name of a server.
	FullyQualifiedDomainName *string `json:"fullyQualifiedDomainName,omitempty"`

	// READ-ONLY; The minor version of the server.
	MinorVersion *string `json:"minorVersion,omitempty"`

	// READ-ONLY; Replicas allowed for a server.
	ReplicaCapacity *int32 `json:"replicaCapacity,omitempty"`

	// READ-ONLY; A state of a server that is visible to user.
	State *ServerState `json:"state,omitempty"`
}

// ServerPropertiesForUpdate - The properties of a server to be updated.
type ServerPropertiesForUpdate struct {
	AdministratorLoginPassword *string            `json:"administratorLoginPassword,omitempty"`
	AuthConfig                 *AuthConfig        `json:"authConfig,omitempty"`
	Backup                     *Backup            `json:"backup,omitempty"`
	CreateMode                 *CreateMode        `json:"createMode,omitempty"`
	HighAvailability           *HighAvailability  `json:"highAvailability,omitempty"`
	MaintenanceWindow          *MaintenanceWindow `json:"maintenanceWindow,omitempty"`
	ReplicationRole            *ReplicationRole   `json:"replicationRole,omitempty"`
	Storage                    *Storage           `json:"storage,omitempty"`
	Version                    *ServerVersion     `json:"version,omitempty"`
}

// Storage properties of a server
type Storage struct {
	// Max storage allowed for a server.
	StorageSizeGB *int32 `json:"storageSizeGB,omitempty"`
}

// UserAssignedIdentity - Information describing the identities associated with this application.
type UserAssignedIdentity struct {
	// REQUIRED; the types of identities associated with this resource; currently restricted to 'None and UserAssigned'
	Type *IdentityType `json:"type,omitempty"`

	// represents user assigned identities map.
	UserAssignedIdentities map[string]*UserIdentity `json:"userAssignedIdentities,omitempty"`

	// READ-ONLY; Tenant id of the server.
	TenantID *string `json:"tenantId,omitempty"`
}

// UserIdentity - Describes a single user-assigned identity associated with the application.
type UserIdentity struct {
	// the client identifier of the Service Principal which this identity represents.
	ClientID *string `json:"clientId,omitempty"`

	// the object identifier of the Service Principal which this identity represents.
	PrincipalID *string `json:"principalId,omitempty"`
}
