package workloads

import "github.com/gork-labs/azwire/pkg/openenum"

// CreatedByType - The type of identity that created the resource.
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

var createdByTypes = openenum.New("CreatedByType",
	openenum.V(CreatedByTypeApplication),
	openenum.V(CreatedByTypeKey),
	openenum.V(CreatedByTypeManagedIdentity),
	openenum.V(CreatedByTypeUser),
)

// PossibleCreatedByTypeValues returns the possible values for the CreatedByType const type.
func PossibleCreatedByTypeValues() []CreatedByType {
	return createdByTypes.Values()
}

// IsKnown reports whether t is a documented CreatedByType.
func (t CreatedByType) IsKnown() bool { return createdByTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t CreatedByType) MarshalJSON() ([]byte, error) { return createdByTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *CreatedByType) UnmarshalJSON(data []byte) error {
	return createdByTypes.UnmarshalJSON(data, t)
}

// ManagedServiceIdentityType - Type of managed service identity (only None, UserAssigned types are allowed).
type ManagedServiceIdentityType string

const (
	ManagedServiceIdentityTypeNone         ManagedServiceIdentityType = "None"
	ManagedServiceIdentityTypeUserAssigned ManagedServiceIdentityType = "UserAssigned"
)

var managedServiceIdentityTypes = openenum.New("ManagedServiceIdentityType",
	openenum.V(ManagedServiceIdentityTypeNone),
	openenum.V(ManagedServiceIdentityTypeUserAssigned),
)

// PossibleManagedServiceIdentityTypeValues returns the possible values for the ManagedServiceIdentityType const type.
func PossibleManagedServiceIdentityTypeValues() []ManagedServiceIdentityType {
	return managedServiceIdentityTypes.Values()
}

// IsKnown reports whether t is a documented ManagedServiceIdentityType.
func (t ManagedServiceIdentityType) IsKnown() bool { return managedServiceIdentityTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t ManagedServiceIdentityType) MarshalJSON() ([]byte, error) {
	return managedServiceIdentityTypes.MarshalJSON(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ManagedServiceIdentityType) UnmarshalJSON(data []byte) error {
	return managedServiceIdentityTypes.UnmarshalJSON(data, t)
}

// NamingPatternType - The pattern type to be used for resource naming.
type NamingPatternType string

const (
	NamingPatternTypeFullResourceName NamingPatternType = "FullResourceName"
)

var namingPatternTypes = openenum.New("NamingPatternType",
	openenum.V(NamingPatternTypeFullResourceName),
)

// PossibleNamingPatternTypeValues returns the possible values for the NamingPatternType const type.
func PossibleNamingPatternTypeValues() []NamingPatternType {
	return namingPatternTypes.Values()
}

// IsKnown reports whether t is a documented NamingPatternType.
func (t NamingPatternType) IsKnown() bool { return namingPatternTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t NamingPatternType) MarshalJSON() ([]byte, error) { return namingPatternTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *NamingPatternType) UnmarshalJSON(data []byte) error {
	return namingPatternTypes.UnmarshalJSON(data, t)
}

// OSType - The OS Type. It is the discriminator of the OSConfiguration union.
type OSType string

const (
	OSTypeLinux   OSType = "Linux"
	OSTypeWindows OSType = "Windows"
)

var osTypes = openenum.New("OSType",
	openenum.V(OSTypeLinux),
	openenum.V(OSTypeWindows),
)

// PossibleOSTypeValues returns the possible values for the OSType const type.
func PossibleOSTypeValues() []OSType {
	return osTypes.Values()
}

// IsKnown reports whether t is a documented OSType.
func (t OSType) IsKnown() bool { return osTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t OSType) MarshalJSON() ([]byte, error) { return osTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *OSType) UnmarshalJSON(data []byte) error { return osTypes.UnmarshalJSON(data, t) }

// ProvisioningState - Defines the provisioning states.
type ProvisioningState string

const (
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
)

var provisioningStates = openenum.New("ProvisioningState",
	openenum.V(ProvisioningStateSucceeded),
	openenum.V(ProvisioningStateUpdating),
	openenum.V(ProvisioningStateCreating),
	openenum.V(ProvisioningStateFailed),
	openenum.V(ProvisioningStateDeleting),
)

// PossibleProvisioningStateValues returns the possible values for the ProvisioningState const type.
func PossibleProvisioningStateValues() []ProvisioningState {
	return provisioningStates.Values()
}

// IsKnown reports whether s is a documented ProvisioningState.
func (s ProvisioningState) IsKnown() bool { return provisioningStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s ProvisioningState) MarshalJSON() ([]byte, error) { return provisioningStates.MarshalJSON(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *ProvisioningState) UnmarshalJSON(data []byte) error {
	return provisioningStates.UnmarshalJSON(data, s)
}

// SAPConfigurationType - The configuration Type. It is the discriminator of the SAPConfiguration union.
type SAPConfigurationType string

const (
	SAPConfigurationTypeDeployment             SAPConfigurationType = "Deployment"
	SAPConfigurationTypeDeploymentWithOSConfig SAPConfigurationType = "DeploymentWithOSConfig"
	SAPConfigurationTypeDiscovery              SAPConfigurationType = "Discovery"
)

var sapConfigurationTypes = openenum.New("SAPConfigurationType",
	openenum.V(SAPConfigurationTypeDeployment),
	openenum.V(SAPConfigurationTypeDeploymentWithOSConfig),
	openenum.V(SAPConfigurationTypeDiscovery),
)

// PossibleSAPConfigurationTypeValues returns the possible values for the SAPConfigurationType const type.
func PossibleSAPConfigurationTypeValues() []SAPConfigurationType {
	return sapConfigurationTypes.Values()
}

// IsKnown reports whether t is a documented SAPConfigurationType.
func (t SAPConfigurationType) IsKnown() bool { return sapConfigurationTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPConfigurationType) MarshalJSON() ([]byte, error) {
	return sapConfigurationTypes.MarshalJSON(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPConfigurationType) UnmarshalJSON(data []byte) error {
	return sapConfigurationTypes.UnmarshalJSON(data, t)
}

// SAPDatabaseType - Defines the supported SAP Database types.
type SAPDatabaseType string

const (
	SAPDatabaseTypeHANA SAPDatabaseType = "HANA"
	SAPDatabaseTypeDB2  SAPDatabaseType = "DB2"
)

var sapDatabaseTypes = openenum.New("SAPDatabaseType",
	openenum.V(SAPDatabaseTypeHANA),
	openenum.V(SAPDatabaseTypeDB2),
)

// PossibleSAPDatabaseTypeValues returns the possible values for the SAPDatabaseType const type.
func PossibleSAPDatabaseTypeValues() []SAPDatabaseType {
	return sapDatabaseTypes.Values()
}

// IsKnown reports whether t is a documented SAPDatabaseType.
func (t SAPDatabaseType) IsKnown() bool { return sapDatabaseTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPDatabaseType) MarshalJSON() ([]byte, error) { return sapDatabaseTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPDatabaseType) UnmarshalJSON(data []byte) error {
	return sapDatabaseTypes.UnmarshalJSON(data, t)
}

// SAPDeploymentType - The type of SAP deployment, single server or Three tier. It is the discriminator of the InfrastructureConfiguration union.
type SAPDeploymentType string

const (
	SAPDeploymentTypeSingleServer SAPDeploymentType = "SingleServer"
	SAPDeploymentTypeThreeTier    SAPDeploymentType = "ThreeTier"
)

var sapDeploymentTypes = openenum.New("SAPDeploymentType",
	openenum.V(SAPDeploymentTypeSingleServer),
	openenum.V(SAPDeploymentTypeThreeTier),
)

// PossibleSAPDeploymentTypeValues returns the possible values for the SAPDeploymentType const type.
func PossibleSAPDeploymentTypeValues() []SAPDeploymentType {
	return sapDeploymentTypes.Values()
}

// IsKnown reports whether t is a documented SAPDeploymentType.
func (t SAPDeploymentType) IsKnown() bool { return sapDeploymentTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPDeploymentType) MarshalJSON() ([]byte, error) { return sapDeploymentTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPDeploymentType) UnmarshalJSON(data []byte) error {
	return sapDeploymentTypes.UnmarshalJSON(data, t)
}

// SAPEnvironmentType - Defines the environment type - Production/Non Production.
type SAPEnvironmentType string

const (
	SAPEnvironmentTypeNonProd SAPEnvironmentType = "NonProd"
	SAPEnvironmentTypeProd    SAPEnvironmentType = "Prod"
)

var sapEnvironmentTypes = openenum.New("SAPEnvironmentType",
	openenum.V(SAPEnvironmentTypeNonProd),
	openenum.V(SAPEnvironmentTypeProd),
)

// PossibleSAPEnvironmentTypeValues returns the possible values for the SAPEnvironmentType const type.
func PossibleSAPEnvironmentTypeValues() []SAPEnvironmentType {
	return sapEnvironmentTypes.Values()
}

// IsKnown reports whether t is a documented SAPEnvironmentType.
func (t SAPEnvironmentType) IsKnown() bool { return sapEnvironmentTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPEnvironmentType) MarshalJSON() ([]byte, error) { return sapEnvironmentTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPEnvironmentType) UnmarshalJSON(data []byte) error {
	return sapEnvironmentTypes.UnmarshalJSON(data, t)
}

// SAPHealthState - Defines the health of SAP Instances.
type SAPHealthState string

const (
	SAPHealthStateUnknown   SAPHealthState = "Unknown"
	SAPHealthStateHealthy   SAPHealthState = "Healthy"
	SAPHealthStateUnhealthy SAPHealthState = "Unhealthy"
	SAPHealthStateDegraded  SAPHealthState = "Degraded"
)

var sapHealthStates = openenum.New("SAPHealthState",
	openenum.V(SAPHealthStateUnknown),
	openenum.V(SAPHealthStateHealthy),
	openenum.V(SAPHealthStateUnhealthy),
	openenum.V(SAPHealthStateDegraded),
)

// PossibleSAPHealthStateValues returns the possible values for the SAPHealthState const type.
func PossibleSAPHealthStateValues() []SAPHealthState {
	return sapHealthStates.Values()
}

// IsKnown reports whether s is a documented SAPHealthState.
func (s SAPHealthState) IsKnown() bool { return sapHealthStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s SAPHealthState) MarshalJSON() ([]byte, error) { return sapHealthStates.MarshalJSON(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *SAPHealthState) UnmarshalJSON(data []byte) error {
	return sapHealthStates.UnmarshalJSON(data, s)
}

// SAPHighAvailabilityType - The high availability type (AvailabilitySet or AvailabilityZone).
type SAPHighAvailabilityType string

const (
	SAPHighAvailabilityTypeAvailabilitySet  SAPHighAvailabilityType = "AvailabilitySet"
	SAPHighAvailabilityTypeAvailabilityZone SAPHighAvailabilityType = "AvailabilityZone"
)

var sapHighAvailabilityTypes = openenum.New("SAPHighAvailabilityType",
	openenum.V(SAPHighAvailabilityTypeAvailabilitySet),
	openenum.V(SAPHighAvailabilityTypeAvailabilityZone),
)

// PossibleSAPHighAvailabilityTypeValues returns the possible values for the SAPHighAvailabilityType const type.
func PossibleSAPHighAvailabilityTypeValues() []SAPHighAvailabilityType {
	return sapHighAvailabilityTypes.Values()
}

// IsKnown reports whether t is a documented SAPHighAvailabilityType.
func (t SAPHighAvailabilityType) IsKnown() bool { return sapHighAvailabilityTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPHighAvailabilityType) MarshalJSON() ([]byte, error) {
	return sapHighAvailabilityTypes.MarshalJSON(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPHighAvailabilityType) UnmarshalJSON(data []byte) error {
	return sapHighAvailabilityTypes.UnmarshalJSON(data, t)
}

// SAPProductType - Defines the SAP Product type.
type SAPProductType string

const (
	SAPProductTypeECC    SAPProductType = "ECC"
	SAPProductTypeS4HANA SAPProductType = "S4HANA"
	SAPProductTypeOther  SAPProductType = "Other"
)

var sapProductTypes = openenum.New("SAPProductType",
	openenum.V(SAPProductTypeECC),
	openenum.V(SAPProductTypeS4HANA),
	openenum.V(SAPProductTypeOther),
)

// PossibleSAPProductTypeValues returns the possible values for the SAPProductType const type.
func PossibleSAPProductTypeValues() []SAPProductType {
	return sapProductTypes.Values()
}

// IsKnown reports whether t is a documented SAPProductType.
func (t SAPProductType) IsKnown() bool { return sapProductTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPProductType) MarshalJSON() ([]byte, error) { return sapProductTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPProductType) UnmarshalJSON(data []byte) error {
	return sapProductTypes.UnmarshalJSON(data, t)
}

// SAPSoftwareInstallationType - The SAP software installation Type. It is the discriminator of the SoftwareConfiguration union.
type SAPSoftwareInstallationType string

const (
	SAPSoftwareInstallationTypeServiceInitiated          SAPSoftwareInstallationType = "ServiceInitiated"
	SAPSoftwareInstallationTypeSAPInstallWithoutOSConfig SAPSoftwareInstallationType = "SAPInstallWithoutOSConfig"
	SAPSoftwareInstallationTypeExternal                  SAPSoftwareInstallationType = "External"
)

var sapSoftwareInstallationTypes = openenum.New("SAPSoftwareInstallationType",
	openenum.V(SAPSoftwareInstallationTypeServiceInitiated),
	openenum.V(SAPSoftwareInstallationTypeSAPInstallWithoutOSConfig),
	openenum.V(SAPSoftwareInstallationTypeExternal),
)

// PossibleSAPSoftwareInstallationTypeValues returns the possible values for the SAPSoftwareInstallationType const type.
func PossibleSAPSoftwareInstallationTypeValues() []SAPSoftwareInstallationType {
	return sapSoftwareInstallationTypes.Values()
}

// IsKnown reports whether t is a documented SAPSoftwareInstallationType.
func (t SAPSoftwareInstallationType) IsKnown() bool { return sapSoftwareInstallationTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t SAPSoftwareInstallationType) MarshalJSON() ([]byte, error) {
	return sapSoftwareInstallationTypes.MarshalJSON(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *SAPSoftwareInstallationType) UnmarshalJSON(data []byte) error {
	return sapSoftwareInstallationTypes.UnmarshalJSON(data, t)
}

// SAPVirtualInstanceState - Defines the Virtual Instance for SAP state.
type SAPVirtualInstanceState string

const (
	SAPVirtualInstanceStateInfrastructureDeploymentPending    SAPVirtualInstanceState = "InfrastructureDeploymentPending"
	SAPVirtualInstanceStateInfrastructureDeploymentInProgress SAPVirtualInstanceState = "InfrastructureDeploymentInProgress"
	SAPVirtualInstanceStateInfrastructureDeploymentFailed     SAPVirtualInstanceState = "InfrastructureDeploymentFailed"
	SAPVirtualInstanceStateSoftwareInstallationPending        SAPVirtualInstanceState = "SoftwareInstallationPending"
	SAPVirtualInstanceStateSoftwareInstallationInProgress     SAPVirtualInstanceState = "SoftwareInstallationInProgress"
	SAPVirtualInstanceStateSoftwareInstallationFailed         SAPVirtualInstanceState = "SoftwareInstallationFailed"
	SAPVirtualInstanceStateSoftwareDetectionInProgress        SAPVirtualInstanceState = "SoftwareDetectionInProgress"
	SAPVirtualInstanceStateSoftwareDetectionFailed            SAPVirtualInstanceState = "SoftwareDetectionFailed"
	SAPVirtualInstanceStateDiscoveryPending                   SAPVirtualInstanceState = "DiscoveryPending"
	SAPVirtualInstanceStateDiscoveryInProgress                SAPVirtualInstanceState = "DiscoveryInProgress"
	SAPVirtualInstanceStateDiscoveryFailed                    SAPVirtualInstanceState = "DiscoveryFailed"
	SAPVirtualInstanceStateRegistrationComplete               SAPVirtualInstanceState = "RegistrationComplete"
)

var sapVirtualInstanceStates = openenum.New("SAPVirtualInstanceState",
	openenum.V(SAPVirtualInstanceStateInfrastructureDeploymentPending),
	openenum.V(SAPVirtualInstanceStateInfrastructureDeploymentInProgress),
	openenum.V(SAPVirtualInstanceStateInfrastructureDeploymentFailed),
	openenum.V(SAPVirtualInstanceStateSoftwareInstallationPending),
	openenum.V(SAPVirtualInstanceStateSoftwareInstallationInProgress),
	openenum.V(SAPVirtualInstanceStateSoftwareInstallationFailed),
	openenum.V(SAPVirtualInstanceStateSoftwareDetectionInProgress),
	openenum.V(SAPVirtualInstanceStateSoftwareDetectionFailed),
	openenum.V(SAPVirtualInstanceStateDiscoveryPending),
	openenum.V(SAPVirtualInstanceStateDiscoveryInProgress),
	openenum.V(SAPVirtualInstanceStateDiscoveryFailed),
	openenum.V(SAPVirtualInstanceStateRegistrationComplete),
)

// PossibleSAPVirtualInstanceStateValues returns the possible values for the SAPVirtualInstanceState const type.
func PossibleSAPVirtualInstanceStateValues() []SAPVirtualInstanceState {
	return sapVirtualInstanceStates.Values()
}

// IsKnown reports whether s is a documented SAPVirtualInstanceState.
func (s SAPVirtualInstanceState) IsKnown() bool { return sapVirtualInstanceStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s SAPVirtualInstanceState) MarshalJSON() ([]byte, error) {
	return sapVirtualInstanceStates.MarshalJSON(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SAPVirtualInstanceState) UnmarshalJSON(data []byte) error {
	return sapVirtualInstanceStates.UnmarshalJSON(data, s)
}

// SAPVirtualInstanceStatus - Defines the SAP Instance status.
type SAPVirtualInstanceStatus string

const (
	SAPVirtualInstanceStatusStarting         SAPVirtualInstanceStatus = "Starting"
	SAPVirtualInstanceStatusRunning          SAPVirtualInstanceStatus = "Running"
	SAPVirtualInstanceStatusStopping         SAPVirtualInstanceStatus = "Stopping"
	SAPVirtualInstanceStatusOffline          SAPVirtualInstanceStatus = "Offline"
	SAPVirtualInstanceStatusPartiallyRunning SAPVirtualInstanceStatus = "PartiallyRunning"
	SAPVirtualInstanceStatusUnavailable      SAPVirtualInstanceStatus = "Unavailable"
	SAPVirtualInstanceStatusSoftShutdown     SAPVirtualInstanceStatus = "SoftShutdown"
)

var sapVirtualInstanceStatuses = openenum.New("SAPVirtualInstanceStatus",
	openenum.V(SAPVirtualInstanceStatusStarting),
	openenum.V(SAPVirtualInstanceStatusRunning),
	openenum.V(SAPVirtualInstanceStatusStopping),
	openenum.V(SAPVirtualInstanceStatusOffline),
	openenum.V(SAPVirtualInstanceStatusPartiallyRunning),
	openenum.V(SAPVirtualInstanceStatusUnavailable),
	openenum.V(SAPVirtualInstanceStatusSoftShutdown),
)

// PossibleSAPVirtualInstanceStatusValues returns the possible values for the SAPVirtualInstanceStatus const type.
func PossibleSAPVirtualInstanceStatusValues() []SAPVirtualInstanceStatus {
	return sapVirtualInstanceStatuses.Values()
}

// IsKnown reports whether s is a documented SAPVirtualInstanceStatus.
func (s SAPVirtualInstanceStatus) IsKnown() bool { return sapVirtualInstanceStatuses.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s SAPVirtualInstanceStatus) MarshalJSON() ([]byte, error) {
	return sapVirtualInstanceStatuses.MarshalJSON(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SAPVirtualInstanceStatus) UnmarshalJSON(data []byte) error {
	return sapVirtualInstanceStatuses.UnmarshalJSON(data, s)
}

// SSLPreference - Gets or sets certificate preference if secure communication is enabled.
type SSLPreference string

const (
	SSLPreferenceDisabled          SSLPreference = "Disabled"
	SSLPreferenceRootCertificate   SSLPreference = "RootCertificate"
	SSLPreferenceServerCertificate SSLPreference = "ServerCertificate"
)

var sslPreferences = openenum.New("SSLPreference",
	openenum.V(SSLPreferenceDisabled),
	openenum.V(SSLPreferenceRootCertificate),
	openenum.V(SSLPreferenceServerCertificate),
)

// PossibleSSLPreferenceValues returns the possible values for the SSLPreference const type.
func PossibleSSLPreferenceValues() []SSLPreference {
	return sslPreferences.Values()
}

// IsKnown reports whether p is a documented SSLPreference.
func (p SSLPreference) IsKnown() bool { return sslPreferences.IsKnown(p) }

// MarshalJSON implements json.Marshaler.
func (p SSLPreference) MarshalJSON() ([]byte, error) { return sslPreferences.MarshalJSON(p) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *SSLPreference) UnmarshalJSON(data []byte) error {
	return sslPreferences.UnmarshalJSON(data, p)
}

// Enums returns the tables of every open enum in the package.
func Enums() []openenum.Descriptor {
	return []openenum.Descriptor{
		createdByTypes,
		managedServiceIdentityTypes,
		namingPatternTypes,
		osTypes,
		provisioningStates,
		sapConfigurationTypes,
		sapDatabaseTypes,
		sapDeploymentTypes,
		sapEnvironmentTypes,
		sapHealthStates,
		sapHighAvailabilityTypes,
		sapProductTypes,
		sapSoftwareInstallationTypes,
		sapVirtualInstanceStates,
		sapVirtualInstanceStatuses,
		sslPreferences,
	}
}
