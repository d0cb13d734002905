// Package workloads holds the Azure Workloads models for Virtual Instances for
// SAP solutions and SAP monitor provider instances.
package workloads

import (
	"time"

	"github.com/gork-labs/azwire/pkg/unions"
)

// SAPVirtualInstance - Define the Virtual Instance for SAP solutions resource.
type SAPVirtualInstance struct {
	// REQUIRED; The geo-location where the resource lives
	Location *string `json:"location,omitempty" validate:"required"`

	// REQUIRED; Defines the Virtual Instance for SAP solutions resource properties.
	Properties *SAPVirtualInstanceProperties `json:"properties,omitempty" validate:"required"`

	// A pre-created user assigned identity with appropriate roles assigned.
	Identity *UserAssignedServiceIdentity `json:"identity,omitempty"`

	// Resource tags.
	Tags map[string]*string `json:"tags,omitempty"`

	// READ-ONLY
	ID         *string     `json:"id,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Type       *string     `json:"type,omitempty"`
	SystemData *SystemData `json:"systemData,omitempty"`
}

// SAPVirtualInstanceProperties - Defines the Virtual Instance for SAP solutions resource properties.
type SAPVirtualInstanceProperties struct {
	// REQUIRED; Defines the environment type - Production/Non Production.
	Environment *SAPEnvironmentType `json:"environment,omitempty" validate:"required"`

	// REQUIRED; Defines the SAP Product type.
	SAPProduct *SAPProductType `json:"sapProduct,omitempty" validate:"required"`

	// REQUIRED; Defines if the SAP system is being created using Azure Center for SAP solutions (ACSS) or if an existing SAP
	// system is being registered with ACSS
	Configuration *SAPConfiguration `json:"configuration,omitempty" validate:"required"`

	// Managed resource group configuration
	ManagedResourceGroupConfiguration *ManagedRGConfiguration `json:"managedResourceGroupConfiguration,omitempty"`

	// READ-ONLY
	Errors            *SAPVirtualInstanceError  `json:"errors,omitempty"`
	Health            *SAPHealthState           `json:"health,omitempty"`
	ProvisioningState *ProvisioningState        `json:"provisioningState,omitempty"`
	State             *SAPVirtualInstanceState  `json:"state,omitempty"`
	Status            *SAPVirtualInstanceStatus `json:"status,omitempty"`
}

// SAPVirtualInstanceList - The response from the List Virtual Instances for SAP solutions operation.
type SAPVirtualInstanceList struct {
	Value    []*SAPVirtualInstance `json:"value,omitempty"`
	NextLink *string               `json:"nextLink,omitempty"`
}

// ManagedRGConfiguration - Managed resource group configuration
type ManagedRGConfiguration struct {
	Name *string `json:"name,omitempty"`
}

// SAPVirtualInstanceError - An error response from the Virtual Instance for SAP Workload service.
type SAPVirtualInstanceError struct {
	Properties *ErrorDefinition `json:"properties,omitempty"`
}

// ErrorDefinition - Error definition.
type ErrorDefinition struct {
	Code    *string            `json:"code,omitempty"`
	Message *string            `json:"message,omitempty"`
	Details []*ErrorDefinition `json:"details,omitempty"`
}

// SystemData - Metadata pertaining to creation and last modification of the resource.
type SystemData struct {
	CreatedAt          *time.Time     `json:"createdAt,omitempty"`
	CreatedBy          *string        `json:"createdBy,omitempty"`
	CreatedByType      *CreatedByType `json:"createdByType,omitempty"`
	LastModifiedAt     *time.Time     `json:"lastModifiedAt,omitempty"`
	LastModifiedBy     *string        `json:"lastModifiedBy,omitempty"`
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty"`
}

// UserAssignedServiceIdentity - A pre-created user assigned identity with appropriate roles assigned.
type UserAssignedServiceIdentity struct {
	// REQUIRED; Type of manage identity
	Type *ManagedServiceIdentityType `json:"type,omitempty" validate:"required"`

	// User assigned identities dictionary
	UserAssignedIdentities map[string]*UserAssignedIdentity `json:"userAssignedIdentities,omitempty"`
}

// UserAssignedIdentity - User assigned identity properties
type UserAssignedIdentity struct {
	ClientID    *string `json:"clientId,omitempty"`
	PrincipalID *string `json:"principalId,omitempty"`
}

// SAPConfigurationClassification is implemented by every SAP configuration shape.
type SAPConfigurationClassification interface {
	unions.Discriminator
	isSAPConfiguration()
}

var sapConfigurations = unions.NewRegistry[SAPConfigurationClassification]("SAPConfiguration", "configurationType").Register(
	func() SAPConfigurationClassification { return &DeploymentConfiguration{} },
	func() SAPConfigurationClassification { return &DeploymentWithOSConfiguration{} },
	func() SAPConfigurationClassification { return &DiscoveryConfiguration{} },
)

type sapConfigurationUnion struct{}

func (sapConfigurationUnion) Registry() *unions.Registry[SAPConfigurationClassification] {
	return sapConfigurations
}

// SAPConfiguration holds one SAP configuration shape, selected by the "configurationType" field.
type SAPConfiguration = unions.Tagged[SAPConfigurationClassification, sapConfigurationUnion]

// DeploymentConfiguration - Deployment Configuration.
type DeploymentConfiguration struct {
	// The geo-location where the SAP system is to be created.
	AppLocation *string `json:"appLocation,omitempty"`

	// The infrastructure configuration.
	InfrastructureConfiguration *InfrastructureConfiguration `json:"infrastructureConfiguration,omitempty"`

	// The software configuration.
	SoftwareConfiguration *SoftwareConfiguration `json:"softwareConfiguration,omitempty"`
}

func (*DeploymentConfiguration) DiscriminatorValue() string {
	return string(SAPConfigurationTypeDeployment)
}
func (*DeploymentConfiguration) isSAPConfiguration() {}

// DeploymentWithOSConfiguration - Deployment along with OS Configuration.
type DeploymentWithOSConfiguration struct {
	AppLocation                 *string                      `json:"appLocation,omitempty"`
	InfrastructureConfiguration *InfrastructureConfiguration `json:"infrastructureConfiguration,omitempty"`
	SoftwareConfiguration       *SoftwareConfiguration       `json:"softwareConfiguration,omitempty"`

	// The OS and SAP configuration.
	OSSapConfiguration *OSSapConfiguration `json:"osSapConfiguration,omitempty"`
}

func (*DeploymentWithOSConfiguration) DiscriminatorValue() string {
	return string(SAPConfigurationTypeDeploymentWithOSConfig)
}
func (*DeploymentWithOSConfiguration) isSAPConfiguration() {}

// OSSapConfiguration - Defines the OS and SAP Configurations for Deployment
type OSSapConfiguration struct {
	DeployerVMPackages *DeployerVMPackages `json:"deployerVmPackages,omitempty"`
	SapFqdn            *string             `json:"sapFqdn,omitempty"`
}

// DeployerVMPackages - Defines the url and storage account ID where deployer VM packages are uploaded
type DeployerVMPackages struct {
	StorageAccountID *string `json:"storageAccountId,omitempty"`
	URL              *string `json:"url,omitempty"`
}

// DiscoveryConfiguration - Discovery Details.
type DiscoveryConfiguration struct {
	// The virtual machine ID of the Central Server.
	CentralServerVMID *string `json:"centralServerVmId,omitempty"`

	// The custom storage account name for the storage account created by the service in the managed resource group.
	ManagedRgStorageAccountName *string `json:"managedRgStorageAccountName,omitempty"`

	// READ-ONLY; The geo-location where the SAP system exists.
	AppLocation *string `json:"appLocation,omitempty"`
}

func (*DiscoveryConfiguration) DiscriminatorValue() string {
	return string(SAPConfigurationTypeDiscovery)
}
func (*DiscoveryConfiguration) isSAPConfiguration() {}

// InfrastructureConfigurationClassification is implemented by every infrastructure configuration shape.
type InfrastructureConfigurationClassification interface {
	unions.Discriminator
	isInfrastructureConfiguration()
}

var infrastructureConfigurations = unions.NewRegistry[InfrastructureConfigurationClassification]("InfrastructureConfiguration", "deploymentType").Register(
	func() InfrastructureConfigurationClassification { return &SingleServerConfiguration{} },
	func() InfrastructureConfigurationClassification { return &ThreeTierConfiguration{} },
)

type infrastructureConfigurationUnion struct{}

func (infrastructureConfigurationUnion) Registry() *unions.Registry[InfrastructureConfigurationClassification] {
	return infrastructureConfigurations
}

// InfrastructureConfiguration holds one deployment shape, selected by the "deploymentType" field.
type InfrastructureConfiguration = unions.Tagged[InfrastructureConfigurationClassification, infrastructureConfigurationUnion]

// SingleServerConfiguration - Gets or sets the single server configuration.
type SingleServerConfiguration struct {
	// REQUIRED; The application resource group where SAP system resources will be deployed.
	AppResourceGroup *string `json:"appResourceGroup,omitempty" validate:"required"`

	// REQUIRED; The subnet id.
	SubnetID *string `json:"subnetId,omitempty" validate:"required"`

	// REQUIRED; Gets or sets the virtual machine configuration.
	VirtualMachineConfiguration *VirtualMachineConfiguration `json:"virtualMachineConfiguration,omitempty" validate:"required"`

	// The set of custom names to be used for underlying azure resources that are part of the SAP system.
	CustomResourceNames *SingleServerCustomResourceNames `json:"customResourceNames,omitempty"`

	DatabaseType         *SAPDatabaseType      `json:"databaseType,omitempty"`
	DBDiskConfiguration  *DiskConfiguration    `json:"dbDiskConfiguration,omitempty"`
	NetworkConfiguration *NetworkConfiguration `json:"networkConfiguration,omitempty"`
}

func (*SingleServerConfiguration) DiscriminatorValue() string {
	return string(SAPDeploymentTypeSingleServer)
}
func (*SingleServerConfiguration) isInfrastructureConfiguration() {}

// ThreeTierConfiguration - Gets or sets the three tier SAP configuration. For prerequisites for creating the infrastructure,
// please see here [https://go.microsoft.com/fwlink/?linkid=2212611&clcid=0x409]
type ThreeTierConfiguration struct {
	// REQUIRED; The application resource group where SAP system resources will be deployed.
	AppResourceGroup *string `json:"appResourceGroup,omitempty" validate:"required"`

	// REQUIRED
	ApplicationServer *ApplicationServerConfiguration `json:"applicationServer,omitempty" validate:"required"`
	CentralServer     *CentralServerConfiguration     `json:"centralServer,omitempty" validate:"required"`
	DatabaseServer    *DatabaseConfiguration          `json:"databaseServer,omitempty" validate:"required"`

	CustomResourceNames    *ThreeTierCustomResourceNames  `json:"customResourceNames,omitempty"`
	HighAvailabilityConfig *HighAvailabilityConfiguration `json:"highAvailabilityConfig,omitempty"`
	NetworkConfiguration   *NetworkConfiguration          `json:"networkConfiguration,omitempty"`
}

func (*ThreeTierConfiguration) DiscriminatorValue() string {
	return string(SAPDeploymentTypeThreeTier)
}
func (*ThreeTierConfiguration) isInfrastructureConfiguration() {}

// HighAvailabilityConfiguration - Gets or sets the high availability configuration.
type HighAvailabilityConfiguration struct {
	// REQUIRED; The high availability type.
	HighAvailabilityType *SAPHighAvailabilityType `json:"highAvailabilityType,omitempty" validate:"required"`
}

// NetworkConfiguration - Defines the network configuration type for SAP system infrastructure that is being deployed
type NetworkConfiguration struct {
	// Specifies whether a secondary IP address should be added to the network interface on all VMs of the SAP system being deployed
	IsSecondaryIPEnabled *bool `json:"isSecondaryIpEnabled,omitempty"`
}

// DiskConfiguration - The Disk Configuration Details.
type DiskConfiguration struct {
	// The disk configuration for the db volume. For HANA, Required volumes are: ['hana/data', 'hana/log', hana/shared', 'usr/sap',
	// 'os'], Optional volume : ['backup'].
	DiskVolumeConfigurations map[string]*DiskVolumeConfiguration `json:"diskVolumeConfigurations,omitempty"`
}

// DiskVolumeConfiguration - The disk configuration required for the selected volume.
type DiskVolumeConfiguration struct {
	Count  *int64   `json:"count,omitempty"`
	SizeGB *int64   `json:"sizeGB,omitempty"`
	SKU    *DiskSKU `json:"sku,omitempty"`
}

// DiskSKU - The disk sku.
type DiskSKU struct {
	Name *string `json:"name,omitempty"`
}

// CentralServerConfiguration - Gets or sets the central server configuration.
type CentralServerConfiguration struct {
	InstanceCount               *int64                       `json:"instanceCount,omitempty" validate:"required"`
	SubnetID                    *string                      `json:"subnetId,omitempty" validate:"required"`
	VirtualMachineConfiguration *VirtualMachineConfiguration `json:"virtualMachineConfiguration,omitempty" validate:"required"`
}

// ApplicationServerConfiguration - Gets or sets the application server configuration.
type ApplicationServerConfiguration struct {
	InstanceCount               *int64                       `json:"instanceCount,omitempty" validate:"required"`
	SubnetID                    *string                      `json:"subnetId,omitempty" validate:"required"`
	VirtualMachineConfiguration *VirtualMachineConfiguration `json:"virtualMachineConfiguration,omitempty" validate:"required"`
}

// DatabaseConfiguration - Gets or sets the database configuration.
type DatabaseConfiguration struct {
	InstanceCount               *int64                       `json:"instanceCount,omitempty" validate:"required"`
	SubnetID                    *string                      `json:"subnetId,omitempty" validate:"required"`
	VirtualMachineConfiguration *VirtualMachineConfiguration `json:"virtualMachineConfiguration,omitempty" validate:"required"`

	DatabaseType      *SAPDatabaseType   `json:"databaseType,omitempty"`
	DiskConfiguration *DiskConfiguration `json:"diskConfiguration,omitempty"`
}

// VirtualMachineConfiguration - Defines the virtual machine configuration.
type VirtualMachineConfiguration struct {
	// REQUIRED; The image reference.
	ImageReference *ImageReference `json:"imageReference,omitempty" validate:"required"`

	// REQUIRED; The OS profile.
	OSProfile *OSProfile `json:"osProfile,omitempty" validate:"required"`

	// REQUIRED; The virtual machine size.
	VMSize *string `json:"vmSize,omitempty" validate:"required"`
}

// ImageReference - Specifies information about the image to use.
type ImageReference struct {
	Offer                *string `json:"offer,omitempty"`
	Publisher            *string `json:"publisher,omitempty"`
	SKU                  *string `json:"sku,omitempty"`
	Version              *string `json:"version,omitempty"`
	SharedGalleryImageID *string `json:"sharedGalleryImageId,omitempty"`

	// READ-ONLY
	ExactVersion *string `json:"exactVersion,omitempty"`
}

// OSProfile - Specifies the operating system settings for the virtual machine.
type OSProfile struct {
	AdminPassword *string `json:"adminPassword,omitempty"`
	AdminUsername *string `json:"adminUsername,omitempty"`

	// Specifies Windows operating system settings on the virtual machine.
	OSConfiguration *OSConfiguration `json:"osConfiguration,omitempty"`
}

// OSConfigurationClassification is implemented by every OS configuration shape.
type OSConfigurationClassification interface {
	unions.Discriminator
	isOSConfiguration()
}

var osConfigurations = unions.NewRegistry[OSConfigurationClassification]("OSConfiguration", "osType").Register(
	func() OSConfigurationClassification { return &LinuxConfiguration{} },
	func() OSConfigurationClassification { return &WindowsConfiguration{} },
)

type osConfigurationUnion struct{}

func (osConfigurationUnion) Registry() *unions.Registry[OSConfigurationClassification] {
	return osConfigurations
}

// OSConfiguration holds one OS configuration shape, selected by the "osType" field.
type OSConfiguration = unions.Tagged[OSConfigurationClassification, osConfigurationUnion]

// LinuxConfiguration - Specifies the Linux operating system settings on the virtual machine.
type LinuxConfiguration struct {
	DisablePasswordAuthentication *bool             `json:"disablePasswordAuthentication,omitempty"`
	SSH                           *SSHConfiguration `json:"ssh,omitempty"`
	SSHKeyPair                    *SSHKeyPair       `json:"sshKeyPair,omitempty"`
}

func (*LinuxConfiguration) DiscriminatorValue() string { return string(OSTypeLinux) }
func (*LinuxConfiguration) isOSConfiguration()         {}

// WindowsConfiguration - Specifies Windows operating system settings on the virtual machine.
type WindowsConfiguration struct{}

func (*WindowsConfiguration) DiscriminatorValue() string { return string(OSTypeWindows) }
func (*WindowsConfiguration) isOSConfiguration()         {}

// SSHConfiguration - SSH configuration for Linux based VMs running on Azure
type SSHConfiguration struct {
	PublicKeys []*SSHPublicKey `json:"publicKeys,omitempty"`
}

// SSHPublicKey - Contains information about SSH certificate public key.
type SSHPublicKey struct {
	KeyData *string `json:"keyData,omitempty"`
}

// SSHKeyPair - The SSH Key-pair used to authenticate with the VM.
type SSHKeyPair struct {
	PrivateKey *string `json:"privateKey,omitempty"`
	PublicKey  *string `json:"publicKey,omitempty"`
}

// SoftwareConfigurationClassification is implemented by every software configuration shape.
type SoftwareConfigurationClassification interface {
	unions.Discriminator
	isSoftwareConfiguration()
}

var softwareConfigurations = unions.NewRegistry[SoftwareConfigurationClassification]("SoftwareConfiguration", "softwareInstallationType").Register(
	func() SoftwareConfigurationClassification { return &ExternalInstallationSoftwareConfiguration{} },
	func() SoftwareConfigurationClassification { return &SAPInstallWithoutOSConfigSoftwareConfiguration{} },
	func() SoftwareConfigurationClassification { return &ServiceInitiatedSoftwareConfiguration{} },
)

type softwareConfigurationUnion struct{}

func (softwareConfigurationUnion) Registry() *unions.Registry[SoftwareConfigurationClassification] {
	return softwareConfigurations
}

// SoftwareConfiguration holds one software installation shape, selected by the "softwareInstallationType" field.
type SoftwareConfiguration = unions.Tagged[SoftwareConfigurationClassification, softwareConfigurationUnion]

// ExternalInstallationSoftwareConfiguration - The SAP Software configuration Input when the software is installed externally
// outside the service.
type ExternalInstallationSoftwareConfiguration struct {
	// The resource ID of the virtual machine containing the central server instance.
	CentralServerVMID *string `json:"centralServerVmId,omitempty"`
}

func (*ExternalInstallationSoftwareConfiguration) DiscriminatorValue() string {
	return string(SAPSoftwareInstallationTypeExternal)
}
func (*ExternalInstallationSoftwareConfiguration) isSoftwareConfiguration() {}

// SAPInstallWithoutOSConfigSoftwareConfiguration - The SAP Software configuration Input when the software is to be installed
// by service without OS Configurations.
type SAPInstallWithoutOSConfigSoftwareConfiguration struct {
	// REQUIRED
	BomURL                  *string `json:"bomUrl,omitempty" validate:"required"`
	SapBitsStorageAccountID *string `json:"sapBitsStorageAccountId,omitempty" validate:"required"`
	SoftwareVersion         *string `json:"softwareVersion,omitempty" validate:"required"`

	HighAvailabilitySoftwareConfiguration *HighAvailabilitySoftwareConfiguration `json:"highAvailabilitySoftwareConfiguration,omitempty"`
}

func (*SAPInstallWithoutOSConfigSoftwareConfiguration) DiscriminatorValue() string {
	return string(SAPSoftwareInstallationTypeSAPInstallWithoutOSConfig)
}
func (*SAPInstallWithoutOSConfigSoftwareConfiguration) isSoftwareConfiguration() {}

// ServiceInitiatedSoftwareConfiguration - The SAP Software configuration Input when the software is to be installed by service.
type ServiceInitiatedSoftwareConfiguration struct {
	// REQUIRED
	BomURL                  *string `json:"bomUrl,omitempty" validate:"required"`
	SapBitsStorageAccountID *string `json:"sapBitsStorageAccountId,omitempty" validate:"required"`
	SapFqdn                 *string `json:"sapFqdn,omitempty" validate:"required"`
	SSHPrivateKey           *string `json:"sshPrivateKey,omitempty" validate:"required"`
	SoftwareVersion         *string `json:"softwareVersion,omitempty" validate:"required"`

	HighAvailabilitySoftwareConfiguration *HighAvailabilitySoftwareConfiguration `json:"highAvailabilitySoftwareConfiguration,omitempty"`
}

func (*ServiceInitiatedSoftwareConfiguration) DiscriminatorValue() string {
	return string(SAPSoftwareInstallationTypeServiceInitiated)
}
func (*ServiceInitiatedSoftwareConfiguration) isSoftwareConfiguration() {}

// HighAvailabilitySoftwareConfiguration - Gets or sets the HA software configuration.
type HighAvailabilitySoftwareConfiguration struct {
	// REQUIRED; The fencing client id.
	FencingClientID *string `json:"fencingClientId,omitempty" validate:"required"`

	// REQUIRED; The fencing client id secret/password.
	FencingClientPassword *string `json:"fencingClientPassword,omitempty" validate:"required"`
}

// SingleServerCustomResourceNamesClassification is implemented by every single server naming shape.
type SingleServerCustomResourceNamesClassification interface {
	unions.Discriminator
	isSingleServerCustomResourceNames()
}

var singleServerCustomResourceNames = unions.NewRegistry[SingleServerCustomResourceNamesClassification]("SingleServerCustomResourceNames", "namingPatternType").Register(
	func() SingleServerCustomResourceNamesClassification { return &SingleServerFullResourceNames{} },
)

type singleServerCustomResourceNamesUnion struct{}

func (singleServerCustomResourceNamesUnion) Registry() *unions.Registry[SingleServerCustomResourceNamesClassification] {
	return singleServerCustomResourceNames
}

// SingleServerCustomResourceNames holds one naming shape, selected by the "namingPatternType" field.
type SingleServerCustomResourceNames = unions.Tagged[SingleServerCustomResourceNamesClassification, singleServerCustomResourceNamesUnion]

// SingleServerFullResourceNames - The resource name object where the specified values will be full resource names of the
// corresponding resources in a single server SAP system.
type SingleServerFullResourceNames struct {
	VirtualMachine *VirtualMachineResourceNames `json:"virtualMachine,omitempty"`
}

func (*SingleServerFullResourceNames) DiscriminatorValue() string {
	return string(NamingPatternTypeFullResourceName)
}
func (*SingleServerFullResourceNames) isSingleServerCustomResourceNames() {}

// ThreeTierCustomResourceNamesClassification is implemented by every three tier naming shape.
type ThreeTierCustomResourceNamesClassification interface {
	unions.Discriminator
	isThreeTierCustomResourceNames()
}

var threeTierCustomResourceNames = unions.NewRegistry[ThreeTierCustomResourceNamesClassification]("ThreeTierCustomResourceNames", "namingPatternType").Register(
	func() ThreeTierCustomResourceNamesClassification { return &ThreeTierFullResourceNames{} },
)

type threeTierCustomResourceNamesUnion struct{}

func (threeTierCustomResourceNamesUnion) Registry() *unions.Registry[ThreeTierCustomResourceNamesClassification] {
	return threeTierCustomResourceNames
}

// ThreeTierCustomResourceNames holds one naming shape, selected by the "namingPatternType" field.
type ThreeTierCustomResourceNames = unions.Tagged[ThreeTierCustomResourceNamesClassification, threeTierCustomResourceNamesUnion]

// ThreeTierFullResourceNames - The resource name object where the specified values will be full resource names of the corresponding
// resources in a three tier SAP system.
type ThreeTierFullResourceNames struct {
	ApplicationServer *TierFullResourceNames      `json:"applicationServer,omitempty"`
	CentralServer     *TierFullResourceNames      `json:"centralServer,omitempty"`
	DatabaseServer    *TierFullResourceNames      `json:"databaseServer,omitempty"`
	SharedStorage     *SharedStorageResourceNames `json:"sharedStorage,omitempty"`
}

func (*ThreeTierFullResourceNames) DiscriminatorValue() string {
	return string(NamingPatternTypeFullResourceName)
}
func (*ThreeTierFullResourceNames) isThreeTierCustomResourceNames() {}

// TierFullResourceNames - The full resource names object for one layer of a three tier SAP system.
type TierFullResourceNames struct {
	AvailabilitySetName *string                        `json:"availabilitySetName,omitempty"`
	LoadBalancer        *LoadBalancerResourceNames     `json:"loadBalancer,omitempty"`
	VirtualMachines     []*VirtualMachineResourceNames `json:"virtualMachines,omitempty"`
}

// LoadBalancerResourceNames - The resource names object for load balancer and related resources.
type LoadBalancerResourceNames struct {
	BackendPoolNames             []*string `json:"backendPoolNames,omitempty"`
	FrontendIPConfigurationNames []*string `json:"frontendIpConfigurationNames,omitempty"`
	HealthProbeNames             []*string `json:"healthProbeNames,omitempty"`
	LoadBalancerName             *string   `json:"loadBalancerName,omitempty"`
}

// SharedStorageResourceNames - The resource names object for shared storage.
type SharedStorageResourceNames struct {
	SharedStorageAccountName                *string `json:"sharedStorageAccountName,omitempty"`
	SharedStorageAccountPrivateEndPointName *string `json:"sharedStorageAccountPrivateEndPointName,omitempty"`
}

// VirtualMachineResourceNames - The resource names object for virtual machine and related resources.
type VirtualMachineResourceNames struct {
	DataDiskNames     map[string][]*string             `json:"dataDiskNames,omitempty"`
	HostName          *string                          `json:"hostName,omitempty"`
	NetworkInterfaces []*NetworkInterfaceResourceNames `json:"networkInterfaces,omitempty"`
	OSDiskName        *string                          `json:"osDiskName,omitempty"`
	VMName            *string                          `json:"vmName,omitempty"`
}

// NetworkInterfaceResourceNames - The resource names object for network interface and related resources.
type NetworkInterfaceResourceNames struct {
	NetworkInterfaceName *string `json:"networkInterfaceName,omitempty"`
}

// ProviderInstance - A provider instance associated with SAP monitor.
type ProviderInstance struct {
	Identity   *UserAssignedServiceIdentity `json:"identity,omitempty"`
	Properties *ProviderInstanceProperties  `json:"properties,omitempty"`

	// READ-ONLY
	ID         *string     `json:"id,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Type       *string     `json:"type,omitempty"`
	SystemData *SystemData `json:"systemData,omitempty"`
}

// ProviderInstanceProperties - Describes the properties of a provider instance.
type ProviderInstanceProperties struct {
	// Defines the provider specific properties.
	ProviderSettings *ProviderSpecificProperties `json:"providerSettings,omitempty"`

	// READ-ONLY
	Errors            *ErrorDefinition `json:"errors,omitempty"`
	ProvisioningState *string          `json:"provisioningState,omitempty"`
}

// ProviderInstanceListResult - The response from the List providers operation.
type ProviderInstanceListResult struct {
	Value    []*ProviderInstance `json:"value,omitempty"`
	NextLink *string             `json:"nextLink,omitempty"`
}

// ProviderSpecificPropertiesClassification is implemented by every monitor provider shape.
type ProviderSpecificPropertiesClassification interface {
	unions.Discriminator
	isProviderSpecificProperties()
}

var providerSpecificProperties = unions.NewRegistry[ProviderSpecificPropertiesClassification]("ProviderSpecificProperties", "providerType").Register(
	func() ProviderSpecificPropertiesClassification { return &HanaDbProviderInstanceProperties{} },
	func() ProviderSpecificPropertiesClassification { return &PrometheusOSProviderInstanceProperties{} },
	func() ProviderSpecificPropertiesClassification { return &MsSQLServerProviderInstanceProperties{} },
)

type providerSpecificPropertiesUnion struct{}

func (providerSpecificPropertiesUnion) Registry() *unions.Registry[ProviderSpecificPropertiesClassification] {
	return providerSpecificProperties
}

// ProviderSpecificProperties holds one provider shape, selected by the "providerType" field.
type ProviderSpecificProperties = unions.Tagged[ProviderSpecificPropertiesClassification, providerSpecificPropertiesUnion]

// HanaDbProviderInstanceProperties - Gets or sets the provider properties.
type HanaDbProviderInstanceProperties struct {
	DbName                   *string        `json:"dbName,omitempty"`
	DbPassword               *string        `json:"dbPassword,omitempty"`
	DbPasswordURI            *string        `json:"dbPasswordUri,omitempty"`
	DbUsername               *string        `json:"dbUsername,omitempty"`
	Hostname                 *string        `json:"hostname,omitempty"`
	InstanceNumber           *string        `json:"instanceNumber,omitempty"`
	SQLPort                  *string        `json:"sqlPort,omitempty"`
	SapSid                   *string        `json:"sapSid,omitempty"`
	SslCertificateURI        *string        `json:"sslCertificateUri,omitempty"`
	SslHostNameInCertificate *string        `json:"sslHostNameInCertificate,omitempty"`
	SslPreference            *SSLPreference `json:"sslPreference,omitempty"`
}

func (*HanaDbProviderInstanceProperties) DiscriminatorValue() string    { return "SapHana" }
func (*HanaDbProviderInstanceProperties) isProviderSpecificProperties() {}

// PrometheusOSProviderInstanceProperties - Gets or sets the PrometheusOS provider properties.
type PrometheusOSProviderInstanceProperties struct {
	PrometheusURL     *string        `json:"prometheusUrl,omitempty"`
	SapSid            *string        `json:"sapSid,omitempty"`
	SslCertificateURI *string        `json:"sslCertificateUri,omitempty"`
	SslPreference     *SSLPreference `json:"sslPreference,omitempty"`
}

func (*PrometheusOSProviderInstanceProperties) DiscriminatorValue() string    { return "PrometheusOS" }
func (*PrometheusOSProviderInstanceProperties) isProviderSpecificProperties() {}

// MsSQLServerProviderInstanceProperties - Gets or sets the SQL server provider properties.
type MsSQLServerProviderInstanceProperties struct {
	DbPassword        *string        `json:"dbPassword,omitempty"`
	DbPasswordURI     *string        `json:"dbPasswordUri,omitempty"`
	DbPort            *string        `json:"dbPort,omitempty"`
	DbUsername        *string        `json:"dbUsername,omitempty"`
	Hostname          *string        `json:"hostname,omitempty"`
	SapSid            *string        `json:"sapSid,omitempty"`
	SslCertificateURI *string        `json:"sslCertificateUri,omitempty"`
	SslPreference     *SSLPreference `json:"sslPreference,omitempty"`
}

func (*MsSQLServerProviderInstanceProperties) DiscriminatorValue() string    { return "MsSqlServer" }
func (*MsSQLServerProviderInstanceProperties) isProviderSpecificProperties() {}

// Unions returns the registries of every discriminated union in the package.
func Unions() []unions.Descriptor {
	return []unions.Descriptor{
		sapConfigurations,
		infrastructureConfigurations,
		osConfigurations,
		softwareConfigurations,
		singleServerCustomResourceNames,
		threeTierCustomResourceNames,
		providerSpecificProperties,
	}
}
