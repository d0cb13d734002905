package deviceupdate

import "github.com/gork-labs/azwire/pkg/openenum"

// DeploymentState - Deployment state.
type DeploymentState string

const (
	DeploymentStateActive     DeploymentState = "Active"
	DeploymentStateSuperseded DeploymentState = "Superseded"
	DeploymentStateCanceled   DeploymentState = "Canceled"
)

var deploymentStates = openenum.New("DeploymentState",
	openenum.V(DeploymentStateActive),
	openenum.V(DeploymentStateSuperseded),
	openenum.V(DeploymentStateCanceled),
)

// PossibleDeploymentStateValues returns the possible values for the DeploymentState const type.
func PossibleDeploymentStateValues() []DeploymentState {
	return deploymentStates.Values()
}

// IsKnown reports whether s is a documented DeploymentState.
func (s DeploymentState) IsKnown() bool { return deploymentStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s DeploymentState) MarshalJSON() ([]byte, error) { return deploymentStates.MarshalJSON(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *DeploymentState) UnmarshalJSON(data []byte) error {
	return deploymentStates.UnmarshalJSON(data, s)
}

// DeviceDeploymentState - Deployment state of a single device.
type DeviceDeploymentState string

const (
	DeviceDeploymentStateSucceeded    DeviceDeploymentState = "Succeeded"
	DeviceDeploymentStateInProgress   DeviceDeploymentState = "InProgress"
	DeviceDeploymentStateFailed       DeviceDeploymentState = "Failed"
	DeviceDeploymentStateCanceled     DeviceDeploymentState = "Canceled"
	DeviceDeploymentStateIncompatible DeviceDeploymentState = "Incompatible"
)

var deviceDeploymentStates = openenum.New("DeviceDeploymentState",
	openenum.V(DeviceDeploymentStateSucceeded),
	openenum.V(DeviceDeploymentStateInProgress),
	openenum.V(DeviceDeploymentStateFailed),
	openenum.V(DeviceDeploymentStateCanceled),
	openenum.V(DeviceDeploymentStateIncompatible),
)

// PossibleDeviceDeploymentStateValues returns the possible values for the DeviceDeploymentState const type.
func PossibleDeviceDeploymentStateValues() []DeviceDeploymentState {
	return deviceDeploymentStates.Values()
}

// IsKnown reports whether s is a documented DeviceDeploymentState.
func (s DeviceDeploymentState) IsKnown() bool { return deviceDeploymentStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s DeviceDeploymentState) MarshalJSON() ([]byte, error) {
	return deviceDeploymentStates.MarshalJSON(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *DeviceDeploymentState) UnmarshalJSON(data []byte) error {
	return deviceDeploymentStates.UnmarshalJSON(data, s)
}

// DeviceGroupType - Supported deployment group type.
type DeviceGroupType string

const (
	DeviceGroupTypeAll                    DeviceGroupType = "All"
	DeviceGroupTypeDevices                DeviceGroupType = "Devices"
	DeviceGroupTypeDeviceGroupDefinitions DeviceGroupType = "DeviceGroupDefinitions"
)

var deviceGroupTypes = openenum.New("DeviceGroupType",
	openenum.V(DeviceGroupTypeAll),
	openenum.V(DeviceGroupTypeDevices),
	openenum.V(DeviceGroupTypeDeviceGroupDefinitions),
)

// PossibleDeviceGroupTypeValues returns the possible values for the DeviceGroupType const type.
func PossibleDeviceGroupTypeValues() []DeviceGroupType {
	return deviceGroupTypes.Values()
}

// IsKnown reports whether t is a documented DeviceGroupType.
func (t DeviceGroupType) IsKnown() bool { return deviceGroupTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t DeviceGroupType) MarshalJSON() ([]byte, error) { return deviceGroupTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *DeviceGroupType) UnmarshalJSON(data []byte) error {
	return deviceGroupTypes.UnmarshalJSON(data, t)
}

// DeviceState - Deployment state of a device for a given deployment.
type DeviceState string

const (
	DeviceStateNotStarted          DeviceState = "NotStarted"
	DeviceStateIncompatible        DeviceState = "Incompatible"
	DeviceStateAlreadyInDeployment DeviceState = "AlreadyInDeployment"
	DeviceStateCanceled            DeviceState = "Canceled"
	DeviceStateInProgress          DeviceState = "InProgress"
	DeviceStateFailed              DeviceState = "Failed"
	DeviceStateSucceeded           DeviceState = "Succeeded"
)

var deviceStates = openenum.New("DeviceState",
	openenum.V(DeviceStateNotStarted),
	openenum.V(DeviceStateIncompatible),
	openenum.V(DeviceStateAlreadyInDeployment),
	openenum.V(DeviceStateCanceled),
	openenum.V(DeviceStateInProgress),
	openenum.V(DeviceStateFailed),
	openenum.V(DeviceStateSucceeded),
)

// PossibleDeviceStateValues returns the possible values for the DeviceState const type.
func PossibleDeviceStateValues() []DeviceState {
	return deviceStates.Values()
}

// IsKnown reports whether s is a documented DeviceState.
func (s DeviceState) IsKnown() bool { return deviceStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s DeviceState) MarshalJSON() ([]byte, error) { return deviceStates.MarshalJSON(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *DeviceState) UnmarshalJSON(data []byte) error { return deviceStates.UnmarshalJSON(data, s) }

// GroupType - Supported group types.
type GroupType string

const (
	GroupTypeIoTHubTag GroupType = "IoTHubTag"
)

var groupTypes = openenum.New("GroupType",
	openenum.V(GroupTypeIoTHubTag),
)

// PossibleGroupTypeValues returns the possible values for the GroupType const type.
func PossibleGroupTypeValues() []GroupType {
	return groupTypes.Values()
}

// IsKnown reports whether t is a documented GroupType.
func (t GroupType) IsKnown() bool { return groupTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t GroupType) MarshalJSON() ([]byte, error) { return groupTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *GroupType) UnmarshalJSON(data []byte) error { return groupTypes.UnmarshalJSON(data, t) }

// OperationStatus - Operation status.
type OperationStatus string

const (
	OperationStatusUndefined  OperationStatus = "Undefined"
	OperationStatusNotStarted OperationStatus = "NotStarted"
	OperationStatusRunning    OperationStatus = "Running"
	OperationStatusSucceeded  OperationStatus = "Succeeded"
	OperationStatusFailed     OperationStatus = "Failed"
)

var operationStatuses = openenum.New("OperationStatus",
	openenum.V(OperationStatusUndefined),
	openenum.V(OperationStatusNotStarted),
	openenum.V(OperationStatusRunning),
	openenum.V(OperationStatusSucceeded),
	openenum.V(OperationStatusFailed),
)

// PossibleOperationStatusValues returns the possible values for the OperationStatus const type.
func PossibleOperationStatusValues() []OperationStatus {
	return operationStatuses.Values()
}

// IsKnown reports whether s is a documented OperationStatus.
func (s OperationStatus) IsKnown() bool { return operationStatuses.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s OperationStatus) MarshalJSON() ([]byte, error) { return operationStatuses.MarshalJSON(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *OperationStatus) UnmarshalJSON(data []byte) error {
	return operationStatuses.UnmarshalJSON(data, s)
}

// Enums returns the tables of every enum in the package.
func Enums() []openenum.Descriptor {
	return []openenum.Descriptor{
		deploymentStates,
		deviceDeploymentStates,
		deviceGroupTypes,
		deviceStates,
		groupTypes,
		operationStatuses,
	}
}
