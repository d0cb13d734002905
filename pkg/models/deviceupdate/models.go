// Package deviceupdate holds the Device Update for IoT Hub management models:
// devices and the update import operations.
package deviceupdate

import (
	"time"

	"github.com/gork-labs/azwire/pkg/unions"
)

// Device - Device metadata.
type Device struct {
	// REQUIRED; Device identity.
	DeviceID *string `json:"deviceId,omitempty" validate:"required"`

	// REQUIRED; Device class identity.
	DeviceClassID *string `json:"deviceClassId,omitempty" validate:"required"`

	// REQUIRED; Device manufacturer.
	Manufacturer *string `json:"manufacturer,omitempty" validate:"required"`

	// REQUIRED; Device model.
	Model *string `json:"model,omitempty" validate:"required"`

	// REQUIRED; Boolean flag indicating whether the latest update is installed on the device
	OnLatestUpdate *bool `json:"onLatestUpdate,omitempty" validate:"required"`

	// Device group identity.
	GroupID *string `json:"groupId,omitempty"`

	// Update that was last attempted on the device.
	LastAttemptedUpdateID *UpdateID `json:"lastAttemptedUpdateId,omitempty"`

	// State of the device in its last deployment.
	DeploymentStatus *DeviceDeploymentState `json:"deploymentStatus,omitempty"`

	// Currently installed update on device.
	InstalledUpdateID *UpdateID `json:"installedUpdateId,omitempty"`

	// The deployment identifier for the last deployment to the device
	LastDeploymentID *string `json:"lastDeploymentId,omitempty"`
}

// UpdateID - Update identifier.
type UpdateID struct {
	// REQUIRED; Update provider.
	Provider *string `json:"provider,omitempty" validate:"required"`

	// REQUIRED; Update name.
	Name *string `json:"name,omitempty" validate:"required"`

	// REQUIRED; Update version.
	Version *string `json:"version,omitempty" validate:"required"`
}

// DevicesList - The list of devices.
type DevicesList struct {
	Value    []*Device `json:"value,omitempty"`
	NextLink *string   `json:"nextLink,omitempty"`
}

// Operation metadata.
type Operation struct {
	// REQUIRED; Operation Id.
	OperationID *string `json:"operationId,omitempty" validate:"required"`

	// REQUIRED; Operation status.
	Status *OperationStatus `json:"status,omitempty" validate:"required"`

	// REQUIRED; Date and time in UTC when the operation status was last updated.
	LastActionDateTime *time.Time `json:"lastActionDateTime,omitempty" validate:"required"`

	// REQUIRED; Date and time in UTC when the operation was created.
	CreatedDateTime *time.Time `json:"createdDateTime,omitempty" validate:"required"`

	// The identity of update being imported or deleted. For import, this property will only be populated after import manifest
	// is processed successfully.
	UpdateID *UpdateID `json:"updateId,omitempty"`

	// Location of the imported update when operation is successful.
	ResourceLocation *string `json:"resourceLocation,omitempty"`

	// Operation error encountered, if any.
	Error *Error `json:"error,omitempty"`

	// Operation correlation identity that can used by Microsoft Support for troubleshooting.
	TraceID *string `json:"traceId,omitempty"`

	// Operation ETag.
	Etag *string `json:"etag,omitempty"`
}

// Error details.
type Error struct {
	// Server defined error code.
	Code *string `json:"code,omitempty"`

	// A human-readable representation of the error.
	Message *string `json:"message,omitempty"`

	Target           *string     `json:"target,omitempty"`
	Details          []*Error    `json:"details,omitempty"`
	Innererror       *InnerError `json:"innererror,omitempty"`
	OccurredDateTime *time.Time  `json:"occurredDateTime,omitempty"`
}

// InnerError - An object containing more specific information than the current object about the error.
type InnerError struct {
	Code        *string     `json:"code,omitempty"`
	Message     *string     `json:"message,omitempty"`
	ErrorDetail *string     `json:"errorDetail,omitempty"`
	InnerError  *InnerError `json:"innerError,omitempty"`
}

// OperationsList - The list of operations with server paging support.
type OperationsList struct {
	Value    []*Operation `json:"value,omitempty"`
	NextLink *string      `json:"nextLink,omitempty"`
}

// Unions returns the registries of every discriminated union in the package.
// Device Update models carry none.
func Unions() []unions.Descriptor {
	return nil
}
