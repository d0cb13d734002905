package streamanalytics

import "github.com/gork-labs/azwire/pkg/openenum"

// AuthenticationMode - Authentication Mode. Absent values decode as
// AuthenticationModeConnectionString.
type AuthenticationMode string

const (
	AuthenticationModeMsi              AuthenticationMode = "Msi"
	AuthenticationModeUserToken        AuthenticationMode = "UserToken"
	AuthenticationModeConnectionString AuthenticationMode = "ConnectionString"
)

var authenticationModes = openenum.New("AuthenticationMode",
	openenum.V(AuthenticationModeMsi),
	openenum.V(AuthenticationModeUserToken),
	openenum.V(AuthenticationModeConnectionString),
).WithDefault(AuthenticationModeConnectionString)

// PossibleAuthenticationModeValues returns the possible values for the AuthenticationMode const type.
func PossibleAuthenticationModeValues() []AuthenticationMode {
	return authenticationModes.Values()
}

// IsKnown reports whether m is a documented AuthenticationMode.
func (m AuthenticationMode) IsKnown() bool { return authenticationModes.IsKnown(m) }

// MarshalJSON implements json.Marshaler.
func (m AuthenticationMode) MarshalJSON() ([]byte, error) { return authenticationModes.MarshalJSON(m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *AuthenticationMode) UnmarshalJSON(data []byte) error {
	return authenticationModes.UnmarshalJSON(data, m)
}

// BlobWriteMode - Determines whether blob blocks are either committed automatically or appended.
type BlobWriteMode string

const (
	BlobWriteModeAppend BlobWriteMode = "Append"
	BlobWriteModeOnce   BlobWriteMode = "Once"
)

var blobWriteModes = openenum.New("BlobWriteMode",
	openenum.V(BlobWriteModeAppend),
	openenum.V(BlobWriteModeOnce),
)

// PossibleBlobWriteModeValues returns the possible values for the BlobWriteMode const type.
func PossibleBlobWriteModeValues() []BlobWriteMode {
	return blobWriteModes.Values()
}

// IsKnown reports whether m is a documented BlobWriteMode.
func (m BlobWriteMode) IsKnown() bool { return blobWriteModes.IsKnown(m) }

// MarshalJSON implements json.Marshaler.
func (m BlobWriteMode) MarshalJSON() ([]byte, error) { return blobWriteModes.MarshalJSON(m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *BlobWriteMode) UnmarshalJSON(data []byte) error {
	return blobWriteModes.UnmarshalJSON(data, m)
}

// CompatibilityLevel - Controls certain runtime behaviors of the streaming job.
type CompatibilityLevel string

const (
	CompatibilityLevelN10 CompatibilityLevel = "1.0"
	CompatibilityLevelN12 CompatibilityLevel = "1.2"
)

var compatibilityLevels = openenum.New("CompatibilityLevel",
	openenum.Variant[CompatibilityLevel]{Name: "N1_0", Value: CompatibilityLevelN10},
	openenum.Variant[CompatibilityLevel]{Name: "N1_2", Value: CompatibilityLevelN12},
)

// PossibleCompatibilityLevelValues returns the possible values for the CompatibilityLevel const type.
func PossibleCompatibilityLevelValues() []CompatibilityLevel {
	return compatibilityLevels.Values()
}

// IsKnown reports whether l is a documented CompatibilityLevel.
func (l CompatibilityLevel) IsKnown() bool { return compatibilityLevels.IsKnown(l) }

// MarshalJSON implements json.Marshaler.
func (l CompatibilityLevel) MarshalJSON() ([]byte, error) { return compatibilityLevels.MarshalJSON(l) }

// UnmarshalJSON implements json.Unmarshaler.
func (l *CompatibilityLevel) UnmarshalJSON(data []byte) error {
	return compatibilityLevels.UnmarshalJSON(data, l)
}

// ContentStoragePolicy - Where job content (query, reference data) is stored.
type ContentStoragePolicy string

const (
	ContentStoragePolicySystemAccount     ContentStoragePolicy = "SystemAccount"
	ContentStoragePolicyJobStorageAccount ContentStoragePolicy = "JobStorageAccount"
)

var contentStoragePolicies = openenum.New("ContentStoragePolicy",
	openenum.V(ContentStoragePolicySystemAccount),
	openenum.V(ContentStoragePolicyJobStorageAccount),
)

// PossibleContentStoragePolicyValues returns the possible values for the ContentStoragePolicy const type.
func PossibleContentStoragePolicyValues() []ContentStoragePolicy {
	return contentStoragePolicies.Values()
}

// IsKnown reports whether p is a documented ContentStoragePolicy.
func (p ContentStoragePolicy) IsKnown() bool { return contentStoragePolicies.IsKnown(p) }

// MarshalJSON implements json.Marshaler.
func (p ContentStoragePolicy) MarshalJSON() ([]byte, error) {
	return contentStoragePolicies.MarshalJSON(p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *ContentStoragePolicy) UnmarshalJSON(data []byte) error {
	return contentStoragePolicies.UnmarshalJSON(data, p)
}

// Encoding - Specifies the encoding of the incoming data in the case of input and the encoding of
// outgoing data in the case of output.
type Encoding string

const (
	EncodingUTF8 Encoding = "UTF8"
)

var encodings = openenum.New("Encoding",
	openenum.V(EncodingUTF8),
)

// PossibleEncodingValues returns the possible values for the Encoding const type.
func PossibleEncodingValues() []Encoding {
	return encodings.Values()
}

// IsKnown reports whether e is a documented Encoding.
func (e Encoding) IsKnown() bool { return encodings.IsKnown(e) }

// MarshalJSON implements json.Marshaler.
func (e Encoding) MarshalJSON() ([]byte, error) { return encodings.MarshalJSON(e) }

// UnmarshalJSON implements json.Unmarshaler.
func (e *Encoding) UnmarshalJSON(data []byte) error { return encodings.UnmarshalJSON(data, e) }

// EventSerializationType - Indicates the type of serialization that the input or output uses.
// It is the discriminator of the Serialization union.
type EventSerializationType string

const (
	EventSerializationTypeCSV     EventSerializationType = "Csv"
	EventSerializationTypeAvro    EventSerializationType = "Avro"
	EventSerializationTypeJSON    EventSerializationType = "Json"
	EventSerializationTypeParquet EventSerializationType = "Parquet"
)

var eventSerializationTypes = openenum.New("EventSerializationType",
	openenum.V(EventSerializationTypeCSV),
	openenum.V(EventSerializationTypeAvro),
	openenum.V(EventSerializationTypeJSON),
	openenum.V(EventSerializationTypeParquet),
)

// PossibleEventSerializationTypeValues returns the possible values for the EventSerializationType const type.
func PossibleEventSerializationTypeValues() []EventSerializationType {
	return eventSerializationTypes.Values()
}

// IsKnown reports whether t is a documented EventSerializationType.
func (t EventSerializationType) IsKnown() bool { return eventSerializationTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t EventSerializationType) MarshalJSON() ([]byte, error) {
	return eventSerializationTypes.MarshalJSON(t)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *EventSerializationType) UnmarshalJSON(data []byte) error {
	return eventSerializationTypes.UnmarshalJSON(data, t)
}

// EventsOutOfOrderPolicy - Indicates the policy to apply to events that arrive out of order in the input event stream.
type EventsOutOfOrderPolicy string

const (
	EventsOutOfOrderPolicyAdjust EventsOutOfOrderPolicy = "Adjust"
	EventsOutOfOrderPolicyDrop   EventsOutOfOrderPolicy = "Drop"
)

var eventsOutOfOrderPolicies = openenum.New("EventsOutOfOrderPolicy",
	openenum.V(EventsOutOfOrderPolicyAdjust),
	openenum.V(EventsOutOfOrderPolicyDrop),
)

// PossibleEventsOutOfOrderPolicyValues returns the possible values for the EventsOutOfOrderPolicy const type.
func PossibleEventsOutOfOrderPolicyValues() []EventsOutOfOrderPolicy {
	return eventsOutOfOrderPolicies.Values()
}

// IsKnown reports whether p is a documented EventsOutOfOrderPolicy.
func (p EventsOutOfOrderPolicy) IsKnown() bool { return eventsOutOfOrderPolicies.IsKnown(p) }

// MarshalJSON implements json.Marshaler.
func (p EventsOutOfOrderPolicy) MarshalJSON() ([]byte, error) {
	return eventsOutOfOrderPolicies.MarshalJSON(p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *EventsOutOfOrderPolicy) UnmarshalJSON(data []byte) error {
	return eventsOutOfOrderPolicies.UnmarshalJSON(data, p)
}

// JobState - The state of the streaming job.
type JobState string

const (
	JobStateCreated    JobState = "Created"
	JobStateStarting   JobState = "Starting"
	JobStateRunning    JobState = "Running"
	JobStateStopping   JobState = "Stopping"
	JobStateStopped    JobState = "Stopped"
	JobStateDeleting   JobState = "Deleting"
	JobStateFailed     JobState = "Failed"
	JobStateDegraded   JobState = "Degraded"
	JobStateRestarting JobState = "Restarting"
	JobStateScaling    JobState = "Scaling"
)

var jobStates = openenum.New("JobState",
	openenum.V(JobStateCreated),
	openenum.V(JobStateStarting),
	openenum.V(JobStateRunning),
	openenum.V(JobStateStopping),
	openenum.V(JobStateStopped),
	openenum.V(JobStateDeleting),
	openenum.V(JobStateFailed),
	openenum.V(JobStateDegraded),
	openenum.V(JobStateRestarting),
	openenum.V(JobStateScaling),
)

// PossibleJobStateValues returns the possible values for the JobState const type.
func PossibleJobStateValues() []JobState {
	return jobStates.Values()
}

// IsKnown reports whether s is a documented JobState.
func (s JobState) IsKnown() bool { return jobStates.IsKnown(s) }

// MarshalJSON implements json.Marshaler.
func (s JobState) MarshalJSON() ([]byte, error) { return jobStates.MarshalJSON(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *JobState) UnmarshalJSON(data []byte) error { return jobStates.UnmarshalJSON(data, s) }

// JobType - Describes the type of the job.
type JobType string

const (
	JobTypeCloud JobType = "Cloud"
	JobTypeEdge  JobType = "Edge"
)

var jobTypes = openenum.New("JobType",
	openenum.V(JobTypeCloud),
	openenum.V(JobTypeEdge),
)

// PossibleJobTypeValues returns the possible values for the JobType const type.
func PossibleJobTypeValues() []JobType {
	return jobTypes.Values()
}

// IsKnown reports whether t is a documented JobType.
func (t JobType) IsKnown() bool { return jobTypes.IsKnown(t) }

// MarshalJSON implements json.Marshaler.
func (t JobType) MarshalJSON() ([]byte, error) { return jobTypes.MarshalJSON(t) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *JobType) UnmarshalJSON(data []byte) error { return jobTypes.UnmarshalJSON(data, t) }

// JSONOutputSerializationFormat - Specifies the format of the JSON the output will be written in.
type JSONOutputSerializationFormat string

const (
	JSONOutputSerializationFormatLineSeparated JSONOutputSerializationFormat = "LineSeparated"
	JSONOutputSerializationFormatArray         JSONOutputSerializationFormat = "Array"
)

var jsonOutputSerializationFormats = openenum.New("JsonOutputSerializationFormat",
	openenum.V(JSONOutputSerializationFormatLineSeparated),
	openenum.V(JSONOutputSerializationFormatArray),
)

// PossibleJSONOutputSerializationFormatValues returns the possible values for the JSONOutputSerializationFormat const type.
func PossibleJSONOutputSerializationFormatValues() []JSONOutputSerializationFormat {
	return jsonOutputSerializationFormats.Values()
}

// IsKnown reports whether f is a documented JSONOutputSerializationFormat.
func (f JSONOutputSerializationFormat) IsKnown() bool {
	return jsonOutputSerializationFormats.IsKnown(f)
}

// MarshalJSON implements json.Marshaler.
func (f JSONOutputSerializationFormat) MarshalJSON() ([]byte, error) {
	return jsonOutputSerializationFormats.MarshalJSON(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *JSONOutputSerializationFormat) UnmarshalJSON(data []byte) error {
	return jsonOutputSerializationFormats.UnmarshalJSON(data, f)
}

// OutputErrorPolicy - Indicates the policy to apply to events that arrive at the output and cannot be
// written to the external storage due to being malformed.
type OutputErrorPolicy string

const (
	OutputErrorPolicyStop OutputErrorPolicy = "Stop"
	OutputErrorPolicyDrop OutputErrorPolicy = "Drop"
)

var outputErrorPolicies = openenum.New("OutputErrorPolicy",
	openenum.V(OutputErrorPolicyStop),
	openenum.V(OutputErrorPolicyDrop),
)

// PossibleOutputErrorPolicyValues returns the possible values for the OutputErrorPolicy const type.
func PossibleOutputErrorPolicyValues() []OutputErrorPolicy {
	return outputErrorPolicies.Values()
}

// IsKnown reports whether p is a documented OutputErrorPolicy.
func (p OutputErrorPolicy) IsKnown() bool { return outputErrorPolicies.IsKnown(p) }

// MarshalJSON implements json.Marshaler.
func (p OutputErrorPolicy) MarshalJSON() ([]byte, error) { return outputErrorPolicies.MarshalJSON(p) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *OutputErrorPolicy) UnmarshalJSON(data []byte) error {
	return outputErrorPolicies.UnmarshalJSON(data, p)
}

// OutputStartMode - Specifies whether the job should start producing output at a given timestamp.
type OutputStartMode string

const (
	OutputStartModeJobStartTime        OutputStartMode = "JobStartTime"
	OutputStartModeCustomTime          OutputStartMode = "CustomTime"
	OutputStartModeLastOutputEventTime OutputStartMode = "LastOutputEventTime"
)

var outputStartModes = openenum.New("OutputStartMode",
	openenum.V(OutputStartModeJobStartTime),
	openenum.V(OutputStartModeCustomTime),
	openenum.V(OutputStartModeLastOutputEventTime),
)

// PossibleOutputStartModeValues returns the possible values for the OutputStartMode const type.
func PossibleOutputStartModeValues() []OutputStartMode {
	return outputStartModes.Values()
}

// IsKnown reports whether m is a documented OutputStartMode.
func (m OutputStartMode) IsKnown() bool { return outputStartModes.IsKnown(m) }

// MarshalJSON implements json.Marshaler.
func (m OutputStartMode) MarshalJSON() ([]byte, error) { return outputStartModes.MarshalJSON(m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *OutputStartMode) UnmarshalJSON(data []byte) error {
	return outputStartModes.UnmarshalJSON(data, m)
}

// Enums returns the tables of every open enum in the package.
func Enums() []openenum.Descriptor {
	return []openenum.Descriptor{
		authenticationModes,
		blobWriteModes,
		compatibilityLevels,
		contentStoragePolicies,
		encodings,
		eventSerializationTypes,
		eventsOutOfOrderPolicies,
		jobStates,
		jobTypes,
		jsonOutputSerializationFormats,
		outputErrorPolicies,
		outputStartModes,
	}
}
