// Package streamanalytics holds the Azure Stream Analytics streaming job and
// output models, and the clients that list them.
package streamanalytics

import (
	"time"

	"github.com/gork-labs/azwire/pkg/unions"
)

// Output - An output object, containing all information associated with the named output.
type Output struct {
	// Resource Id
	ID *string `json:"id,omitempty"`

	// Resource name
	Name *string `json:"name,omitempty"`

	// Resource type
	Type *string `json:"type,omitempty"`

	// The properties that are associated with an output.
	Properties *OutputProperties `json:"properties,omitempty"`
}

// OutputProperties - The properties that are associated with an output.
type OutputProperties struct {
	// Describes the data source that output will be written to.
	Datasource *OutputDataSource `json:"datasource,omitempty"`

	// Describes how data from an input is serialized or how data is serialized when written to an output.
	Serialization *Serialization `json:"serialization,omitempty"`

	TimeWindow *string  `json:"timeWindow,omitempty"`
	SizeWindow *float32 `json:"sizeWindow,omitempty"`

	// READ-ONLY; Describes conditions applicable to the Input, Output, or the job overall, that warrant customer attention.
	Diagnostics *Diagnostics `json:"diagnostics,omitempty"`

	// READ-ONLY; The current entity tag for the output.
	Etag *string `json:"etag,omitempty"`
}

// Diagnostics - Describes conditions applicable to the Input, Output, or the job overall, that warrant customer attention.
type Diagnostics struct {
	Conditions []*DiagnosticCondition `json:"conditions,omitempty"`
}

// DiagnosticCondition - Condition applicable to the resource, or to the job overall, that warrant customer attention.
type DiagnosticCondition struct {
	Since   *string `json:"since,omitempty"`
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
}

// OutputListResult - Object containing a list of outputs under a streaming job.
type OutputListResult struct {
	// READ-ONLY; A list of outputs under a streaming job. Populated by a 'List' operation.
	Value []*Output `json:"value,omitempty"`

	// READ-ONLY; The link (url) to the next page of results.
	NextLink *string `json:"nextLink,omitempty"`
}

// OutputDataSourceClassification is implemented by every output data source shape.
type OutputDataSourceClassification interface {
	unions.Discriminator
	isOutputDataSource()
}

var outputDataSources = unions.NewRegistry[OutputDataSourceClassification]("OutputDataSource", "type").Register(
	func() OutputDataSourceClassification { return &BlobOutputDataSource{} },
	func() OutputDataSourceClassification { return &ServiceBusQueueOutputDataSource{} },
	func() OutputDataSourceClassification { return &EventHubOutputDataSource{} },
	func() OutputDataSourceClassification { return &AzureSQLDatabaseOutputDataSource{} },
	func() OutputDataSourceClassification { return &AzureFunctionOutputDataSource{} },
)

type outputDataSourceUnion struct{}

func (outputDataSourceUnion) Registry() *unions.Registry[OutputDataSourceClassification] {
	return outputDataSources
}

// OutputDataSource holds one output data source shape, selected by the "type" field.
type OutputDataSource = unions.Tagged[OutputDataSourceClassification, outputDataSourceUnion]

// BlobOutputDataSource - Describes a blob output data source.
type BlobOutputDataSource struct {
	Properties *BlobOutputDataSourceProperties `json:"properties,omitempty"`
}

func (*BlobOutputDataSource) DiscriminatorValue() string { return "Microsoft.Storage/Blob" }
func (*BlobOutputDataSource) isOutputDataSource()        {}

// BlobOutputDataSourceProperties - The properties that are associated with a blob output.
type BlobOutputDataSourceProperties struct {
	// A list of one or more Azure Storage accounts.
	StorageAccounts []*StorageAccount `json:"storageAccounts,omitempty"`

	// The name of a container within the associated Storage account.
	Container *string `json:"container,omitempty"`

	// The blob path pattern, e.g. "cluster1/logs/{date}/{time}".
	PathPattern *string `json:"pathPattern,omitempty"`

	DateFormat *string `json:"dateFormat,omitempty"`
	TimeFormat *string `json:"timeFormat,omitempty"`

	// Authentication Mode.
	AuthenticationMode *AuthenticationMode `json:"authenticationMode,omitempty"`

	BlobPathPrefix *string        `json:"blobPathPrefix,omitempty"`
	BlobWriteMode  *BlobWriteMode `json:"blobWriteMode,omitempty"`
}

// StorageAccount - The properties that are associated with an Azure Storage account.
type StorageAccount struct {
	AccountName *string `json:"accountName,omitempty"`
	AccountKey  *string `json:"accountKey,omitempty"`
}

// ServiceBusQueueOutputDataSource - Describes a Service Bus Queue output data source.
type ServiceBusQueueOutputDataSource struct {
	Properties *ServiceBusQueueOutputDataSourceProperties `json:"properties,omitempty"`
}

func (*ServiceBusQueueOutputDataSource) DiscriminatorValue() string {
	return "Microsoft.ServiceBus/Queue"
}
func (*ServiceBusQueueOutputDataSource) isOutputDataSource() {}

// ServiceBusQueueOutputDataSourceProperties - The properties that are associated with a Service Bus Queue output.
type ServiceBusQueueOutputDataSourceProperties struct {
	ServiceBusNamespace    *string             `json:"serviceBusNamespace,omitempty"`
	SharedAccessPolicyName *string             `json:"sharedAccessPolicyName,omitempty"`
	SharedAccessPolicyKey  *string             `json:"sharedAccessPolicyKey,omitempty"`
	AuthenticationMode     *AuthenticationMode `json:"authenticationMode,omitempty"`
	QueueName              *string             `json:"queueName,omitempty"`
	PropertyColumns        []*string           `json:"propertyColumns,omitempty"`
	SystemPropertyColumns  map[string]any      `json:"systemPropertyColumns,omitempty"`
}

// EventHubOutputDataSource - Describes an Event Hub output data source.
type EventHubOutputDataSource struct {
	Properties *EventHubOutputDataSourceProperties `json:"properties,omitempty"`
}

func (*EventHubOutputDataSource) DiscriminatorValue() string { return "Microsoft.EventHub/EventHub" }
func (*EventHubOutputDataSource) isOutputDataSource()        {}

// EventHubOutputDataSourceProperties - The properties that are associated with an Event Hub output.
type EventHubOutputDataSourceProperties struct {
	ServiceBusNamespace    *string             `json:"serviceBusNamespace,omitempty"`
	SharedAccessPolicyName *string             `json:"sharedAccessPolicyName,omitempty"`
	SharedAccessPolicyKey  *string             `json:"sharedAccessPolicyKey,omitempty"`
	AuthenticationMode     *AuthenticationMode `json:"authenticationMode,omitempty"`
	EventHubName           *string             `json:"eventHubName,omitempty"`
	PartitionKey           *string             `json:"partitionKey,omitempty"`
	PropertyColumns        []*string           `json:"propertyColumns,omitempty"`
}

// AzureSQLDatabaseOutputDataSource - Describes an Azure SQL database output data source.
type AzureSQLDatabaseOutputDataSource struct {
	Properties *AzureSQLDatabaseOutputDataSourceProperties `json:"properties,omitempty"`
}

func (*AzureSQLDatabaseOutputDataSource) DiscriminatorValue() string {
	return "Microsoft.Sql/Server/Database"
}
func (*AzureSQLDatabaseOutputDataSource) isOutputDataSource() {}

// AzureSQLDatabaseOutputDataSourceProperties - The properties that are associated with an Azure SQL database output.
type AzureSQLDatabaseOutputDataSourceProperties struct {
	Server             *string             `json:"server,omitempty"`
	Database           *string             `json:"database,omitempty"`
	User               *string             `json:"user,omitempty"`
	Password           *string             `json:"password,omitempty"`
	Table              *string             `json:"table,omitempty"`
	MaxBatchCount      *float32            `json:"maxBatchCount,omitempty"`
	MaxWriterCount     *float32            `json:"maxWriterCount,omitempty"`
	AuthenticationMode *AuthenticationMode `json:"authenticationMode,omitempty"`
}

// AzureFunctionOutputDataSource - Defines the metadata of AzureFunctionOutputDataSource.
type AzureFunctionOutputDataSource struct {
	Properties *AzureFunctionOutputDataSourceProperties `json:"properties,omitempty"`
}

func (*AzureFunctionOutputDataSource) DiscriminatorValue() string { return "Microsoft.AzureFunction" }
func (*AzureFunctionOutputDataSource) isOutputDataSource()        {}

// AzureFunctionOutputDataSourceProperties - The properties that are associated with an Azure Function output.
type AzureFunctionOutputDataSourceProperties struct {
	FunctionAppName *string  `json:"functionAppName,omitempty"`
	FunctionName    *string  `json:"functionName,omitempty"`
	APIKey          *string  `json:"apiKey,omitempty"`
	MaxBatchSize    *float32 `json:"maxBatchSize,omitempty"`
	MaxBatchCount   *float32 `json:"maxBatchCount,omitempty"`
}

// SerializationClassification is implemented by every serialization shape.
type SerializationClassification interface {
	unions.Discriminator
	isSerialization()
}

var serializations = unions.NewRegistry[SerializationClassification]("Serialization", "type").Register(
	func() SerializationClassification { return &CSVSerialization{} },
	func() SerializationClassification { return &AvroSerialization{} },
	func() SerializationClassification { return &JSONSerialization{} },
	func() SerializationClassification { return &ParquetSerialization{} },
)

type serializationUnion struct{}

func (serializationUnion) Registry() *unions.Registry[SerializationClassification] {
	return serializations
}

// Serialization holds one serialization shape, selected by the "type" field.
type Serialization = unions.Tagged[SerializationClassification, serializationUnion]

// CSVSerialization - Describes how data is serialized when written to an output in CSV format.
type CSVSerialization struct {
	Properties *CSVSerializationProperties `json:"properties,omitempty"`
}

func (*CSVSerialization) DiscriminatorValue() string { return string(EventSerializationTypeCSV) }
func (*CSVSerialization) isSerialization()           {}

// CSVSerializationProperties - The properties that are associated with the CSV serialization type.
type CSVSerializationProperties struct {
	FieldDelimiter *string   `json:"fieldDelimiter,omitempty"`
	Encoding       *Encoding `json:"encoding,omitempty"`
}

// AvroSerialization - Describes how data is serialized when written to an output in Avro format.
type AvroSerialization struct {
	Properties any `json:"properties,omitempty"`
}

func (*AvroSerialization) DiscriminatorValue() string { return string(EventSerializationTypeAvro) }
func (*AvroSerialization) isSerialization()           {}

// JSONSerialization - Describes how data is serialized when written to an output in JSON format.
type JSONSerialization struct {
	Properties *JSONSerializationProperties `json:"properties,omitempty"`
}

func (*JSONSerialization) DiscriminatorValue() string { return string(EventSerializationTypeJSON) }
func (*JSONSerialization) isSerialization()           {}

// JSONSerializationProperties - The properties that are associated with the JSON serialization type.
type JSONSerializationProperties struct {
	Encoding *Encoding                      `json:"encoding,omitempty"`
	Format   *JSONOutputSerializationFormat `json:"format,omitempty"`
}

// ParquetSerialization - Describes how data is serialized when written to an output in Parquet format.
type ParquetSerialization struct {
	Properties any `json:"properties,omitempty"`
}

func (*ParquetSerialization) DiscriminatorValue() string {
	return string(EventSerializationTypeParquet)
}
func (*ParquetSerialization) isSerialization() {}

// StreamingJob - A streaming job object, containing all information associated with the named streaming job.
type StreamingJob struct {
	// The geo-location where the resource lives
	Location *string `json:"location,omitempty"`

	// Resource tags.
	Tags map[string]*string `json:"tags,omitempty"`

	// The properties that are associated with a streaming job.
	Properties *StreamingJobProperties `json:"properties,omitempty"`

	// READ-ONLY
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// StreamingJobProperties - The properties that are associated with a streaming job.
type StreamingJobProperties struct {
	JobType                            *JobType                `json:"jobType,omitempty"`
	OutputStartMode                    *OutputStartMode        `json:"outputStartMode,omitempty"`
	OutputStartTime                    *time.Time              `json:"outputStartTime,omitempty"`
	EventsOutOfOrderPolicy             *EventsOutOfOrderPolicy `json:"eventsOutOfOrderPolicy,omitempty"`
	OutputErrorPolicy                  *OutputErrorPolicy      `json:"outputErrorPolicy,omitempty"`
	EventsOutOfOrderMaxDelayInSeconds  *int32                  `json:"eventsOutOfOrderMaxDelayInSeconds,omitempty"`
	EventsLateArrivalMaxDelayInSeconds *int32                  `json:"eventsLateArrivalMaxDelayInSeconds,omitempty"`
	DataLocale                         *string                 `json:"dataLocale,omitempty"`
	CompatibilityLevel                 *CompatibilityLevel     `json:"compatibilityLevel,omitempty"`
	Outputs                            []*Output               `json:"outputs,omitempty"`
	ContentStoragePolicy               *ContentStoragePolicy   `json:"contentStoragePolicy,omitempty"`

	// READ-ONLY
	JobID               *string    `json:"jobId,omitempty"`
	ProvisioningState   *string    `json:"provisioningState,omitempty"`
	JobState            *JobState  `json:"jobState,omitempty"`
	LastOutputEventTime *time.Time `json:"lastOutputEventTime,omitempty"`
	CreatedDate         *time.Time `json:"createdDate,omitempty"`
	Etag                *string    `json:"etag,omitempty"`
}

// StreamingJobListResult - Object containing a list of streaming jobs.
type StreamingJobListResult struct {
	Value    []*StreamingJob `json:"value,omitempty"`
	NextLink *string         `json:"nextLink,omitempty"`
}

// Unions returns the registries of every discriminated union in the package.
func Unions() []unions.Descriptor {
	return []unions.Descriptor{outputDataSources, serializations}
}
