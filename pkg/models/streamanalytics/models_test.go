package streamanalytics

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gork-labs/azwire/internal/modeltest"
	"github.com/gork-labs/azwire/pkg/openenum"
	"github.com/gork-labs/azwire/pkg/unions"
)

func TestEnumRoundTrip(t *testing.T) {
	t.Run("AuthenticationMode", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleAuthenticationModeValues()) })
	t.Run("BlobWriteMode", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleBlobWriteModeValues()) })
	t.Run("CompatibilityLevel", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleCompatibilityLevelValues()) })
	t.Run("ContentStoragePolicy", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleContentStoragePolicyValues()) })
	t.Run("Encoding", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleEncodingValues()) })
	t.Run("EventSerializationType", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleEventSerializationTypeValues()) })
	t.Run("EventsOutOfOrderPolicy", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleEventsOutOfOrderPolicyValues()) })
	t.Run("JobState", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleJobStateValues()) })
	t.Run("JobType", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleJobTypeValues()) })
	t.Run("JSONOutputSerializationFormat", func(t *testing.T) {
		modeltest.EnumRoundTrip(t, PossibleJSONOutputSerializationFormatValues())
	})
	t.Run("OutputErrorPolicy", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleOutputErrorPolicyValues()) })
	t.Run("OutputStartMode", func(t *testing.T) { modeltest.EnumRoundTrip(t, PossibleOutputStartModeValues()) })

	assert.Len(t, Enums(), 12)
}

func TestCompatibilityLevelNames(t *testing.T) {
	assert.Equal(t, []string{"N1_0", "N1_2"}, compatibilityLevels.Symbols())
	assert.Equal(t, []string{"1.0", "1.2"}, compatibilityLevels.Strings())
	assert.Equal(t, CompatibilityLevel("1.0"), compatibilityLevels.Decode("1.0"))
	assert.False(t, CompatibilityLevel("1.1").IsKnown())
}

func TestAuthenticationModeDefault(t *testing.T) {
	tests := []struct {
		name       string
		properties string
		want       AuthenticationMode
		wantKnown  bool
	}{
		{name: "known", properties: `{"authenticationMode":"Msi"}`, want: AuthenticationModeMsi, wantKnown: true},
		{name: "unknown", properties: `{"authenticationMode":"Foo"}`, want: "Foo"},
		{name: "absent", properties: `{"container":"logs"}`, want: AuthenticationModeConnectionString, wantKnown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"type":"Microsoft.Storage/Blob","properties":` + tt.properties + `}`

			var ds OutputDataSource
			require.NoError(t, json.Unmarshal([]byte(payload), &ds))

			blob, ok := ds.Value.(*BlobOutputDataSource)
			require.True(t, ok, "got %T", ds.Value)
			require.NotNil(t, blob.Properties.AuthenticationMode)
			assert.Equal(t, tt.want, *blob.Properties.AuthenticationMode)
			assert.Equal(t, tt.wantKnown, blob.Properties.AuthenticationMode.IsKnown())

			out, err := json.Marshal(ds)
			require.NoError(t, err)

			var wire struct {
				Properties map[string]any `json:"properties"`
			}
			require.NoError(t, json.Unmarshal(out, &wire))
			assert.Equal(t, string(tt.want), wire.Properties["authenticationMode"])
		})
	}
}

func TestDefaultOnlyForDeclaredTypes(t *testing.T) {
	var p BlobOutputDataSourceProperties
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.NotNil(t, p.AuthenticationMode)
	assert.Nil(t, p.BlobWriteMode)

	var job StreamingJobProperties
	require.NoError(t, json.Unmarshal([]byte(`{}`), &job))
	assert.Nil(t, job.CompatibilityLevel)
}

func TestOutputDataSourceDispatch(t *testing.T) {
	modeltest.UnionDispatch(t, outputDataSources, map[string]string{
		"Microsoft.Storage/Blob": `{"type":"Microsoft.Storage/Blob","properties":{
			"storageAccounts":[{"accountName":"acct"}],"container":"out","pathPattern":"{date}",
			"authenticationMode":"Msi","blobWriteMode":"Append"}}`,
		"Microsoft.ServiceBus/Queue": `{"type":"Microsoft.ServiceBus/Queue","properties":{
			"serviceBusNamespace":"ns","queueName":"q","authenticationMode":"UserToken"}}`,
		"Microsoft.EventHub/EventHub": `{"type":"Microsoft.EventHub/EventHub","properties":{
			"serviceBusNamespace":"ns","eventHubName":"hub","partitionKey":"id","authenticationMode":"ConnectionString"}}`,
		"Microsoft.Sql/Server/Database": `{"type":"Microsoft.Sql/Server/Database","properties":{
			"server":"srv","database":"db","table":"t","maxWriterCount":1,"authenticationMode":"Msi"}}`,
		"Microsoft.AzureFunction": `{"type":"Microsoft.AzureFunction","properties":{
			"functionAppName":"app","functionName":"fn","maxBatchCount":100}}`,
	})
}

func TestSerializationDispatch(t *testing.T) {
	modeltest.UnionDispatch(t, serializations, map[string]string{
		"Csv":     `{"type":"Csv","properties":{"fieldDelimiter":",","encoding":"UTF8"}}`,
		"Avro":    `{"type":"Avro","properties":{}}`,
		"Json":    `{"type":"Json","properties":{"encoding":"UTF8","format":"LineSeparated"}}`,
		"Parquet": `{"type":"Parquet"}`,
	})

	for _, v := range PossibleEventSerializationTypeValues() {
		_, ok := serializations.New(string(v))
		assert.True(t, ok, "no Serialization shape for %q", v)
	}
}

func TestUnknownDataSourceType(t *testing.T) {
	var out Output
	err := json.Unmarshal([]byte(`{"name":"o1","properties":{"datasource":{"type":"Microsoft.Kusto/clusters/databases"}}}`), &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, unions.ErrUnknownDiscriminator))

	var decodeErr *unions.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "OutputDataSource", decodeErr.Union)
	assert.Equal(t, "type", decodeErr.Field)
	assert.Equal(t, "Microsoft.Kusto/clusters/databases", decodeErr.Value)
}

func TestOutputRoundTrip(t *testing.T) {
	const payload = `{
		"id": "/subscriptions/s/resourceGroups/rg/providers/Microsoft.StreamAnalytics/streamingjobs/j/outputs/o1",
		"name": "o1",
		"type": "Microsoft.StreamAnalytics/streamingjobs/outputs",
		"properties": {
			"datasource": {
				"type": "Microsoft.EventHub/EventHub",
				"properties": {"serviceBusNamespace": "ns", "eventHubName": "hub", "propertyColumns": ["a", "b"]}
			},
			"serialization": {"type": "Json", "properties": {"encoding": "UTF8", "format": "Array"}},
			"sizeWindow": 2,
			"etag": "abc"
		}
	}`

	var first Output
	require.NoError(t, json.Unmarshal([]byte(payload), &first))

	hub, ok := first.Properties.Datasource.Value.(*EventHubOutputDataSource)
	require.True(t, ok)
	assert.Equal(t, AuthenticationModeConnectionString, *hub.Properties.AuthenticationMode)
	assert.Equal(t, "Json", first.Properties.Serialization.Discriminator())

	data, err := json.Marshal(first)
	require.NoError(t, err)

	var second Output
	require.NoError(t, json.Unmarshal(data, &second))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestScanReportsDrift(t *testing.T) {
	var job StreamingJob
	require.NoError(t, json.Unmarshal([]byte(`{
		"properties": {
			"jobState": "Hibernating",
			"compatibilityLevel": "1.2",
			"outputs": [
				{"name": "o1", "properties": {"datasource": {"type": "Microsoft.Storage/Blob", "properties": {"authenticationMode": "Foo"}}}}
			]
		}
	}`), &job))

	assert.Equal(t, []openenum.Finding{
		{Path: "$.properties.outputs[0].properties.datasource.properties.authenticationMode", Type: "AuthenticationMode", Value: "Foo"},
		{Path: "$.properties.jobState", Type: "JobState", Value: "Hibernating"},
	}, openenum.Scan(&job))
}

func TestUnionRegistries(t *testing.T) {
	var fields []string
	for _, u := range Unions() {
		fields = append(fields, u.Name()+"."+u.DiscriminatorFieldName())
	}
	assert.Equal(t, []string{"OutputDataSource.type", "Serialization.type"}, fields)
}
