package models

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gork-labs/azwire/pkg/models/workloads"
	"github.com/gork-labs/azwire/pkg/unions"
)

func TestNames(t *testing.T) {
	names := Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "workloads.SAPVirtualInstance")
	assert.Contains(t, names, "streamanalytics.Output")
	assert.Contains(t, names, "deviceupdate.Device")
	assert.Contains(t, names, "keyvault.KeyItem")

	for _, name := range names {
		m, err := Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, m.New(), name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("workloads.Nope")
	assert.EqualError(t, err, `unknown model "workloads.Nope"`)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		json    string
		wantIs  error
		wantVal bool
	}{
		{
			name:  "single server",
			model: "workloads.InfrastructureConfiguration",
			json: `{"deploymentType":"SingleServer","appResourceGroup":"rg1","subnetId":"/subnets/app",
				"virtualMachineConfiguration":{"vmSize":"Standard_E32ds_v4","imageReference":{},"osProfile":{}}}`,
		},
		{
			name:   "unknown deployment type",
			model:  "workloads.InfrastructureConfiguration",
			json:   `{"deploymentType":"FourTier","appResourceGroup":"rg1"}`,
			wantIs: unions.ErrUnknownDiscriminator,
		},
		{
			name:    "missing top level required field",
			model:   "deviceupdate.Device",
			json:    `{"deviceId":"d1","deviceClassId":"c","manufacturer":"m","model":"x"}`,
			wantVal: true,
		},
		{
			name:  "device",
			model: "deviceupdate.Device",
			json:  `{"deviceId":"d1","deviceClassId":"c","manufacturer":"m","model":"x","onLatestUpdate":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.model, []byte(tt.json))
			switch {
			case tt.wantIs != nil:
				assert.ErrorIs(t, err, tt.wantIs)
			case tt.wantVal:
				var verrs validator.ValidationErrors
				require.True(t, errors.As(err, &verrs), "got %v", err)
				assert.Equal(t, "OnLatestUpdate", verrs[0].Field())
				assert.Contains(t, err.Error(), "validate "+tt.model)
			default:
				require.NoError(t, err)
				assert.NotNil(t, v)
			}
		})
	}
}

func TestValidateReachesUnionShapes(t *testing.T) {
	env := workloads.SAPEnvironmentTypeProd
	product := workloads.SAPProductTypeS4HANA
	location := "eastus"

	vis := &workloads.SAPVirtualInstance{
		Location: &location,
		Properties: &workloads.SAPVirtualInstanceProperties{
			Environment: &env,
			SAPProduct:  &product,
			Configuration: &workloads.SAPConfiguration{
				Value: &workloads.DeploymentConfiguration{
					InfrastructureConfiguration: &workloads.InfrastructureConfiguration{
						Value: &workloads.ThreeTierConfiguration{},
					},
				},
			},
		},
	}

	err := Validate(vis)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "got %v", err)

	var fields []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.Equal(t, []string{"AppResourceGroup", "ApplicationServer", "CentralServer", "DatabaseServer"}, fields)
}

func TestDescribe(t *testing.T) {
	desc, err := Describe("streamanalytics.Output")
	require.NoError(t, err)
	assert.Equal(t, "streamanalytics.Output", desc.Name)

	require.Len(t, desc.Unions, 2)
	assert.Equal(t, "OutputDataSource", desc.Unions[0].Name)
	assert.Equal(t, "type", desc.Unions[0].Discriminator)
	assert.Len(t, desc.Unions[0].Values, 5)
	assert.Equal(t, "Serialization", desc.Unions[1].Name)

	auth := findEnum(t, desc, "AuthenticationMode")
	assert.Equal(t, "ConnectionString", auth.Default)
	assert.Equal(t, []string{"Msi", "UserToken", "ConnectionString"}, auth.Values)
	assert.Empty(t, findEnum(t, desc, "Encoding").Default)
}

func TestDescribeSymbolicNames(t *testing.T) {
	desc, err := Describe("streamanalytics.StreamingJob")
	require.NoError(t, err)

	level := findEnum(t, desc, "CompatibilityLevel")
	assert.Equal(t, []string{"1.0", "1.2"}, level.Values)
	assert.Equal(t, []string{"N1_0", "N1_2"}, level.Symbols)
}

func TestDescribeFollowsNestedUnions(t *testing.T) {
	desc, err := Describe("workloads.SAPVirtualInstance")
	require.NoError(t, err)

	var names []string
	for _, u := range desc.Unions {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{
		"InfrastructureConfiguration",
		"OSConfiguration",
		"SAPConfiguration",
		"SingleServerCustomResourceNames",
		"SoftwareConfiguration",
		"ThreeTierCustomResourceNames",
	}, names)

	findEnum(t, desc, "SAPEnvironmentType")
	findEnum(t, desc, "SAPDatabaseType")
	findEnum(t, desc, "SAPHighAvailabilityType")
	findEnum(t, desc, "CreatedByType")
}

func TestDescribeWithoutUnions(t *testing.T) {
	desc, err := Describe("keyvault.KeyItem")
	require.NoError(t, err)
	assert.Empty(t, desc.Unions)
	require.Len(t, desc.Enums, 1)
	assert.Equal(t, "DeletionRecoveryLevel", desc.Enums[0].Name)
}

func findEnum(t *testing.T, desc Description, name string) EnumInfo {
	t.Helper()
	for _, e := range desc.Enums {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("%s does not reach enum %s", desc.Name, name)
	return EnumInfo{}
}
