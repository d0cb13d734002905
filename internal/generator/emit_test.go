package generator

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	defs, err := LoadDefinitions("testdata/streamanalytics.yaml")
	require.NoError(t, err)

	src, err := Generate(defs)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "constants.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)

	out := collapse(string(src))
	for _, want := range []string{
		"// Code generated by azwire generate. DO NOT EDIT.",
		"package streamanalytics",
		"// AuthenticationMode - Authentication Mode.",
		"type AuthenticationMode string",
		`AuthenticationModeMsi AuthenticationMode = "Msi"`,
		`var authenticationModes = openenum.New("AuthenticationMode", openenum.V(AuthenticationModeMsi), ` +
			`openenum.V(AuthenticationModeUserToken), openenum.V(AuthenticationModeConnectionString), ` +
			`).WithDefault(AuthenticationModeConnectionString)`,
		"func PossibleAuthenticationModeValues() []AuthenticationMode { return authenticationModes.Values() }",
		"func (m AuthenticationMode) IsKnown() bool { return authenticationModes.IsKnown(m) }",
		"func (m AuthenticationMode) MarshalJSON() ([]byte, error) { return authenticationModes.MarshalJSON(m) }",
		"func (m *AuthenticationMode) UnmarshalJSON(data []byte) error { return authenticationModes.UnmarshalJSON(data, m) }",
		`CompatibilityLevelN10 CompatibilityLevel = "1.0"`,
		`// CompatibilityLevelN12 - Latest behavior.`,
		`openenum.Variant[CompatibilityLevel]{Name: "N1_0", Value: CompatibilityLevelN10}`,
		"func (l CompatibilityLevel) IsKnown() bool { return compatibilityLevels.IsKnown(l) }",
		"// JSONWebKeyType is an open enum.",
		`var jsonWebKeyTypes = openenum.New("JsonWebKeyType",`,
		`JSONWebKeyTypeECHSM JSONWebKeyType = "EC-HSM"`,
		`openenum.Variant[JSONWebKeyType]{Name: "Oct", Value: JSONWebKeyTypeOct}`,
		"type OutputDataSourceClassification interface { unions.Discriminator isOutputDataSource() }",
		`var outputDataSources = unions.NewRegistry[OutputDataSourceClassification]("OutputDataSource", "type").Register(`,
		"func() OutputDataSourceClassification { return &BlobOutputDataSource{} },",
		"func (outputDataSourceUnion) Registry() *unions.Registry[OutputDataSourceClassification] { return outputDataSources }",
		"type OutputDataSource = unions.Tagged[OutputDataSourceClassification, outputDataSourceUnion]",
		`func (*BlobOutputDataSource) DiscriminatorValue() string { return "Microsoft.Storage/Blob" }`,
		"func (*AzureFunctionOutputDataSource) isOutputDataSource() {}",
		"return []openenum.Descriptor{ authenticationModes, compatibilityLevels, jsonWebKeyTypes, }",
		"return []unions.Descriptor{ outputDataSources, }",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "compatibilityLevels.WithDefault")
}

func TestGenerateRejectsInvalidDefinitions(t *testing.T) {
	defs := &Definitions{
		Package: "p",
		Enums: []EnumDefinition{{
			Name:    "A",
			Default: "missing",
			Values:  []ValueDefinition{{Value: "x"}},
		}},
	}
	_, err := Generate(defs)
	assert.ErrorContains(t, err, `default "missing" is not a known value`)
}

func TestGenerateEmptyPackage(t *testing.T) {
	src, err := Generate(&Definitions{Package: "empty"})
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "constants.go", src, 0)
	require.NoError(t, err)

	out := collapse(string(src))
	assert.Contains(t, out, "func Enums() []openenum.Descriptor")
	assert.NotContains(t, out, "openenum.New(")
	assert.NotContains(t, out, "unions.NewRegistry")
}

func TestCollectionName(t *testing.T) {
	tests := map[string]string{
		"SAPDatabaseType":                 "sapDatabaseTypes",
		"JSONWebKeyType":                  "jsonWebKeyTypes",
		"OSType":                          "osTypes",
		"SSLPreference":                   "sslPreferences",
		"Encoding":                        "encodings",
		"ContentStoragePolicy":            "contentStoragePolicies",
		"SAPVirtualInstanceStatus":        "sapVirtualInstanceStatuses",
		"ProviderSpecificProperties":      "providerSpecificProperties",
		"SingleServerCustomResourceNames": "singleServerCustomResourceNames",
	}
	for name, want := range tests {
		assert.Equal(t, want, collectionName(name), name)
	}
}

func TestReceiverName(t *testing.T) {
	assert.Equal(t, "m", receiverName("AuthenticationMode"))
	assert.Equal(t, "t", receiverName("JSONWebKeyType"))
	assert.Equal(t, "e", receiverName("Encoding"))
	assert.Equal(t, "t", receiverName("OSType"))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
