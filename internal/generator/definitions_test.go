package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolicName(t *testing.T) {
	tests := map[string]string{
		"1.0":                    "N1_0",
		"1.2":                    "N1_2",
		"EC-HSM":                 "ECHSM",
		"oct":                    "Oct",
		"oct-HSM":                "OctHSM",
		"P-256K":                 "P256K",
		"Recoverable+Purgeable":  "RecoverablePurgeable",
		"Microsoft.Storage/Blob": "MicrosoftStorageBlob",
		"wrapKey":                "WrapKey",
		"Msi":                    "Msi",
	}
	for value, want := range tests {
		assert.Equal(t, want, SymbolicName(value), value)
	}
}

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions("testdata/streamanalytics.yaml")
	require.NoError(t, err)

	assert.Equal(t, "streamanalytics", defs.Package)
	require.Len(t, defs.Enums, 3)
	assert.Equal(t, "N1_0", defs.Enums[1].Values[0].Name)
	assert.Equal(t, "CompatibilityLevel", defs.Enums[1].WireName)
	assert.Equal(t, "JsonWebKeyType", defs.Enums[2].WireName)
	require.Len(t, defs.Unions, 1)
	assert.Equal(t, "type", defs.Unions[0].Discriminator)
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	_, err := LoadDefinitions("testdata/missing.yaml")
	assert.ErrorContains(t, err, "failed to read definitions")
}

func TestParseDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown key",
			yaml: "package: p\nenumz: []\n",
			want: "field enumz not found",
		},
		{
			name: "missing package",
			yaml: "enums: [{name: A, values: [{value: x}]}]\n",
			want: "Package",
		},
		{
			name: "enum without values",
			yaml: "package: p\nenums: [{name: A}]\n",
			want: "Values",
		},
		{
			name: "duplicate value",
			yaml: "package: p\nenums: [{name: A, values: [{value: x}, {value: x, name: Y}]}]\n",
			want: `enum A: value "x" declared twice`,
		},
		{
			name: "duplicate symbolic name",
			yaml: "package: p\nenums: [{name: A, values: [{value: a-b}, {value: ab, name: AB}]}]\n",
			want: `enum A: name "AB" declared twice`,
		},
		{
			name: "unknown default",
			yaml: "package: p\nenums: [{name: A, default: z, values: [{value: x}]}]\n",
			want: `enum A: default "z" is not a known value`,
		},
		{
			name: "unexported enum",
			yaml: "package: p\nenums: [{name: a, values: [{value: x}]}]\n",
			want: `enum "a" is not an exported identifier`,
		},
		{
			name: "enum and union share a name",
			yaml: "package: p\nenums: [{name: A, values: [{value: x}]}]\nunions: [{name: A, discriminator: t, shapes: [{value: x, type: X}]}]\n",
			want: `union "A" already declared as enum`,
		},
		{
			name: "duplicate discriminator",
			yaml: "package: p\nunions: [{name: U, discriminator: t, shapes: [{value: x, type: X}, {value: x, type: Y}]}]\n",
			want: `union U: discriminator "x" declared twice`,
		},
		{
			name: "union without discriminator",
			yaml: "package: p\nunions: [{name: U, shapes: [{value: x, type: X}]}]\n",
			want: "Discriminator",
		},
		{
			name: "value without identifier characters",
			yaml: "package: p\nenums: [{name: A, values: [{value: \"+\"}]}]\n",
			want: `enum A: value "+": name "" is not a valid identifier`,
		},
		{
			name: "derived constants collide",
			yaml: "package: p\nenums: [{name: Level, values: [{value: \"1.0\"}, {value: \"10\"}]}]\n",
			want: `enum Level: value "10": constant LevelN10 collides with enum Level value "1.0"`,
		},
		{
			name: "explicit names collide after underscores drop",
			yaml: "package: p\nenums: [{name: Level, values: [{value: a, name: N1_0}, {value: b, name: N10}]}]\n",
			want: `enum Level: value "b": constant LevelN10 collides with enum Level value "a"`,
		},
		{
			name: "constant collides with an enum type",
			yaml: "package: p\nenums: [{name: A, values: [{value: b}]}, {name: AB, values: [{value: x}]}]\n",
			want: `enum A value "b": constant AB collides with enum AB`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinitions([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
