// Package modeltest holds assertions shared by the model package tests.
package modeltest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gork-labs/azwire/pkg/unions"
)

// Enum is satisfied by the open enum types of the model packages.
type Enum interface {
	~string
	IsKnown() bool
}

// EnumRoundTrip checks that every known value survives a JSON round trip
// unchanged, and that an undocumented value does too.
func EnumRoundTrip[E Enum](t *testing.T, values []E) {
	t.Helper()
	require.NotEmpty(t, values)

	for _, v := range values {
		assert.True(t, v.IsKnown(), "%q should be known", v)

		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.JSONEq(t, quote(t, string(v)), string(data))

		var got E
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}

	unknown := E("Undocumented-" + string(values[0]))
	assert.False(t, unknown.IsKnown())

	data, err := json.Marshal(unknown)
	require.NoError(t, err)

	var got E
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, unknown, got)
}

// UnionDispatch decodes one sample payload per registered discriminator value
// and checks that the matching shape is selected and re-encodes to the same
// JSON. Every registered value must have a sample.
func UnionDispatch[S unions.Discriminator](t *testing.T, reg *unions.Registry[S], samples map[string]string) {
	t.Helper()

	for _, tag := range reg.Values() {
		sample, ok := samples[tag]
		if !assert.True(t, ok, "%s: no sample for %q", reg.Name(), tag) {
			continue
		}

		shape, err := reg.Decode([]byte(sample))
		if !assert.NoError(t, err, "%s %q", reg.Name(), tag) {
			continue
		}
		assert.Equal(t, tag, shape.DiscriminatorValue())

		data, err := reg.Encode(shape)
		require.NoError(t, err)
		assert.JSONEq(t, sample, string(data))
	}
}

func quote(t *testing.T, s string) string {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return string(data)
}
