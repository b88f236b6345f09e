// internal/models/spec_fields_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecFieldsGetSet(t *testing.T) {
	var s SpecFields

	assert.True(t, s.Set("battery_type", "Li-Po 5000 mAh"))
	assert.Equal(t, "Li-Po 5000 mAh", s.Get("battery_type"))
	assert.Equal(t, "Li-Po 5000 mAh", s.BatteryType)

	// Names outside the vocabulary are rejected, not silently stored.
	assert.False(t, s.Set("battery_shape", "curved"))
	assert.Empty(t, s.Get("battery_shape"))
}

func TestCanonicalFieldNamesResolve(t *testing.T) {
	var s SpecFields
	names := CanonicalFieldNames()
	require.NotEmpty(t, names)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate canonical name %s", name)
		seen[name] = true
		assert.NotNil(t, s.FieldRef(name), "name %s has no backing field", name)
	}
}

func TestJSONBRoundTrip(t *testing.T) {
	in := JSONB{"misc: sar": "1.17 W/kg", "misc: sar eu": "1.08 W/kg"}

	value, err := in.Value()
	require.NoError(t, err)

	var out JSONB
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestJSONBNil(t *testing.T) {
	var j JSONB
	value, err := j.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	out := JSONB{"stale": true}
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestSubmissionJSONOmitsEmptySpecColumns(t *testing.T) {
	sub := Submission{Title: "Acme Phone X1"}
	sub.MiscPrice = "$ 799"

	raw, err := json.Marshal(sub)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "$ 799", decoded["misc_price"])
	assert.NotContains(t, decoded, "battery_type")
	assert.NotContains(t, decoded, "extra_fields")
}
