package person

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestScalar_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want Scalar
	}{
		{raw: `null`, want: NullScalar()},
		{raw: `31`, want: IntScalar(31)},
		{raw: `-2`, want: IntScalar(-2)},
		{raw: `31.5`, want: FloatScalar(31.5)},
		{raw: `31.0`, want: FloatScalar(31)},
		{raw: `1e3`, want: FloatScalar(1000)},
		{raw: `99999999999999999999`, want: FloatScalar(1e20)},
		{raw: `"31岁"`, want: TextScalar("31岁")},
		{raw: `"2次"`, want: TextScalar("2次")},
		{raw: `""`, want: TextScalar("")},
		{raw: `true`, want: BoolScalar(true)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var s Scalar
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestScalar_UnmarshalJSONOutOfRange(t *testing.T) {
	var s Scalar
	require.NoError(t, json.Unmarshal([]byte(`1e400`), &s))
	assert.Equal(t, ScalarFloat, s.Kind())
	v, err := s.Value()
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.(float64), 1))
}

func TestScalar_UnmarshalJSONRejectsContainers(t *testing.T) {
	var s Scalar
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &s))
}

func TestScalar_UnmarshalYAML(t *testing.T) {
	var doc map[string]Scalar
	require.NoError(t, yaml.Unmarshal([]byte(`
a: ~
b: 31
c: 31.5
d: 31岁
e: "31"
f: false
g: 2024-01-02
`), &doc))

	assert.True(t, doc["a"].IsNull())
	assert.Equal(t, IntScalar(31), doc["b"])
	assert.Equal(t, FloatScalar(31.5), doc["c"])
	assert.Equal(t, TextScalar("31岁"), doc["d"])
	assert.Equal(t, TextScalar("31"), doc["e"])
	assert.Equal(t, BoolScalar(false), doc["f"])
	assert.Equal(t, TextScalar("2024-01-02"), doc["g"])

	var bad map[string]Scalar
	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &bad))
}

func TestScalar_ValueAndText(t *testing.T) {
	tests := []struct {
		in    Scalar
		value any
		text  *string
	}{
		{in: NullScalar(), value: nil, text: nil},
		{in: IntScalar(28), value: int64(28), text: strPtr("28")},
		{in: FloatScalar(2.5), value: 2.5, text: strPtr("2.5")},
		{in: TextScalar("硕士"), value: "硕士", text: strPtr("硕士")},
		{in: BoolScalar(true), value: true, text: strPtr("true")},
	}

	for _, tt := range tests {
		v, err := tt.in.Value()
		require.NoError(t, err)
		assert.Equal(t, tt.value, v)
		assert.Equal(t, tt.text, tt.in.Text())
	}
}

func strPtr(s string) *string { return &s }
