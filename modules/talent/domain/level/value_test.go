package level_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iota-uz/talent-import/modules/talent/domain/level"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		kind level.Kind
		num  float64
		text string
	}{
		{raw: `null`, kind: level.KindAbsent},
		{raw: `3.5`, kind: level.KindNumeric, num: 3.5},
		{raw: `5`, kind: level.KindNumeric, num: 5},
		{raw: `-1e2`, kind: level.KindNumeric, num: -100},
		{raw: `"高"`, kind: level.KindText, text: "高"},
		{raw: `"4"`, kind: level.KindText, text: "4"},
		{raw: `true`, kind: level.KindUnsupported},
		{raw: `["高"]`, kind: level.KindUnsupported},
		{raw: `{"a": 1}`, kind: level.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v level.Value
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.kind, v.Kind())
			assert.InDelta(t, tt.num, v.Number(), 1e-9)
			assert.Equal(t, tt.text, v.String())
		})
	}
}

func TestValue_UnmarshalYAML(t *testing.T) {
	var doc map[string]level.Value
	require.NoError(t, yaml.Unmarshal([]byte(`
a: ~
b: 3.5
c: 4
d: 高
e: "4"
f: true
g: [1, 2]
`), &doc))

	assert.True(t, doc["a"].IsAbsent())
	assert.Equal(t, level.Numeric(3.5), doc["b"])
	assert.Equal(t, level.Numeric(4), doc["c"])
	assert.Equal(t, level.Text("高"), doc["d"])
	assert.Equal(t, level.Text("4"), doc["e"])
	assert.Equal(t, level.KindUnsupported, doc["f"].Kind())
	assert.Equal(t, level.KindUnsupported, doc["g"].Kind())
}

func TestValue_UnmarshalJSONOutOfRange(t *testing.T) {
	var doc map[string]level.Value
	require.NoError(t, json.Unmarshal([]byte(`{"x": 1e400, "y": -1e400}`), &doc))

	assert.Equal(t, level.KindNumeric, doc["x"].Kind())
	assert.True(t, math.IsInf(doc["x"].Number(), 1))
	assert.True(t, math.IsInf(doc["y"].Number(), -1))

	got := level.Parse(doc["x"])
	require.NotNil(t, got.Score)
	assert.Nil(t, got.Text)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "numeric", level.KindNumeric.String())
	assert.Equal(t, "kind(9)", level.Kind(9).String())
}
