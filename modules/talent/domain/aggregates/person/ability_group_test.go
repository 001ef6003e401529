package person

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iota-uz/talent-import/modules/talent/domain/level"
)

func names(g AbilityGroup) []string {
	out := make([]string, 0, len(g))
	for _, a := range g {
		out = append(out, a.Name)
	}
	return out
}

func TestAbilityGroup_JSONKeepsDocumentOrder(t *testing.T) {
	var g AbilityGroup
	require.NoError(t, json.Unmarshal([]byte(`{"责任心": "高", "沟通": 3, "诚信": null, "学习": "全能，中"}`), &g))

	assert.Equal(t, []string{"责任心", "沟通", "诚信", "学习"}, names(g))
	v, ok := g.Get("沟通")
	require.True(t, ok)
	assert.Equal(t, level.Numeric(3), v)
	v, ok = g.Get("诚信")
	require.True(t, ok)
	assert.True(t, v.IsAbsent())
	_, ok = g.Get("缺失")
	assert.False(t, ok)
}

func TestAbilityGroup_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	var g AbilityGroup
	require.NoError(t, json.Unmarshal([]byte(`{"a": "低", "b": "中", "a": "高"}`), &g))

	assert.Equal(t, []string{"a", "b"}, names(g))
	v, _ := g.Get("a")
	assert.Equal(t, level.Text("高"), v)
}

func TestAbilityGroup_JSONNullAndErrors(t *testing.T) {
	var g AbilityGroup
	require.NoError(t, json.Unmarshal([]byte(`null`), &g))
	assert.Empty(t, g)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &g))
	assert.Empty(t, g)

	assert.Error(t, json.Unmarshal([]byte(`["高"]`), &g))
	assert.Error(t, json.Unmarshal([]byte(`"高"`), &g))
}

func TestAbilityGroup_YAML(t *testing.T) {
	var doc struct {
		Group AbilityGroup `yaml:"group"`
		Empty AbilityGroup `yaml:"empty"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`
group:
  责任心: 高
  沟通: 3.5
  诚信:
  学习: 全能，中
empty:
`), &doc))

	assert.Equal(t, []string{"责任心", "沟通", "诚信", "学习"}, names(doc.Group))
	v, _ := doc.Group.Get("沟通")
	assert.Equal(t, level.Numeric(3.5), v)
	v, _ = doc.Group.Get("诚信")
	assert.True(t, v.IsAbsent())
	assert.Empty(t, doc.Empty)

	var bad struct {
		Group AbilityGroup `yaml:"group"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("group: [a, b]\n"), &bad))
}

func TestRecord_GroupsAndCount(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{
		"序号": 3,
		"价值观": {"诚信": "高"},
		"能力要求": {"抗压": null, "学习": 4}
	}`), &r))

	require.NotNil(t, r.Seq)
	assert.Equal(t, int64(3), *r.Seq)
	assert.Equal(t, 3, r.AbilityCount())
	assert.Len(t, r.Group(CategoryRequirements), 2)
	assert.Empty(t, r.Group(CategoryKnowledge))
	assert.Nil(t, r.Group(Category("其他")))
	assert.Len(t, Categories(), 6)
}
