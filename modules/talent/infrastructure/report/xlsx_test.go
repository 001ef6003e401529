package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

func ptr[T any](v T) *T { return &v }

func TestWriteScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.xlsx")
	scores := []person.Score{
		{ID: 1, Seq: 1, Name: ptr("张三"), Category: person.CategoryValues, Ability: "诚信", LevelText: ptr("高"), Score: ptr(4.0)},
		{ID: 2, Seq: 1, Name: ptr("张三"), Category: person.CategoryValues, Ability: "进取", LevelText: ptr("全能, 低"), Score: ptr(2.0)},
		{ID: 3, Seq: 2, Category: person.CategoryCompetency, Ability: "沟通", LevelText: ptr("未知")},
		{ID: 4, Seq: 2, Category: person.CategoryCompetency, Ability: "执行"},
	}
	require.NoError(t, WriteScores(path, scores))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(ScoresSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"序号", "姓名", "类别", "能力", "等级", "分数"}, rows[0])
	assert.Equal(t, []string{"1", "张三", "价值观", "诚信", "高", "4"}, rows[1])
	assert.Equal(t, "全能, 低", rows[2][4])
	assert.Equal(t, "未知", rows[3][4])

	cats, err := f.GetRows(CategoriesSheet)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"价值观", "2", "2", "0", "3"}, cats[1])
	assert.Equal(t, "胜任能力", cats[2][0])
	assert.Equal(t, "1", cats[2][3])
}

func TestWriteScores_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteScores(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	rows, err := f.GetRows(ScoresSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
