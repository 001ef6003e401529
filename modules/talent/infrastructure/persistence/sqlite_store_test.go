package persistence

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "hr.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, newSQLiteStore(t))
}

func TestSQLiteStore_ReplaceOverwritesValues(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	id := writeOne(ctx, t, store, 5, "跑步")
	writeOne(ctx, t, store, 5, "游泳")

	var hobby sql.NullString
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT hobby FROM person_basic WHERE person_id = ?`, id).Scan(&hobby))
	assert.Equal(t, "游泳", hobby.String)

	var name string
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT name FROM person WHERE id = ?`, id).Scan(&name))
	assert.Equal(t, "张三", name)
}

func TestSQLiteStore_StoresNullsAndOriginalText(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))
	id := writeOne(ctx, t, store, 9, "读书")

	rows, err := store.db.QueryContext(ctx, `
		SELECT category, ability, level_text, score FROM ability_score
		WHERE person_id = ? ORDER BY id
	`, id)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	type got struct {
		category, ability string
		text              sql.NullString
		score             sql.NullFloat64
	}
	var all []got
	for rows.Next() {
		var g got
		require.NoError(t, rows.Scan(&g.category, &g.ability, &g.text, &g.score))
		all = append(all, g)
	}
	require.NoError(t, rows.Err())
	require.Len(t, all, 4)

	assert.Equal(t, "价值观", all[0].category)
	assert.Equal(t, "高", all[0].text.String)
	assert.InDelta(t, 4.0, all[0].score.Float64, 1e-9)

	assert.Equal(t, "未知", all[1].text.String)
	assert.False(t, all[1].score.Valid)

	assert.False(t, all[2].text.Valid)
	assert.InDelta(t, 3.5, all[2].score.Float64, 1e-9)

	assert.False(t, all[3].text.Valid)
	assert.False(t, all[3].score.Valid)
}

func TestSQLiteStore_KeepsProfileValueTypes(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	id, _, err := tx.EnsurePerson(ctx, person.PersonRow{Seq: 3, Name: person.IntScalar(42), Age: person.TextScalar("31岁")})
	require.NoError(t, err)
	require.NoError(t, tx.ReplaceWork(ctx, id, person.WorkRow{
		YearsInIndustry: person.TextScalar("五年"),
		JobHops:         person.FloatScalar(2.5),
	}))
	require.NoError(t, tx.Commit(ctx))

	var age, ageType string
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT age, typeof(age) FROM person WHERE id = ?`, id).Scan(&age, &ageType))
	assert.Equal(t, "31岁", age)
	assert.Equal(t, "text", ageType)

	var years, yearsType, hopsType string
	var hops float64
	require.NoError(t, store.db.QueryRowContext(ctx, `
		SELECT years_in_industry, typeof(years_in_industry), job_hops, typeof(job_hops)
		FROM person_work WHERE person_id = ?
	`, id).Scan(&years, &yearsType, &hops, &hopsType))
	assert.Equal(t, "五年", years)
	assert.Equal(t, "text", yearsType)
	assert.InDelta(t, 2.5, hops, 1e-9)
	assert.Equal(t, "real", hopsType)

	var name string
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT name FROM person WHERE id = ?`, id).Scan(&name))
	assert.Equal(t, "42", name)
}
