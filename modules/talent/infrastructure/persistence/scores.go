package persistence

import "github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"

const selectScoresSQL = `
	SELECT a.id, p.seq, p.name, a.category, a.ability, a.level_text, a.score
	FROM ability_score a
	JOIN person p ON p.id = a.person_id
	ORDER BY a.id
`

type scoreRow struct {
	ID        int64    `db:"id"`
	Seq       int64    `db:"seq"`
	Name      *string  `db:"name"`
	Category  string   `db:"category"`
	Ability   string   `db:"ability"`
	LevelText *string  `db:"level_text"`
	Score     *float64 `db:"score"`
}

func toScores(rows []scoreRow) []person.Score {
	out := make([]person.Score, 0, len(rows))
	for _, r := range rows {
		out = append(out, person.Score{
			ID:        r.ID,
			Seq:       r.Seq,
			Name:      r.Name,
			Category:  person.Category(r.Category),
			Ability:   r.Ability,
			LevelText: r.LevelText,
			Score:     r.Score,
		})
	}
	return out
}
