package services

import (
	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
	"github.com/iota-uz/talent-import/modules/talent/domain/level"
)

// Mapper flattens one record into table rows.
type Mapper struct {
	table level.Table
}

func NewMapper(table level.Table) *Mapper {
	return &Mapper{table: table}
}

func (m *Mapper) Map(r person.Record) (person.Rows, error) {
	if r.Seq == nil {
		return person.Rows{}, person.ErrMissingSeq
	}

	rows := person.Rows{
		Person: person.PersonRow{
			Seq:    *r.Seq,
			Name:   r.Basic.Name,
			Gender: r.Basic.Gender,
			Age:    r.Basic.Age,
		},
		Basic: person.BasicRow{
			Hobby:       r.Basic.Hobby,
			Personality: r.Basic.Personality,
			Family:      r.Basic.Family,
		},
		Work: person.WorkRow{
			YearsInIndustry: r.Work.YearsInIndustry,
			JobHops:         r.Work.JobHops,
			PreviousJob:     r.Work.PreviousJob,
		},
		Education: person.EducationRow{
			Degree: r.Education.Degree,
			School: r.Education.School,
			Major:  r.Education.Major,
		},
		Abilities: make([]person.AbilityRow, 0, r.AbilityCount()),
	}

	for _, category := range person.Categories() {
		for _, a := range r.Group(category) {
			res := m.table.Parse(a.Value)
			rows.Abilities = append(rows.Abilities, person.AbilityRow{
				Category:  category,
				Ability:   a.Name,
				LevelText: res.Text,
				Score:     res.Score,
			})
		}
	}
	return rows, nil
}
