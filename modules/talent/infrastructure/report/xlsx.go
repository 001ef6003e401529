// Package report renders stored ability scores as an XLSX workbook.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

const (
	ScoresSheet     = "ability_score"
	CategoriesSheet = "categories"
)

var (
	scoresHeader     = []any{"序号", "姓名", "类别", "能力", "等级", "分数"}
	categoriesHeader = []any{"类别", "条目", "已评分", "未识别", "平均分"}
)

type categoryStats struct {
	rows         int
	scored       int
	unclassified int
	sum          float64
}

// WriteScores writes one row per score plus a per-category summary sheet.
func WriteScores(path string, scores []person.Score) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ScoresSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(ScoresSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", scoresHeader); err != nil {
		return err
	}

	stats := make(map[person.Category]*categoryStats, len(person.Categories()))
	for i, s := range scores {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []any{s.Seq, orEmpty(s.Name), string(s.Category), s.Ability, orEmpty(s.LevelText), scoreCell(s.Score)}); err != nil {
			return err
		}

		st, ok := stats[s.Category]
		if !ok {
			st = &categoryStats{}
			stats[s.Category] = st
		}
		st.rows++
		switch {
		case s.Score != nil:
			st.scored++
			st.sum += *s.Score
		case s.LevelText != nil:
			st.unclassified++
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if _, err := f.NewSheet(CategoriesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(CategoriesSheet, "A1", &categoriesHeader); err != nil {
		return err
	}
	row := 2
	for _, c := range person.Categories() {
		st, ok := stats[c]
		if !ok {
			continue
		}
		var avg any = ""
		if st.scored > 0 {
			avg = st.sum / float64(st.scored)
		}
		values := []any{string(c), st.rows, st.scored, st.unclassified, avg}
		if err := f.SetSheetRow(CategoriesSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}

	return f.SaveAs(path)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func scoreCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
