package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
	"github.com/iota-uz/talent-import/pkg/composables"
)

var tracer = otel.Tracer("talent-import/services")

var (
	ErrInvalidRecord    = errors.New("invalid record")
	ErrWrite            = errors.New("store write failed")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Summary describes one import run.
type Summary struct {
	Records         int        `json:"records"`
	PersonsInserted int        `json:"persons_inserted"`
	PersonsSkipped  int        `json:"persons_skipped"`
	BasicRows       int        `json:"person_basic_rows"`
	WorkRows        int        `json:"person_work_rows"`
	EducationRows   int        `json:"person_education_rows"`
	AbilityRows     int        `json:"ability_rows"`
	Levels          LevelStats `json:"levels"`
}

// LevelStats splits ability rows by what the normalizer made of them.
type LevelStats struct {
	Classified   int `json:"classified"`
	Unclassified int `json:"unclassified"`
	Numeric      int `json:"numeric"`
	Empty        int `json:"empty"`
}

func (l *LevelStats) add(r person.AbilityRow) {
	switch {
	case r.LevelText != nil && r.Score != nil:
		l.Classified++
	case r.LevelText != nil:
		l.Unclassified++
	case r.Score != nil:
		l.Numeric++
	default:
		l.Empty++
	}
}

type ImportService struct {
	store  person.Store
	mapper *Mapper
}

func NewImportService(store person.Store, mapper *Mapper) *ImportService {
	return &ImportService{store: store, mapper: mapper}
}

// Plan maps every record without touching the store.
func (s *ImportService) Plan(ctx context.Context, records []person.Record) (Summary, error) {
	sum := Summary{Records: len(records)}
	seen := make(map[int64]struct{}, len(records))
	for i, rec := range records {
		rows, err := s.mapper.Map(rec)
		if err != nil {
			return Summary{}, fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
		}
		if _, ok := seen[rows.Person.Seq]; ok {
			sum.PersonsSkipped++
		} else {
			seen[rows.Person.Seq] = struct{}{}
			sum.PersonsInserted++
		}
		sum.BasicRows++
		sum.WorkRows++
		sum.EducationRows++
		for _, a := range rows.Abilities {
			sum.AbilityRows++
			sum.Levels.add(a)
		}
	}
	logWithFields(ctx, logrus.InfoLevel, "import planned", summaryFields(sum))
	return sum, nil
}

// Import writes all records in input order inside one transaction. Any
// error rolls back everything written so far.
func (s *ImportService) Import(ctx context.Context, records []person.Record) (Summary, error) {
	ctx, span := tracer.Start(ctx, "talent.import", trace.WithAttributes(
		attribute.Int("talent.records", len(records)),
	))
	defer span.End()

	startedAt := time.Now()
	sum := Summary{Records: len(records)}

	err := composables.InTx(ctx, s.begin, func(txCtx context.Context, tx person.Tx) error {
		for i, rec := range records {
			rows, err := s.mapper.Map(rec)
			if err != nil {
				return fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
			}
			if err := s.write(txCtx, tx, rows, &sum); err != nil {
				return fmt.Errorf("%w: record %d (seq=%d): %w", ErrWrite, i, rows.Person.Seq, err)
			}
		}
		return nil
	})
	if err != nil {
		recordRun("failed", time.Since(startedAt))
		span.RecordError(err)
		span.SetStatus(codes.Error, "import rolled back")
		logWithFields(ctx, logrus.ErrorLevel, "import rolled back", logrus.Fields{"error": err.Error()})
		return Summary{}, err
	}

	span.SetAttributes(
		attribute.Int("talent.persons_inserted", sum.PersonsInserted),
		attribute.Int("talent.persons_skipped", sum.PersonsSkipped),
		attribute.Int("talent.ability_rows", sum.AbilityRows),
	)
	recordRun("committed", time.Since(startedAt))
	recordSummary(sum)
	logWithFields(ctx, logrus.InfoLevel, "import completed", summaryFields(sum))
	return sum, nil
}

func (s *ImportService) begin(ctx context.Context) (person.Tx, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return tx, nil
}

func (s *ImportService) write(ctx context.Context, tx person.Tx, rows person.Rows, sum *Summary) error {
	id, inserted, err := tx.EnsurePerson(ctx, rows.Person)
	if err != nil {
		return err
	}
	if inserted {
		sum.PersonsInserted++
	} else {
		sum.PersonsSkipped++
		logWithFields(ctx, logrus.DebugLevel, "person exists, keeping identity", logrus.Fields{
			"seq":       rows.Person.Seq,
			"person_id": id,
		})
	}

	if err := tx.ReplaceBasic(ctx, id, rows.Basic); err != nil {
		return err
	}
	sum.BasicRows++
	if err := tx.ReplaceWork(ctx, id, rows.Work); err != nil {
		return err
	}
	sum.WorkRows++
	if err := tx.ReplaceEducation(ctx, id, rows.Education); err != nil {
		return err
	}
	sum.EducationRows++

	if err := tx.AppendAbilities(ctx, id, rows.Abilities); err != nil {
		return err
	}
	for _, a := range rows.Abilities {
		sum.AbilityRows++
		sum.Levels.add(a)
		if a.LevelText != nil && a.Score == nil {
			logWithFields(ctx, logrus.DebugLevel, "unrecognized level label", logrus.Fields{
				"seq":      rows.Person.Seq,
				"category": string(a.Category),
				"ability":  a.Ability,
				"text":     *a.LevelText,
			})
		}
	}
	return nil
}

func summaryFields(sum Summary) logrus.Fields {
	return logrus.Fields{
		"records":          sum.Records,
		"persons_inserted": sum.PersonsInserted,
		"persons_skipped":  sum.PersonsSkipped,
		"ability_rows":     sum.AbilityRows,
		"unclassified":     sum.Levels.Unclassified,
	}
}
