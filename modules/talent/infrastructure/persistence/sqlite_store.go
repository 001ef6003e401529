package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

const sqliteDriverName = "sqlite"

// SQLiteStore writes into a local SQLite file.
type SQLiteStore struct {
	db *sqlx.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	cleanPath := filepath.Clean(path)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cleanPath)
	db, err := sqlx.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", cleanPath)
	}
	// single writer; one connection keeps the transaction and pragmas together
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping sqlite %s", cleanPath)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range sqliteSchema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create schema")
		}
	}
	return nil
}

func (s *SQLiteStore) Begin(ctx context.Context) (person.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *SQLiteStore) Counts(ctx context.Context) (person.Counts, error) {
	var out person.Counts
	dst := []*int64{&out.Persons, &out.Basics, &out.Works, &out.Educations, &out.AbilityScore}
	for i, table := range countTables {
		if err := s.db.GetContext(ctx, dst[i], "SELECT count(*) FROM "+table); err != nil {
			return person.Counts{}, errors.Wrapf(err, "count %s", table)
		}
	}
	return out, nil
}

func (s *SQLiteStore) Scores(ctx context.Context) ([]person.Score, error) {
	var rows []scoreRow
	if err := s.db.SelectContext(ctx, &rows, selectScoresSQL); err != nil {
		return nil, errors.Wrap(err, "select ability_score")
	}
	return toScores(rows), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteTx struct {
	tx *sqlx.Tx
}

func (t *sqliteTx) EnsurePerson(ctx context.Context, p person.PersonRow) (int64, bool, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO person (seq, name, gender, age)
		VALUES (?, ?, ?, ?)
	`, p.Seq, p.Name, p.Gender, p.Age)
	if err != nil {
		return 0, false, errors.Wrapf(err, "insert person(seq=%d)", p.Seq)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, errors.Wrap(err, "rows affected")
	}

	var id int64
	if err := t.tx.GetContext(ctx, &id, `SELECT id FROM person WHERE seq = ?`, p.Seq); err != nil {
		return 0, false, errors.Wrapf(err, "select person(seq=%d)", p.Seq)
	}
	return id, n > 0, nil
}

func (t *sqliteTx) ReplaceBasic(ctx context.Context, personID int64, r person.BasicRow) error {
	if _, err := t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO person_basic (person_id, hobby, personality, family)
		VALUES (?, ?, ?, ?)
	`, personID, r.Hobby, r.Personality, r.Family); err != nil {
		return errors.Wrap(err, "replace person_basic")
	}
	return nil
}

func (t *sqliteTx) ReplaceWork(ctx context.Context, personID int64, r person.WorkRow) error {
	if _, err := t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO person_work (person_id, years_in_industry, job_hops, previous_job)
		VALUES (?, ?, ?, ?)
	`, personID, r.YearsInIndustry, r.JobHops, r.PreviousJob); err != nil {
		return errors.Wrap(err, "replace person_work")
	}
	return nil
}

func (t *sqliteTx) ReplaceEducation(ctx context.Context, personID int64, r person.EducationRow) error {
	if _, err := t.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO person_education (person_id, degree, school, major)
		VALUES (?, ?, ?, ?)
	`, personID, r.Degree, r.School, r.Major); err != nil {
		return errors.Wrap(err, "replace person_education")
	}
	return nil
}

func (t *sqliteTx) AppendAbilities(ctx context.Context, personID int64, rows []person.AbilityRow) error {
	if len(rows) == 0 {
		return nil
	}
	stmt, err := t.tx.PrepareContext(ctx, `
		INSERT INTO ability_score (person_id, category, ability, level_text, score)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "prepare ability_score insert")
	}
	defer func() { _ = stmt.Close() }()

	for _, a := range rows {
		if _, err := stmt.ExecContext(ctx, personID, string(a.Category), a.Ability, a.LevelText, a.Score); err != nil {
			return errors.Wrapf(err, "insert ability_score(%s/%s)", a.Category, a.Ability)
		}
	}
	return nil
}

func (t *sqliteTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

func (t *sqliteTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Wrap(err, "rollback tx")
	}
	return nil
}
