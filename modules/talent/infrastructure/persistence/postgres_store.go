package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

// PostgresStore writes into a PostgreSQL database through a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return &PostgresStore{pool: pool}, nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range postgresSchema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "create schema")
		}
	}
	return nil
}

func (s *PostgresStore) Begin(ctx context.Context) (person.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	return &postgresTx{tx: tx}, nil
}

func (s *PostgresStore) Counts(ctx context.Context) (person.Counts, error) {
	var out person.Counts
	dst := []*int64{&out.Persons, &out.Basics, &out.Works, &out.Educations, &out.AbilityScore}
	for i, table := range countTables {
		if err := s.pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(dst[i]); err != nil {
			return person.Counts{}, errors.Wrapf(err, "count %s", table)
		}
	}
	return out, nil
}

func (s *PostgresStore) Scores(ctx context.Context) ([]person.Score, error) {
	rows, err := s.pool.Query(ctx, selectScoresSQL)
	if err != nil {
		return nil, errors.Wrap(err, "select ability_score")
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[scoreRow])
	if err != nil {
		return nil, errors.Wrap(err, "scan ability_score")
	}
	return toScores(out), nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) EnsurePerson(ctx context.Context, p person.PersonRow) (int64, bool, error) {
	tag, err := t.tx.Exec(ctx, `
		INSERT INTO person (seq, name, gender, age)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (seq) DO NOTHING
	`, p.Seq, p.Name.Text(), p.Gender.Text(), p.Age.Text())
	if err != nil {
		return 0, false, errors.Wrapf(err, "insert person(seq=%d)", p.Seq)
	}

	var id int64
	if err := t.tx.QueryRow(ctx, `SELECT id FROM person WHERE seq = $1`, p.Seq).Scan(&id); err != nil {
		return 0, false, errors.Wrapf(err, "select person(seq=%d)", p.Seq)
	}
	return id, tag.RowsAffected() > 0, nil
}

func (t *postgresTx) ReplaceBasic(ctx context.Context, personID int64, r person.BasicRow) error {
	if _, err := t.tx.Exec(ctx, `
		INSERT INTO person_basic (person_id, hobby, personality, family)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (person_id) DO UPDATE SET
			hobby = EXCLUDED.hobby,
			personality = EXCLUDED.personality,
			family = EXCLUDED.family
	`, personID, r.Hobby.Text(), r.Personality.Text(), r.Family.Text()); err != nil {
		return errors.Wrap(err, "replace person_basic")
	}
	return nil
}

func (t *postgresTx) ReplaceWork(ctx context.Context, personID int64, r person.WorkRow) error {
	if _, err := t.tx.Exec(ctx, `
		INSERT INTO person_work (person_id, years_in_industry, job_hops, previous_job)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (person_id) DO UPDATE SET
			years_in_industry = EXCLUDED.years_in_industry,
			job_hops = EXCLUDED.job_hops,
			previous_job = EXCLUDED.previous_job
	`, personID, r.YearsInIndustry.Text(), r.JobHops.Text(), r.PreviousJob.Text()); err != nil {
		return errors.Wrap(err, "replace person_work")
	}
	return nil
}

func (t *postgresTx) ReplaceEducation(ctx context.Context, personID int64, r person.EducationRow) error {
	if _, err := t.tx.Exec(ctx, `
		INSERT INTO person_education (person_id, degree, school, major)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (person_id) DO UPDATE SET
			degree = EXCLUDED.degree,
			school = EXCLUDED.school,
			major = EXCLUDED.major
	`, personID, r.Degree.Text(), r.School.Text(), r.Major.Text()); err != nil {
		return errors.Wrap(err, "replace person_education")
	}
	return nil
}

func (t *postgresTx) AppendAbilities(ctx context.Context, personID int64, rows []person.AbilityRow) error {
	if len(rows) == 0 {
		return nil
	}
	n, err := t.tx.CopyFrom(
		ctx,
		pgx.Identifier{"ability_score"},
		[]string{"person_id", "category", "ability", "level_text", "score"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			a := rows[i]
			return []any{personID, string(a.Category), a.Ability, a.LevelText, a.Score}, nil
		}),
	)
	if err != nil {
		return errors.Wrap(err, "copy ability_score")
	}
	if n != int64(len(rows)) {
		return errors.Errorf("copy ability_score: wrote %d of %d rows", n, len(rows))
	}
	return nil
}

func (t *postgresTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

func (t *postgresTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Wrap(err, "rollback tx")
	}
	return nil
}
