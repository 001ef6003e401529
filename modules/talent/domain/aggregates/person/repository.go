package person

import "context"

// Store is a relational sink for imported people.
type Store interface {
	EnsureSchema(ctx context.Context) error
	Begin(ctx context.Context) (Tx, error)
	Close() error
}

// Tx writes rows inside one transaction. Rollback after Commit is a no-op.
type Tx interface {
	// EnsurePerson inserts p unless its seq already exists and returns the
	// person id either way. inserted is false for an existing seq.
	EnsurePerson(ctx context.Context, p PersonRow) (id int64, inserted bool, err error)
	ReplaceBasic(ctx context.Context, personID int64, r BasicRow) error
	ReplaceWork(ctx context.Context, personID int64, r WorkRow) error
	ReplaceEducation(ctx context.Context, personID int64, r EducationRow) error
	AppendAbilities(ctx context.Context, personID int64, rows []AbilityRow) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Counts is the number of rows per table.
type Counts struct {
	Persons      int64 `json:"person"`
	Basics       int64 `json:"person_basic"`
	Works        int64 `json:"person_work"`
	Educations   int64 `json:"person_education"`
	AbilityScore int64 `json:"ability_score"`
}

// Counter is implemented by stores that can report table sizes.
type Counter interface {
	Counts(ctx context.Context) (Counts, error)
}

// Score is one stored ability_score row joined with its person.
type Score struct {
	ID        int64
	Seq       int64
	Name      *string
	Category  Category
	Ability   string
	LevelText *string
	Score     *float64
}

// ScoreReader lists stored ability scores in insertion order.
type ScoreReader interface {
	Scores(ctx context.Context) ([]Score, error)
}
