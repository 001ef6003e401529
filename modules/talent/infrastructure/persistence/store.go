package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("unknown backend")

type Options struct {
	Backend     string
	SQLitePath  string
	PostgresDSN string
}

// CountingStore is a Store that can also report table sizes and read back scores.
type CountingStore interface {
	person.Store
	person.Counter
	person.ScoreReader
}

func Open(ctx context.Context, opts Options) (CountingStore, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLite(opts.SQLitePath)
	case BackendPostgres:
		return OpenPostgres(ctx, opts.PostgresDSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
