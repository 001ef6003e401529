package composables

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/talent-import/pkg/constants"
)

var (
	ErrNoLogger = errors.New("logger not found")
	ErrNoRunID  = errors.New("run id not found")
)

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger returns the logger from the context.
// Callers without a logger get a discarding entry so logging stays optional.
func UseLogger(ctx context.Context) *logrus.Entry {
	switch typed := ctx.Value(constants.LoggerKey).(type) {
	case *logrus.Entry:
		return typed
	case *logrus.Logger:
		return logrus.NewEntry(typed)
	default:
		l := logrus.New()
		l.SetOutput(io.Discard)
		return logrus.NewEntry(l)
	}
}

func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.RunIDKey, id)
}

func UseRunID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.RunIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoRunID
	}
	return id, nil
}
