package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/talent-import/pkg/composables"
)

func logWithFields(ctx context.Context, level logrus.Level, msg string, fields logrus.Fields) {
	logger := composables.UseLogger(ctx)
	if runID, err := composables.UseRunID(ctx); err == nil {
		logger = logger.WithField("run_id", runID.String())
	}
	logger.WithFields(fields).Log(level, msg)
}
