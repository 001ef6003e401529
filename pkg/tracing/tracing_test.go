package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/talent-import/pkg/configuration"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), configuration.OpenTelemetryOptions{})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), configuration.OpenTelemetryOptions{
		Enabled:     true,
		TempoURL:    "127.0.0.1:4318",
		ServiceName: "talent-import-test",
	})
	require.NoError(t, err)
	// nothing was recorded, so shutdown does not need the collector
	require.NoError(t, shutdown(context.Background()))
}
