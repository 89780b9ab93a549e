package cmd_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orderflow/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulateConfig() cmd.Config {
	return cmd.Config{
		AppMode:         cmd.ModeSimulate,
		LogLevel:        slog.LevelInfo,
		JournalCapacity: 100,
	}
}

func TestCompositionRoot_Run_Simulate(t *testing.T) {
	t.Run("should print the demo run to the console", func(t *testing.T) {
		var console, logs bytes.Buffer
		app, err := cmd.NewCompositionRoot(simulateConfig(), cmd.NewLogger(&logs, slog.LevelInfo), nil, &console)
		require.NoError(t, err)

		require.NoError(t, app.Run(t.Context()))

		lines := strings.Split(strings.TrimSpace(console.String()), "\n")
		require.Len(t, lines, 28)
		assert.Equal(t, "-- order ORD-001: distance=2km, weight=1kg, weather_ok=true", lines[0])
		assert.Equal(t, "[DeliveryTracker] courier received: Order ORD-100: ARCHIVADO", lines[27])
		assert.Contains(t, logs.String(), "Scenario finished")
	})

	t.Run("should run a scenario file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"deliveries:\n  - order_id: ORD-7\n    distance_km: 20\n    weight_kg: 1\n",
		), 0o600))
		cfg := simulateConfig()
		cfg.ScenarioFile = path
		var console bytes.Buffer
		app, err := cmd.NewCompositionRoot(cfg, cmd.NewLogger(&bytes.Buffer{}, slog.LevelInfo), nil, &console)
		require.NoError(t, err)

		require.NoError(t, app.Run(t.Context()))

		assert.Equal(t,
			"-- order ORD-7: distance=20km, weight=1kg, weather_ok=true\n"+
				"[Car] delivering order ORD-7: interurban route or large order (speed 50 km/h)\n",
			console.String())
	})

	t.Run("should fail for a missing scenario file", func(t *testing.T) {
		cfg := simulateConfig()
		cfg.ScenarioFile = filepath.Join(t.TempDir(), "missing.yaml")
		app, err := cmd.NewCompositionRoot(cfg, cmd.NewLogger(&bytes.Buffer{}, slog.LevelInfo), nil, &bytes.Buffer{})
		require.NoError(t, err)

		require.Error(t, app.Run(t.Context()))
	})
}

func TestNewCompositionRoot(t *testing.T) {
	t.Run("should reject a non-positive journal capacity", func(t *testing.T) {
		cfg := simulateConfig()
		cfg.JournalCapacity = 0

		_, err := cmd.NewCompositionRoot(cfg, cmd.NewLogger(&bytes.Buffer{}, slog.LevelInfo), nil, &bytes.Buffer{})

		require.Error(t, err)
	})
}
