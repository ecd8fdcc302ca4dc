package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultCalibrationIsComplete(t *testing.T) {
	cal := DefaultCalibration()
	require.NoError(t, cal.Validate())

	for _, kind := range AllMetricKinds() {
		assert.Containsf(t, cal.Metrics, kind, "kind %s has no calibration", kind)
	}
}

func TestLoadCalibrationRoundTrip(t *testing.T) {
	cal := DefaultCalibration()

	data, err := yaml.Marshal(cal)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "calibration.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadCalibration(path)
	require.NoError(t, err)

	assert.Equal(t, cal.Version, loaded.Version)
	assert.Equal(t, cal.MinutesPerDayPerLifeYear, loaded.MinutesPerDayPerLifeYear)
	assert.Equal(t, cal.BatteryEnvelopeMinutes, loaded.BatteryEnvelopeMinutes)
	require.Len(t, loaded.Metrics, len(cal.Metrics))
	assert.Equal(t, cal.Metrics[KindSteps], loaded.Metrics[KindSteps])
	assert.Equal(t, cal.Metrics[KindSleepHours], loaded.Metrics[KindSleepHours])
	assert.Equal(t, cal.Metrics[KindSmoking], loaded.Metrics[KindSmoking])
}

func TestLoadCalibrationMissingFile(t *testing.T) {
	_, err := LoadCalibration(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestCalibrationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Calibration)
	}{
		{
			name:   "empty version",
			mutate: func(c *Calibration) { c.Version = "" },
		},
		{
			name:   "zero conversion rate",
			mutate: func(c *Calibration) { c.MinutesPerDayPerLifeYear = 0 },
		},
		{
			name:   "negative envelope",
			mutate: func(c *Calibration) { c.BatteryEnvelopeMinutes = -10 },
		},
		{
			name: "plateau missing parameters",
			mutate: func(c *Calibration) {
				c.Metrics[KindSteps].Plateau = nil
			},
		},
		{
			name: "plateau ordering broken",
			mutate: func(c *Calibration) {
				c.Metrics[KindSteps].Plateau.Neutral = c.Metrics[KindSteps].Plateau.Optimal + 1
			},
		},
		{
			name: "u exponent below one",
			mutate: func(c *Calibration) {
				c.Metrics[KindSleepHours].U.LowExponent = 0.5
			},
		},
		{
			name: "ordinal scores not ascending",
			mutate: func(c *Calibration) {
				pts := c.Metrics[KindSmoking].Ordinal.Points
				pts[1].Score = pts[0].Score
			},
		},
		{
			name: "ordinal minutes regress",
			mutate: func(c *Calibration) {
				pts := c.Metrics[KindAlcohol].Ordinal.Points
				pts[2].Minutes = pts[1].Minutes - 1
			},
		},
		{
			name: "unknown shape",
			mutate: func(c *Calibration) {
				c.Metrics[KindStress].Shape = "sigmoid"
			},
		},
		{
			name: "zero action delta",
			mutate: func(c *Calibration) {
				c.Metrics[KindNutrition].MaxActionDelta = 0
			},
		},
		{
			name: "empty action template",
			mutate: func(c *Calibration) {
				c.Metrics[KindSocialConnection].ActionTemplate = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := DefaultCalibration()
			tt.mutate(cal)
			assert.Error(t, cal.Validate())
		})
	}
}
