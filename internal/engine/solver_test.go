package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveNeutralStepsConverges(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	result, err := eng.SolveNeutral(KindSteps, 3000, profile, 3000, 10000)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.False(t, result.UsedFallback)
	assert.LessOrEqual(t, result.Iterations, 20)

	impact, err := eng.ImpactOf(KindSteps, result.Value, profile)
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(impact.MinutesPerDay), 0.5)

	// The neutral point for steps sits just below the 8000 reference.
	assert.Greater(t, result.Value, 7000.0)
	assert.Less(t, result.Value, 10500.0)
}

func TestSolveNeutralHandlesInvertedBounds(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	forward, err := eng.SolveNeutral(KindSteps, 3000, profile, 3000, 10000)
	require.NoError(t, err)
	inverted, err := eng.SolveNeutral(KindSteps, 3000, profile, 10000, 3000)
	require.NoError(t, err)

	assert.InDelta(t, forward.Value, inverted.Value, 1e-9)
}

func TestSolveNeutralSameSignBracketFallsBack(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	// Both endpoints are past the neutral crossing, so bisection has no
	// sign change to work with.
	result, err := eng.SolveNeutral(KindSteps, 12000, profile, 10000, 12000)
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.InDelta(t, 10000, result.Value, 1e-9)
}

func TestSolveNeutralSleepLowSide(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	result, err := eng.SolveNeutral(KindSleepHours, 5.0, profile, 5.0, 7.5)
	require.NoError(t, err)
	require.False(t, result.UsedFallback)

	impact, err := eng.ImpactOf(KindSleepHours, result.Value, profile)
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(impact.MinutesPerDay), 0.5)
	assert.Greater(t, result.Value, 5.0)
	assert.Less(t, result.Value, 7.0)
}

func TestSolveNeutralUnknownKind(t *testing.T) {
	eng := newTestEngine(t)
	delete(eng.Calibration().Metrics, KindHeartRateVariability)

	_, err := eng.SolveNeutral(KindHeartRateVariability, 40, Profile{}, 40, 80)
	assert.ErrorIs(t, err, ErrNoCalibration)
}
