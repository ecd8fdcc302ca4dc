package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitOfCapsTheActionSize(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	// 3000 steps is far below the neutral point; the full move would be
	// nearly 5000 steps, so the cap must bite.
	rec, err := eng.BenefitOf(KindSteps, 3000, profile)
	require.NoError(t, err)

	assert.InDelta(t, 7000, rec.TargetValue, 1e-9)
	assert.Greater(t, rec.IncrementalMinutes, 0.0)
	assert.False(t, rec.UsedFallback)
	assert.Contains(t, rec.Action, "4000")
}

func TestBenefitOfAlreadyOptimal(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	rec, err := eng.BenefitOf(KindSteps, 12000, profile)
	require.NoError(t, err)

	assert.InDelta(t, 12000, rec.TargetValue, 1e-9)
	assert.InDelta(t, 3.0, rec.IncrementalMinutes, 1e-9)
	assert.True(t, strings.HasPrefix(rec.Action, "Keep going"))
}

func TestBenefitOfRestingHeartRateMovesDown(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	rec, err := eng.BenefitOf(KindRestingHeartRate, 90, profile)
	require.NoError(t, err)

	// The cap of 8 bpm applies on the way down as well.
	assert.InDelta(t, 82, rec.TargetValue, 1e-9)
	assert.Greater(t, rec.IncrementalMinutes, 0.0)
}

func TestBenefitOfSmokingScore(t *testing.T) {
	eng := newTestEngine(t)

	rec, err := eng.BenefitOf(KindSmoking, 3, Profile{})
	require.NoError(t, err)

	assert.InDelta(t, 5, rec.TargetValue, 1e-9)
	assert.InDelta(t, 80, rec.IncrementalMinutes, 1e-9)
}

func TestBenefitOfBodyMassWorksInDisplayUnits(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale, HeightCm: floatPtr(180)}

	// 100 kg at 180 cm is BMI 30.9, above the optimal band.
	rec, err := eng.BenefitOf(KindBodyMass, 100, profile)
	require.NoError(t, err)

	assert.Less(t, rec.TargetValue, 100.0)
	// The cap is 2.5 BMI points, which is 8.1 kg at this height.
	assert.GreaterOrEqual(t, rec.TargetValue, 100.0-2.5*1.8*1.8-1e-9)
	assert.Greater(t, rec.IncrementalMinutes, 0.0)
}

func TestBenefitOfUnknownKind(t *testing.T) {
	eng := newTestEngine(t)
	delete(eng.Calibration().Metrics, KindStress)

	_, err := eng.BenefitOf(KindStress, 5, Profile{})
	assert.ErrorIs(t, err, ErrNoCalibration)
}
