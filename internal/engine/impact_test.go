package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine(nil)
	require.NoError(t, err)
	return eng
}

func floatPtr(v float64) *float64 { return &v }

func TestStepsMonotonicWithPlateau(t *testing.T) {
	eng := newTestEngine(t)

	values := []float64{500, 2000, 4000, 6000, 8000, 9000, 10000}
	var prev float64 = math.Inf(-1)
	for _, v := range values {
		impact, err := eng.ImpactOf(KindSteps, v, Profile{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, impact.MinutesPerDay, prev,
			"impact must not decrease from below toward the plateau (at %v)", v)
		prev = impact.MinutesPerDay
	}

	atPlateau, err := eng.ImpactOf(KindSteps, 10000, Profile{})
	require.NoError(t, err)
	for _, v := range []float64{12000, 20000, 35000} {
		beyond, err := eng.ImpactOf(KindSteps, v, Profile{})
		require.NoError(t, err)
		assert.InDelta(t, atPlateau.MinutesPerDay, beyond.MinutesPerDay, 1e-9,
			"impact must be flat past the plateau threshold")
	}
}

func TestStepsPenaltyCompounds(t *testing.T) {
	eng := newTestEngine(t)

	// The marginal penalty must grow as the shortfall grows: the drop from
	// 6000 to 4000 must cost more than the drop from 8000 to 6000.
	at8000, _ := eng.ImpactOf(KindSteps, 8000, Profile{})
	at6000, _ := eng.ImpactOf(KindSteps, 6000, Profile{})
	at4000, _ := eng.ImpactOf(KindSteps, 4000, Profile{})

	upperDrop := at8000.MinutesPerDay - at6000.MinutesPerDay
	lowerDrop := at6000.MinutesPerDay - at4000.MinutesPerDay
	assert.Greater(t, lowerDrop, upperDrop)
}

func TestSleepUShape(t *testing.T) {
	eng := newTestEngine(t)

	optimal, err := eng.ImpactOf(KindSleepHours, 7.5, Profile{})
	require.NoError(t, err)
	short, err := eng.ImpactOf(KindSleepHours, 5.0, Profile{})
	require.NoError(t, err)
	long, err := eng.ImpactOf(KindSleepHours, 10.0, Profile{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, optimal.MinutesPerDay, short.MinutesPerDay)
	assert.GreaterOrEqual(t, optimal.MinutesPerDay, long.MinutesPerDay)
	assert.Equal(t, LabelOptimal, optimal.ComparisonLabel)

	// Short sleep is penalized more steeply than long sleep at the same
	// distance from the optimal band.
	shortSide, _ := eng.ImpactOf(KindSleepHours, 5.5, Profile{})
	longSide, _ := eng.ImpactOf(KindSleepHours, 9.5, Profile{})
	assert.Less(t, shortSide.MinutesPerDay, longSide.MinutesPerDay)
}

func TestOrdinalScores(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name  string
		kind  MetricKind
		score float64
		want  float64
	}{
		{"smoking at breakpoint", KindSmoking, 4, -180},
		{"smoking interpolated", KindSmoking, 3, -220},
		{"smoking best possible", KindSmoking, 10, 0},
		{"nutrition interpolated", KindNutrition, 6.5, 0},
		{"nutrition best possible", KindNutrition, 10, 30},
		{"alcohol worst", KindAlcohol, 1, -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact, err := eng.ImpactOf(tt.kind, tt.score, Profile{})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, impact.MinutesPerDay, 1e-9)
		})
	}
}

func TestOrdinalMonotonic(t *testing.T) {
	eng := newTestEngine(t)

	for _, kind := range []MetricKind{KindSmoking, KindAlcohol, KindStress, KindNutrition, KindSocialConnection} {
		prev := math.Inf(-1)
		for score := 1.0; score <= 10; score += 0.5 {
			impact, err := eng.ImpactOf(kind, score, Profile{})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, impact.MinutesPerDay, prev, "%s at score %v", kind, score)
			prev = impact.MinutesPerDay
		}
	}
}

func TestOutOfRangeValuesAreClampedAndAnnotated(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name      string
		kind      MetricKind
		value     float64
		wantUsed  float64
		wantClamp bool
	}{
		{"negative steps", KindSteps, -500, 0, true},
		{"absurd steps", KindSteps, 90000, 40000, true},
		{"sleep below floor", KindSleepHours, 1, 3, true},
		{"score above scale", KindStress, 14, 10, true},
		{"in-range untouched", KindSteps, 6000, 6000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact, err := eng.ImpactOf(tt.kind, tt.value, Profile{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantClamp, impact.Clamped)
			assert.InDelta(t, tt.wantUsed, impact.ValueUsed, 1e-9)
		})
	}
}

func TestBodyMassUsesProfileHeight(t *testing.T) {
	eng := newTestEngine(t)

	// 81 kg at 180 cm is BMI 25, the top of the optimal band.
	tall, err := eng.ImpactOf(KindBodyMass, 81, Profile{HeightCm: floatPtr(180)})
	require.NoError(t, err)
	assert.InDelta(t, 25, tall.ValueUsed, 1e-9)
	assert.Equal(t, LabelOptimal, tall.ComparisonLabel)

	// The same weight at 160 cm is BMI ~31.6 and clearly penalized.
	short, err := eng.ImpactOf(KindBodyMass, 81, Profile{HeightCm: floatPtr(160)})
	require.NoError(t, err)
	assert.Negative(t, short.MinutesPerDay)
}

func TestMissingCalibrationIsFatal(t *testing.T) {
	cal := DefaultCalibration()
	delete(cal.Metrics, KindVO2Max)
	eng, err := NewEngine(cal)
	require.NoError(t, err)

	_, err = eng.ImpactOf(KindVO2Max, 40, Profile{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCalibration))
}

func TestImpactIsDeterministic(t *testing.T) {
	eng := newTestEngine(t)
	profile := Profile{AgeYears: floatPtr(40), Gender: GenderMale}

	first, err := eng.ImpactOf(KindSteps, 3000, profile)
	require.NoError(t, err)
	second, err := eng.ImpactOf(KindSteps, 3000, profile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
