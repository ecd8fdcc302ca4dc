package engine

import (
	"time"
)

// MetricKind identifies one tracked health signal. The set is closed: every
// kind must have a calibration entry before the engine will evaluate it.
type MetricKind string

const (
	KindSteps                MetricKind = "steps"
	KindExerciseMinutes      MetricKind = "exercise_minutes"
	KindSleepHours           MetricKind = "sleep_hours"
	KindRestingHeartRate     MetricKind = "resting_heart_rate"
	KindHeartRateVariability MetricKind = "heart_rate_variability"
	KindBodyMass             MetricKind = "body_mass"
	KindActiveEnergy         MetricKind = "active_energy"
	KindVO2Max               MetricKind = "vo2_max"
	KindOxygenSaturation     MetricKind = "oxygen_saturation"
	KindSmoking              MetricKind = "smoking"
	KindAlcohol              MetricKind = "alcohol"
	KindStress               MetricKind = "stress"
	KindNutrition            MetricKind = "nutrition"
	KindSocialConnection     MetricKind = "social_connection"
)

// AllMetricKinds returns every kind the engine knows about, in a stable order.
func AllMetricKinds() []MetricKind {
	return []MetricKind{
		KindSteps,
		KindExerciseMinutes,
		KindSleepHours,
		KindRestingHeartRate,
		KindHeartRateVariability,
		KindBodyMass,
		KindActiveEnergy,
		KindVO2Max,
		KindOxygenSaturation,
		KindSmoking,
		KindAlcohol,
		KindStress,
		KindNutrition,
		KindSocialConnection,
	}
}

// aggregationClass controls how samples of a kind are reduced to one
// representative value for a reporting period.
type aggregationClass int

const (
	// classCumulative kinds accumulate over the period (steps, kcal).
	classCumulative aggregationClass = iota
	// classState kinds are point-in-time readings; the latest one wins.
	classState
	// classOrdinal kinds are slow-changing 1-10 self-reports; latest wins.
	classOrdinal
)

var kindClasses = map[MetricKind]aggregationClass{
	KindSteps:                classCumulative,
	KindExerciseMinutes:      classCumulative,
	KindActiveEnergy:         classCumulative,
	KindSleepHours:           classState,
	KindRestingHeartRate:     classState,
	KindHeartRateVariability: classState,
	KindBodyMass:             classState,
	KindVO2Max:               classState,
	KindOxygenSaturation:     classState,
	KindSmoking:              classOrdinal,
	KindAlcohol:              classOrdinal,
	KindStress:               classOrdinal,
	KindNutrition:            classOrdinal,
	KindSocialConnection:     classOrdinal,
}

// Provenance records where a sample came from.
type Provenance string

const (
	ProvenanceDevice       Provenance = "device"
	ProvenanceSelfReported Provenance = "self_reported"
)

// Gender affects the baseline expectancy curve and nothing else. An empty
// value means unspecified and selects the sex-neutral average curve.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = ""
)

// PeriodType is the reporting window an aggregate covers.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// periodFactor scales a daily figure to the reporting window.
func periodFactor(p PeriodType) float64 {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 1
	}
}

// MetricSample is one observation of one metric. Samples are immutable and
// owned by the caller; the engine only ever reads them.
type MetricSample struct {
	Kind       MetricKind `json:"kind"`
	Value      float64    `json:"value"`
	ObservedAt time.Time  `json:"observed_at"`
	Provenance Provenance `json:"provenance"`
}

// Profile is the minimal per-user context calculators need. All fields are
// optional; absent fields fall back to documented defaults. The engine never
// stores or mutates a profile.
type Profile struct {
	AgeYears *float64 `json:"age_years,omitempty"`
	Gender   Gender   `json:"gender,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
}

const (
	defaultAgeYears = 30.0
	defaultHeightCm = 170.0
)

// MetricImpact is the output of one impact calculator: a signed
// lifespan-minutes-per-day effect attributed to the metric's current value.
type MetricImpact struct {
	Kind            MetricKind `json:"kind"`
	MinutesPerDay   float64    `json:"minutes_per_day"`
	ComparisonLabel string     `json:"comparison_label"`
	StudyReference  string     `json:"study_reference,omitempty"`

	// ValueUsed is the value actually evaluated. When the raw input fell
	// outside the kind's physiological bounds it is the clamped value and
	// Clamped is set, so callers can surface the substitution.
	ValueUsed float64 `json:"value_used"`
	Clamped   bool    `json:"clamped"`
}

// Comparison labels, coarsest qualitative buckets only.
const (
	LabelOptimal      = "optimal"
	LabelNearOptimal  = "near optimal"
	LabelBelowOptimal = "below optimal"
	LabelAboveOptimal = "above optimal"
)

// AggregatedImpact is the period-level combination of every metric that had
// data in the window.
type AggregatedImpact struct {
	TotalImpactMinutes  float64        `json:"total_impact_minutes"`
	PeriodType          PeriodType     `json:"period_type"`
	BatteryLevelPercent float64        `json:"battery_level_percent"`
	Impacts             []MetricImpact `json:"impacts"`

	// NoData distinguishes "no samples at all" from a genuinely balanced
	// set that sums to zero.
	NoData bool `json:"no_data"`
}

// LifeProjection is an adjusted life expectancy derived from a baseline
// actuarial figure and the long-run effect of current habits.
type LifeProjection struct {
	BaselineLifeExpectancyYears float64        `json:"baseline_life_expectancy_years"`
	CurrentAgeYears             float64        `json:"current_age_years"`
	HealthAdjustmentYears       float64        `json:"health_adjustment_years"`
	AdjustedLifeExpectancyYears float64        `json:"adjusted_life_expectancy_years"`
	YearsRemaining              float64        `json:"years_remaining"`
	PercentageRemaining         float64        `json:"percentage_remaining"`
	Impacts                     []MetricImpact `json:"impacts"`

	// DefaultProfileUsed is set when age was absent and the documented
	// default (30, gender-neutral) was substituted.
	DefaultProfileUsed bool `json:"default_profile_used"`
}

// SolveResult is the outcome of a neutral-point search.
type SolveResult struct {
	Value      float64 `json:"value"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`

	// UsedFallback is set when the bracket held no zero crossing or the
	// iteration limit ran out; Value is then the kind's calibrated optimal.
	UsedFallback bool `json:"used_fallback"`
}

// Recommendation quantifies one boundedly-realistic behavior change.
type Recommendation struct {
	Kind               MetricKind `json:"kind"`
	Action             string     `json:"action"`
	IncrementalMinutes float64    `json:"incremental_minutes"`
	TargetValue        float64    `json:"target_value"`
	UsedFallback       bool       `json:"used_fallback"`
}
