package engine

// Project combines the baseline expectancy table with the long-run effect of
// the supplied habits into an adjusted life expectancy. The same code path
// serves the current-habits case (real samples) and the optimal-habits case
// (the synthetic set from OptimalSamples); the engine has no branch on which
// one it is computing.
//
// A profile without an age is substituted with the documented default (age
// 30, gender-neutral curve) and the result is tagged, never rejected.
func (e *Engine) Project(samples []MetricSample, profile Profile) (LifeProjection, error) {
	age := defaultAgeYears
	gender := GenderUnspecified
	usedDefault := true
	if profile.AgeYears != nil {
		age = *profile.AgeYears
		gender = profile.Gender
		usedDefault = false
	}

	baseline := BaselineYears(age, gender)

	// Long-run habit effect is always evaluated with day semantics, even
	// when the samples span a broader history.
	agg, err := e.Aggregate(samples, PeriodDay, profile)
	if err != nil {
		return LifeProjection{}, err
	}
	adjustment := agg.TotalImpactMinutes / e.cal.MinutesPerDayPerLifeYear

	adjusted := baseline + adjustment
	if adjusted < 0 {
		adjusted = 0
	}

	remaining := adjusted - age
	if remaining < 0 {
		remaining = 0
	}

	var pct float64
	if adjusted > 0 {
		pct = clamp(remaining/adjusted*100, 0, 100)
	}

	return LifeProjection{
		BaselineLifeExpectancyYears: baseline,
		CurrentAgeYears:             age,
		HealthAdjustmentYears:       adjustment,
		AdjustedLifeExpectancyYears: adjusted,
		YearsRemaining:              remaining,
		PercentageRemaining:         pct,
		Impacts:                     agg.Impacts,
		DefaultProfileUsed:          usedDefault,
	}, nil
}
