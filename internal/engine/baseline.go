package engine

import "math"

// Baseline life expectancy, seeded from public period life tables. The seed
// arrays hold remaining years at five-year age steps from 0 to 100; values in
// between are interpolated linearly. This table is a pure input to the
// projection engine; no impact calculator reads it.

const baselineAgeStep = 5

var (
	baselineRemainingMale = []float64{
		76.3, 71.8, 66.9, 62.0, 57.2, 52.5, 47.8, 43.1, 38.5, 34.0,
		29.6, 25.4, 21.4, 17.6, 14.1, 10.9, 8.1, 5.9, 4.1, 2.9, 2.1,
	}
	baselineRemainingFemale = []float64{
		81.4, 76.8, 71.9, 67.0, 62.1, 57.3, 52.5, 47.7, 43.0, 38.3,
		33.8, 29.3, 25.0, 20.8, 16.9, 13.2, 10.0, 7.2, 5.0, 3.5, 2.4,
	}
)

// BaselineYears returns the unadjusted life expectancy (expected age at
// death) for the given age and gender. An unspecified gender falls back to
// the sex-neutral average of the male and female curves.
func BaselineYears(ageYears float64, gender Gender) float64 {
	return ageYears + baselineRemainingYears(ageYears, gender)
}

func baselineRemainingYears(ageYears float64, gender Gender) float64 {
	switch gender {
	case GenderMale:
		return interpolateRemaining(baselineRemainingMale, ageYears)
	case GenderFemale:
		return interpolateRemaining(baselineRemainingFemale, ageYears)
	default:
		m := interpolateRemaining(baselineRemainingMale, ageYears)
		f := interpolateRemaining(baselineRemainingFemale, ageYears)
		return (m + f) / 2
	}
}

func interpolateRemaining(table []float64, ageYears float64) float64 {
	maxAge := float64((len(table) - 1) * baselineAgeStep)
	age := clamp(ageYears, 0, maxAge)

	idx := age / baselineAgeStep
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return table[lower]
	}

	weight := idx - float64(lower)
	return table[lower]*(1-weight) + table[upper]*weight
}
