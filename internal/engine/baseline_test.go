package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaselineRemainingDecreasesWithAge(t *testing.T) {
	for _, gender := range []Gender{GenderMale, GenderFemale, GenderUnspecified} {
		prev := baselineRemainingYears(0, gender)
		for age := 1.0; age <= 100; age++ {
			remaining := baselineRemainingYears(age, gender)
			assert.LessOrEqual(t, remaining, prev, "remaining years must not grow with age (%s, age %v)", gender, age)
			prev = remaining
		}
	}
}

func TestBaselineGenderCurves(t *testing.T) {
	for age := 0.0; age <= 100; age += 10 {
		male := BaselineYears(age, GenderMale)
		female := BaselineYears(age, GenderFemale)
		neutral := BaselineYears(age, GenderUnspecified)

		assert.Greater(t, female, male, "at age %v", age)
		assert.InDelta(t, (male+female)/2, neutral, 1e-9, "neutral curve is the sex average at age %v", age)
	}
}

func TestBaselineInterpolatesBetweenSteps(t *testing.T) {
	// Age 42 sits between the 40 and 45 table rows.
	at40 := baselineRemainingYears(40, GenderMale)
	at42 := baselineRemainingYears(42, GenderMale)
	at45 := baselineRemainingYears(45, GenderMale)

	assert.Less(t, at42, at40)
	assert.Greater(t, at42, at45)
	assert.InDelta(t, at40+(at45-at40)*0.4, at42, 1e-9)
}

func TestBaselineClampsExtremeAges(t *testing.T) {
	assert.InDelta(t, baselineRemainingYears(0, GenderFemale), baselineRemainingYears(-5, GenderFemale), 1e-9)
	assert.InDelta(t, baselineRemainingYears(100, GenderMale), baselineRemainingYears(130, GenderMale), 1e-9)
}
