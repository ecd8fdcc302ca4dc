package engine

// DefaultCalibration returns the compiled-in dose-response table. Deployments
// normally override it with a YAML table (see LoadCalibration); the values
// here are seeded from published epidemiological effect sizes and exist so
// the engine is usable with zero configuration.
func DefaultCalibration() *Calibration {
	return &Calibration{
		Version:                  "2026.1",
		MinutesPerDayPerLifeYear: 25,
		BatteryEnvelopeMinutes:   120,
		Metrics: map[MetricKind]*MetricCalibration{
			KindSteps: {
				Shape: ShapePlateau,
				Plateau: &PlateauCurve{
					Floor: 0, Ceil: 40000,
					Neutral: 8000, Optimal: 10000,
					MaxBenefitMinutes: 15,
					MaxPenaltyMinutes: 60,
					PenaltyExponent:   1.6,
				},
				OptimalValue:   10000,
				MaxActionDelta: 4000,
				ActionTemplate: "Walk %s more steps each day",
				Unit:           "steps",
				StudyReference: "Paluch et al. 2022, Lancet Public Health",
			},
			KindExerciseMinutes: {
				Shape: ShapePlateau,
				Plateau: &PlateauCurve{
					Floor: 0, Ceil: 300,
					Neutral: 15, Optimal: 45,
					MaxBenefitMinutes: 20,
					MaxPenaltyMinutes: 30,
					PenaltyExponent:   1.5,
				},
				OptimalValue:   45,
				MaxActionDelta: 30,
				ActionTemplate: "Add %s minutes of exercise each day",
				Unit:           "min",
				StudyReference: "Arem et al. 2015, JAMA Intern Med",
			},
			KindActiveEnergy: {
				Shape: ShapePlateau,
				Plateau: &PlateauCurve{
					Floor: 0, Ceil: 2000,
					Neutral: 300, Optimal: 600,
					MaxBenefitMinutes: 12,
					MaxPenaltyMinutes: 25,
					PenaltyExponent:   1.4,
				},
				OptimalValue:   600,
				MaxActionDelta: 300,
				ActionTemplate: "Burn %s more active kilocalories each day",
				Unit:           "kcal",
			},
			KindVO2Max: {
				Shape: ShapePlateau,
				Plateau: &PlateauCurve{
					Floor: 15, Ceil: 65,
					Neutral: 35, Optimal: 48,
					MaxBenefitMinutes: 25,
					MaxPenaltyMinutes: 45,
					PenaltyExponent:   1.5,
				},
				OptimalValue:   48,
				MaxActionDelta: 5,
				ActionTemplate: "Raise your VO2max by %s ml/kg/min through cardio training",
				Unit:           "ml/kg/min",
				StudyReference: "Mandsager et al. 2018, JAMA Netw Open",
			},
			KindSleepHours: {
				Shape: ShapeU,
				U: &UCurve{
					Floor: 3, Ceil: 12,
					OptimalLow: 7, OptimalHigh: 8,
					MaxBenefitMinutes:  10,
					LowPenaltyMinutes:  90,
					HighPenaltyMinutes: 40,
					LowExponent:        1.8,
					HighExponent:       1.4,
				},
				OptimalValue:   7.5,
				MaxActionDelta: 2,
				ActionTemplate: "Adjust your sleep by %s hours toward the 7-8h band",
				Unit:           "h",
				StudyReference: "Cappuccio et al. 2010, Sleep",
			},
			KindRestingHeartRate: {
				Shape: ShapeU,
				U: &UCurve{
					Floor: 35, Ceil: 110,
					OptimalLow: 55, OptimalHigh: 65,
					MaxBenefitMinutes:  8,
					LowPenaltyMinutes:  30,
					HighPenaltyMinutes: 60,
					LowExponent:        1.5,
					HighExponent:       1.6,
				},
				OptimalValue:   60,
				MaxActionDelta: 8,
				ActionTemplate: "Lower your resting heart rate by %s bpm with regular aerobic exercise",
				Unit:           "bpm",
			},
			KindHeartRateVariability: {
				Shape: ShapeU,
				U: &UCurve{
					Floor: 10, Ceil: 200,
					OptimalLow: 60, OptimalHigh: 110,
					MaxBenefitMinutes:  12,
					LowPenaltyMinutes:  45,
					HighPenaltyMinutes: 8,
					LowExponent:        1.5,
					HighExponent:       1.2,
				},
				OptimalValue:   80,
				MaxActionDelta: 15,
				ActionTemplate: "Raise your HRV by %s ms through recovery and stress management",
				Unit:           "ms",
			},
			KindBodyMass: {
				Shape: ShapeU,
				U: &UCurve{
					Floor: 14, Ceil: 45,
					OptimalLow: 20, OptimalHigh: 25,
					MaxBenefitMinutes:  8,
					LowPenaltyMinutes:  50,
					HighPenaltyMinutes: 70,
					LowExponent:        1.5,
					HighExponent:       1.6,
				},
				OptimalValue:   22,
				MaxActionDelta: 2.5,
				ActionTemplate: "Move your BMI by %s points toward the 20-25 band",
				Unit:           "kg/m2",
				StudyReference: "Global BMI Mortality Collaboration 2016, Lancet",
			},
			KindOxygenSaturation: {
				Shape: ShapeU,
				U: &UCurve{
					Floor: 85, Ceil: 100,
					OptimalLow: 95, OptimalHigh: 100,
					MaxBenefitMinutes:  5,
					LowPenaltyMinutes:  60,
					HighPenaltyMinutes: 0,
					LowExponent:        1.7,
					HighExponent:       1,
				},
				OptimalValue:   98,
				MaxActionDelta: 2,
				ActionTemplate: "Raise your blood oxygen by %s points; see a clinician if it stays low",
				Unit:           "%",
			},
			KindSmoking: {
				Shape: ShapeOrdinal,
				Ordinal: &OrdinalCurve{Points: []OrdinalPoint{
					{Score: 1, Minutes: -300},
					{Score: 4, Minutes: -180},
					{Score: 7, Minutes: -60},
					{Score: 9, Minutes: -10},
					{Score: 10, Minutes: 0},
				}},
				OptimalValue:   10,
				MaxActionDelta: 2,
				ActionTemplate: "Cut back on smoking to gain %s points on your score",
				Unit:           "score",
				StudyReference: "Doll et al. 2004, BMJ",
			},
			KindAlcohol: {
				Shape: ShapeOrdinal,
				Ordinal: &OrdinalCurve{Points: []OrdinalPoint{
					{Score: 1, Minutes: -120},
					{Score: 5, Minutes: -40},
					{Score: 8, Minutes: -5},
					{Score: 10, Minutes: 0},
				}},
				OptimalValue:   10,
				MaxActionDelta: 2,
				ActionTemplate: "Reduce drinking to gain %s points on your score",
				Unit:           "score",
				StudyReference: "GBD 2016 Alcohol Collaborators, Lancet",
			},
			KindStress: {
				Shape: ShapeOrdinal,
				Ordinal: &OrdinalCurve{Points: []OrdinalPoint{
					{Score: 1, Minutes: -60},
					{Score: 5, Minutes: -15},
					{Score: 8, Minutes: 5},
					{Score: 10, Minutes: 15},
				}},
				OptimalValue:   10,
				MaxActionDelta: 2,
				ActionTemplate: "Lower your stress load for %s more points on your score",
				Unit:           "score",
			},
			KindNutrition: {
				Shape: ShapeOrdinal,
				Ordinal: &OrdinalCurve{Points: []OrdinalPoint{
					{Score: 1, Minutes: -70},
					{Score: 5, Minutes: -15},
					{Score: 8, Minutes: 15},
					{Score: 10, Minutes: 30},
				}},
				OptimalValue:   10,
				MaxActionDelta: 2,
				ActionTemplate: "Improve your diet quality by %s points on your score",
				Unit:           "score",
				StudyReference: "Fadnes et al. 2022, PLOS Med",
			},
			KindSocialConnection: {
				Shape: ShapeOrdinal,
				Ordinal: &OrdinalCurve{Points: []OrdinalPoint{
					{Score: 1, Minutes: -50},
					{Score: 5, Minutes: -10},
					{Score: 8, Minutes: 12},
					{Score: 10, Minutes: 25},
				}},
				OptimalValue:   10,
				MaxActionDelta: 2,
				ActionTemplate: "Invest in relationships for %s more points on your score",
				Unit:           "score",
				StudyReference: "Holt-Lunstad et al. 2010, PLOS Med",
			},
		},
	}
}
