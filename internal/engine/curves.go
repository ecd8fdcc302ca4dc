package engine

import "math"

// Dose-response evaluators. Each takes a value already clamped to the curve's
// bounds and returns signed lifespan minutes per day plus a qualitative
// comparison bucket. All three are continuous and deterministic.

func evalPlateau(p *PlateauCurve, v float64) (float64, string) {
	switch {
	case v >= p.Optimal:
		return p.MaxBenefitMinutes, LabelOptimal
	case v >= p.Neutral:
		frac := (v - p.Neutral) / (p.Optimal - p.Neutral)
		return p.MaxBenefitMinutes * frac, LabelNearOptimal
	default:
		// Power-law penalty: sedentary risk compounds, it does not grow
		// linearly with the shortfall.
		t := (p.Neutral - v) / (p.Neutral - p.Floor)
		return -p.MaxPenaltyMinutes * math.Pow(t, p.PenaltyExponent), LabelBelowOptimal
	}
}

func evalU(u *UCurve, v float64) (float64, string) {
	switch {
	case v >= u.OptimalLow && v <= u.OptimalHigh:
		return u.MaxBenefitMinutes, LabelOptimal
	case v < u.OptimalLow:
		t := (u.OptimalLow - v) / (u.OptimalLow - u.Floor)
		m := u.MaxBenefitMinutes - (u.MaxBenefitMinutes+u.LowPenaltyMinutes)*math.Pow(t, u.LowExponent)
		return m, labelForSide(m, LabelBelowOptimal)
	default:
		t := (v - u.OptimalHigh) / (u.Ceil - u.OptimalHigh)
		m := u.MaxBenefitMinutes - (u.MaxBenefitMinutes+u.HighPenaltyMinutes)*math.Pow(t, u.HighExponent)
		return m, labelForSide(m, LabelAboveOptimal)
	}
}

func labelForSide(minutes float64, offLabel string) string {
	if minutes >= 0 {
		return LabelNearOptimal
	}
	return offLabel
}

func evalOrdinal(o *OrdinalCurve, score float64) (float64, string) {
	pts := o.Points
	if score <= pts[0].Score {
		return pts[0].Minutes, LabelBelowOptimal
	}
	last := pts[len(pts)-1]
	if score >= last.Score {
		return last.Minutes, LabelOptimal
	}

	var minutes float64
	for i := 1; i < len(pts); i++ {
		if score <= pts[i].Score {
			span := pts[i].Score - pts[i-1].Score
			frac := (score - pts[i-1].Score) / span
			minutes = pts[i-1].Minutes + frac*(pts[i].Minutes-pts[i-1].Minutes)
			break
		}
	}
	if minutes >= 0 {
		return minutes, LabelNearOptimal
	}
	return minutes, LabelBelowOptimal
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
