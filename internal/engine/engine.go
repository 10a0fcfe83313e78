package engine

import "math"

// ApplyModel evaluates c + b*age + a*age^2. Age is not range checked.
// A nil model yields 0; callers that need to tell a real zero from a
// missing model use Lookup.
func ApplyModel(c *Coefficients, age float64) float64 {
	if c == nil {
		return 0
	}
	return c[0] + c[1]*age + c[2]*age*age
}

// FrequencyEstimate evaluates the median and 95th percentile models for a
// single frequency. The median is floored at 0; the 95th percentile is
// returned as fitted.
func FrequencyEstimate(sex Sex, f Frequency, age float64) Estimate {
	return estimate(sex, FrequencyMetric(f), age)
}

// CompositeEstimate is FrequencyEstimate for a composite index.
func CompositeEstimate(sex Sex, idx Index, age float64) Estimate {
	return estimate(sex, IndexMetric(idx), age)
}

func estimate(sex Sex, m Metric, age float64) Estimate {
	return Estimate{
		Median: math.Max(0, ApplyModel(lookupPtr(sex, m, Median), age)),
		P95:    ApplyModel(lookupPtr(sex, m, P95), age),
	}
}

// PatientComposite averages the patient's readings over the index's
// component frequencies. ok is false unless every component is present;
// partial averages are never produced.
func PatientComposite(t PatientThresholds, idx Index) (float64, bool) {
	comps := idx.Components()
	if len(comps) == 0 {
		return 0, false
	}
	var sum float64
	for _, f := range comps {
		v, present := t[f]
		if !present {
			return 0, false
		}
		sum += v
	}
	return sum / float64(len(comps)), true
}

// AudiogramPoint is one column of the comparison audiogram.
type AudiogramPoint struct {
	Frequency Frequency
	Estimate
	Patient *float64
	// PatientSeverity is set only when Patient is.
	PatientSeverity *Severity
}

// Audiogram evaluates every tested frequency for (sex, age) alongside the
// patient's readings, in ascending frequency order. t may be nil.
func Audiogram(sex Sex, age float64, t PatientThresholds) []AudiogramPoint {
	points := make([]AudiogramPoint, 0, len(frequencies))
	for _, f := range frequencies {
		p := AudiogramPoint{Frequency: f, Estimate: FrequencyEstimate(sex, f, age)}
		if v, ok := t[f]; ok {
			sev := ClassifySeverity(v)
			p.Patient = &v
			p.PatientSeverity = &sev
		}
		points = append(points, p)
	}
	return points
}
