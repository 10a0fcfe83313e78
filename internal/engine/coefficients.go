package engine

import "strconv"

// Coefficients holds a quadratic model as [intercept, linear, quadratic],
// i.e. y = c + b*x + a*x^2. Arrays copy by value, so a looked-up model can
// never alias the table.
type Coefficients [3]float64

// Metric identifies a modelled quantity: a single frequency or a composite
// index.
type Metric string

// FrequencyMetric returns the metric for a single test frequency.
func FrequencyMetric(f Frequency) Metric {
	return Metric("f" + strconv.Itoa(int(f)))
}

// IndexMetric returns the metric for a composite index.
func IndexMetric(i Index) Metric {
	return Metric(i)
}

type modelKey struct {
	sex    Sex
	metric Metric
	tier   Tier
}

// Least squares quadratic fits of the NHANES data (Hoffman et al., Ear &
// Hearing 2010 and 2012) used by Dobie's ARHL calculator. The high
// frequency 95th percentile curves carry a saturation correction and turn
// over at older ages; they are reproduced as published.
var models = map[modelKey]Coefficients{
	{Male, "f500", Median}:  {6.8, -0.09, 0.003},
	{Male, "f1000", Median}: {4.4, -0.17, 0.0044},
	{Male, "f2000", Median}: {4.2, -0.21, 0.0064},
	{Male, "f3000", Median}: {7.2, -0.55, 0.0139},
	{Male, "f4000", Median}: {9.6, -0.63, 0.0171},
	{Male, "f6000", Median}: {11.0, -0.56, 0.0171},
	{Male, "f8000", Median}: {5.2, -0.47, 0.0179},

	{Male, "f500", P95}:  {18.2, -0.01, 0.0036},
	{Male, "f1000", P95}: {12.6, 0.03, 0.005},
	{Male, "f2000", P95}: {16.6, -0.11, 0.0107},
	{Male, "f3000", P95}: {-15.2, 1.48, -0.0036},
	{Male, "f4000", P95}: {-33.2, 2.76, -0.0164},
	{Male, "f6000", P95}: {-35.0, 3.01, -0.0171},
	{Male, "f8000", P95}: {-36.2, 2.92, -0.0157},

	{Female, "f500", Median}:  {5.2, -0.05, 0.0018},
	{Female, "f1000", Median}: {4.4, -0.06, 0.0025},
	{Female, "f2000", Median}: {1.8, -0.04, 0.0040},
	{Female, "f3000", Median}: {1.2, -0.03, 0.0055},
	{Female, "f4000", Median}: {0.8, 0.02, 0.0065},
	{Female, "f6000", Median}: {2.0, 0.05, 0.0085},
	{Female, "f8000", Median}: {-1.0, 0.15, 0.0110},

	{Female, "f500", P95}:  {12.0, 0.05, 0.0015},
	{Female, "f1000", P95}: {7.5, 0.15, 0.0035},
	// 2k/3k/4k adjusted so that 2k < 3k < 4k at every age.
	{Female, "f2000", P95}: {5.0, 0.05, 0.0085},
	{Female, "f3000", P95}: {6.0, 0.1, 0.0085},
	{Female, "f4000", P95}: {8.0, 0.15, 0.0085},
	{Female, "f6000", P95}: {-8.0, 1.4, -0.003},
	{Female, "f8000", P95}: {-10.0, 1.5, -0.002},

	{Male, Metric(PTA5123), Median}: {3.65, -0.053, 0.0044},
	{Male, Metric(PTA5123), P95}:    {4.55, 0.22, 0.0064},
	{Male, Metric(PTA234), Median}:  {6.2, -0.38, 0.0114},
	{Male, Metric(PTA234), P95}:     {-26.3, 2.06, -0.0096},

	{Female, Metric(PTA5123), Median}: {6.2, -0.22, 0.0053},
	{Female, Metric(PTA5123), P95}:    {11.5, 0.05, 0.0045},
	{Female, Metric(PTA234), Median}:  {3.5, -0.2, 0.0065},
	{Female, Metric(PTA234), P95}:     {5.0, 0.1, 0.01},
}

// Lookup returns the model for (sex, metric, tier). ok is false when no
// model is configured for that combination.
func Lookup(sex Sex, metric Metric, tier Tier) (Coefficients, bool) {
	c, ok := models[modelKey{sex, metric, tier}]
	return c, ok
}

// lookupPtr adapts Lookup to ApplyModel's nil-means-absent convention.
func lookupPtr(sex Sex, metric Metric, tier Tier) *Coefficients {
	c, ok := Lookup(sex, metric, tier)
	if !ok {
		return nil
	}
	return &c
}
