package estimation

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/RMahshie/arhl/internal/engine"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *estimationService {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &estimationService{now: func() time.Time { return fixed }}
}

func TestClampAge(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{5, 20},
		{20, 20},
		{50, 50},
		{62.5, 62.5},
		{80, 80},
		{95, 80},
		{-3, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampAge(tt.in), "age %v", tt.in)
	}
}

func TestEstimate(t *testing.T) {
	svc := newTestService()

	report, err := svc.Estimate(context.Background(), engine.Male, 50)
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, "male", report.Sex)
	assert.Equal(t, 50.0, report.Age)
	assert.False(t, report.PatientData)
	assert.Equal(t, 2025, report.CreatedAt.Year())

	require.Len(t, report.Composites, 2)
	assert.Equal(t, "pta5123", report.Composites[0].Index)
	assert.Equal(t, []int{500, 1000, 2000, 3000}, report.Composites[0].Frequencies)
	assert.Equal(t, "pta234", report.Composites[1].Index)
	for _, c := range report.Composites {
		assert.Nil(t, c.Patient)
		assert.Nil(t, c.PatientSeverity)
	}

	require.Len(t, report.Audiogram, 7)
	first := report.Audiogram[0]
	assert.Equal(t, 500, first.Frequency)
	assert.Equal(t, "500", first.Label)
	assert.InDelta(t, 9.8, first.Median, 1e-9)
	assert.InDelta(t, 26.7, first.P95, 1e-9)
	assert.Equal(t, "Normal", first.MedianSeverity)
	assert.Nil(t, first.Patient)
	assert.Equal(t, "8k", report.Audiogram[6].Label)
}

func TestEstimate_ClampsAge(t *testing.T) {
	svc := newTestService()

	low, err := svc.Estimate(context.Background(), engine.Female, 3)
	require.NoError(t, err)
	assert.Equal(t, 20.0, low.Age)

	at20, err := svc.Estimate(context.Background(), engine.Female, 20)
	require.NoError(t, err)
	assert.Equal(t, at20.Audiogram, low.Audiogram)

	high, err := svc.Estimate(context.Background(), engine.Female, 104)
	require.NoError(t, err)
	assert.Equal(t, 80.0, high.Age)
}

func TestEstimate_Errors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Estimate(context.Background(), engine.Sex("x"), 50)
	assert.ErrorIs(t, err, engine.ErrUnknownSex)

	_, err = svc.Estimate(context.Background(), engine.Male, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestCompare(t *testing.T) {
	svc := newTestService()
	thresholds := engine.PatientThresholds{
		engine.F500: 10, engine.F1000: 20, engine.F2000: 30, engine.F3000: 40, engine.F8000: 95,
	}

	report, err := svc.Compare(context.Background(), engine.Male, 60, thresholds)
	require.NoError(t, err)
	assert.True(t, report.PatientData)

	pta5123 := report.Composites[0]
	require.NotNil(t, pta5123.Patient)
	assert.InDelta(t, 25.0, *pta5123.Patient, 1e-9)
	require.NotNil(t, pta5123.PatientSeverity)
	assert.Equal(t, "Slight", *pta5123.PatientSeverity)

	// 4000 Hz missing
	pta234 := report.Composites[1]
	assert.Nil(t, pta234.Patient)
	assert.Nil(t, pta234.PatientSeverity)

	byFreq := map[int]int{}
	for i, p := range report.Audiogram {
		byFreq[p.Frequency] = i
	}
	p8k := report.Audiogram[byFreq[8000]]
	require.NotNil(t, p8k.Patient)
	assert.Equal(t, 95.0, *p8k.Patient)
	assert.Equal(t, "Profound", *p8k.PatientSeverity)
	assert.Nil(t, report.Audiogram[byFreq[4000]].Patient)
}

func TestCompare_InvalidThresholds(t *testing.T) {
	svc := newTestService()

	_, err := svc.Compare(context.Background(), engine.Male, 60, engine.PatientThresholds{engine.F500: math.Inf(1)})
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = svc.Compare(context.Background(), engine.Male, 60, engine.PatientThresholds{engine.Frequency(250): 10})
	assert.ErrorIs(t, err, engine.ErrUnknownFrequency)
}

func TestCompare_UniqueIDs(t *testing.T) {
	svc := newTestService()
	a, err := svc.Estimate(context.Background(), engine.Male, 50)
	require.NoError(t, err)
	b, err := svc.Estimate(context.Background(), engine.Male, 50)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestClassify(t *testing.T) {
	svc := newTestService()

	res, err := svc.Classify(context.Background(), 41)
	require.NoError(t, err)
	assert.Equal(t, "Moderate", res.Label)
	assert.Equal(t, 3, res.Rank)
	assert.Equal(t, 41.0, res.DB)

	_, err = svc.Classify(context.Background(), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestScale(t *testing.T) {
	bands := NewEstimationService().Scale(context.Background())
	require.Len(t, bands, 7)

	assert.Equal(t, "Normal", bands[0].Label)
	require.NotNil(t, bands[0].Upper)
	assert.Equal(t, 15.0, *bands[0].Upper)
	assert.Equal(t, "Profound", bands[6].Label)
	assert.Nil(t, bands[6].Upper)
	assert.Equal(t, "91+", bands[6].Range)
}

func TestParseThresholds(t *testing.T) {
	ten, twenty := 10.0, 20.0

	got, err := ParseThresholds(map[string]*float64{"500": &ten, "2k": &twenty, "4000": nil})
	require.NoError(t, err)
	assert.Equal(t, engine.PatientThresholds{engine.F500: 10, engine.F2000: 20}, got)

	_, err = ParseThresholds(map[string]*float64{"250": &ten})
	assert.ErrorIs(t, err, engine.ErrUnknownFrequency)

	nan := math.NaN()
	_, err = ParseThresholds(map[string]*float64{"500": &nan})
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = ParseThresholds(map[string]*float64{"2000": &ten, "2k": &twenty})
	assert.Error(t, err)

	got, err = ParseThresholds(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
