package estimation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/RMahshie/arhl/internal/engine"
	"github.com/RMahshie/arhl/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Age range covered by the NHANES fits.
const (
	MinAge = 20
	MaxAge = 80
)

var (
	ErrInvalidAge       = errors.New("age must be a finite number")
	ErrInvalidThreshold = errors.New("threshold must be a finite number")
)

type EstimationService interface {
	Estimate(ctx context.Context, sex engine.Sex, age float64) (*models.Report, error)
	Compare(ctx context.Context, sex engine.Sex, age float64, thresholds engine.PatientThresholds) (*models.Report, error)
	Classify(ctx context.Context, db float64) (models.SeverityResult, error)
	Scale(ctx context.Context) []models.SeverityBand
}

type estimationService struct {
	now func() time.Time
}

func NewEstimationService() EstimationService {
	return &estimationService{now: time.Now}
}

// ClampAge pins age to [MinAge, MaxAge], the range of the age slider.
func ClampAge(age float64) float64 {
	return math.Min(MaxAge, math.Max(MinAge, age))
}

func (s *estimationService) Estimate(ctx context.Context, sex engine.Sex, age float64) (*models.Report, error) {
	return s.Compare(ctx, sex, age, nil)
}

func (s *estimationService) Compare(ctx context.Context, sex engine.Sex, age float64, thresholds engine.PatientThresholds) (*models.Report, error) {
	if sex != engine.Male && sex != engine.Female {
		return nil, fmt.Errorf("%w: %q", engine.ErrUnknownSex, sex)
	}
	if math.IsNaN(age) || math.IsInf(age, 0) {
		return nil, ErrInvalidAge
	}
	for f, v := range thresholds {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %d", engine.ErrUnknownFrequency, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %d Hz", ErrInvalidThreshold, f)
		}
	}

	clamped := ClampAge(age)
	if clamped != age {
		log.Debug().Float64("age", age).Float64("clamped", clamped).Msg("Age outside supported range, clamping")
	}

	report := &models.Report{
		ID:          uuid.NewString(),
		Sex:         string(sex),
		Age:         clamped,
		PatientData: len(thresholds) > 0,
		CreatedAt:   s.now(),
	}

	for _, idx := range engine.Indices() {
		report.Composites = append(report.Composites, compositeResult(sex, idx, clamped, thresholds))
	}
	for _, p := range engine.Audiogram(sex, clamped, thresholds) {
		report.Audiogram = append(report.Audiogram, audiogramPoint(p))
	}

	log.Debug().
		Str("reportID", report.ID).
		Str("sex", report.Sex).
		Float64("age", report.Age).
		Int("patientValues", len(thresholds)).
		Msg("Estimation computed")
	return report, nil
}

func (s *estimationService) Classify(ctx context.Context, db float64) (models.SeverityResult, error) {
	if math.IsNaN(db) || math.IsInf(db, 0) {
		return models.SeverityResult{}, ErrInvalidThreshold
	}
	sev := engine.ClassifySeverity(db)
	return models.SeverityResult{DB: db, Label: sev.String(), Rank: int(sev)}, nil
}

func (s *estimationService) Scale(ctx context.Context) []models.SeverityBand {
	bands := engine.SeverityScale()
	out := make([]models.SeverityBand, 0, len(bands))
	for _, b := range bands {
		band := models.SeverityBand{Label: b.Severity.String(), Rank: int(b.Severity), Range: b.Range}
		if b.Severity != engine.Profound {
			upper := b.Upper
			band.Upper = &upper
		}
		out = append(out, band)
	}
	return out
}

func compositeResult(sex engine.Sex, idx engine.Index, age float64, thresholds engine.PatientThresholds) models.CompositeResult {
	est := engine.CompositeEstimate(sex, idx, age)
	res := models.CompositeResult{
		Index:          string(idx),
		Title:          idx.Title(),
		Median:         est.Median,
		P95:            est.P95,
		MedianSeverity: engine.ClassifySeverity(est.Median).String(),
	}
	for _, f := range idx.Components() {
		res.Frequencies = append(res.Frequencies, int(f))
	}
	if v, ok := engine.PatientComposite(thresholds, idx); ok {
		label := engine.ClassifySeverity(v).String()
		res.Patient = &v
		res.PatientSeverity = &label
	}
	return res
}

func audiogramPoint(p engine.AudiogramPoint) models.AudiogramPoint {
	out := models.AudiogramPoint{
		Frequency:      int(p.Frequency),
		Label:          p.Frequency.Label(),
		Median:         p.Median,
		P95:            p.P95,
		MedianSeverity: engine.ClassifySeverity(p.Median).String(),
		Patient:        p.Patient,
	}
	if p.PatientSeverity != nil {
		label := p.PatientSeverity.String()
		out.PatientSeverity = &label
	}
	return out
}
