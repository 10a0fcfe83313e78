package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/arhl/internal/config"
	"github.com/RMahshie/arhl/internal/engine"
	"github.com/RMahshie/arhl/internal/estimation"
	"github.com/RMahshie/arhl/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// EstimationHandler handles estimation-related HTTP requests
type EstimationHandler struct {
	svc      estimation.EstimationService
	defaults config.DefaultsConfig
}

// NewEstimationHandler creates a new estimation handler
func NewEstimationHandler(svc estimation.EstimationService, defaults config.DefaultsConfig) *EstimationHandler {
	return &EstimationHandler{
		svc:      svc,
		defaults: defaults,
	}
}

// GetEstimates returns population estimates for a sex and age
func (h *EstimationHandler) GetEstimates(ctx context.Context, req *models.GetEstimatesRequest) (*models.GetEstimatesResponse, error) {
	sex, err := h.sexOrDefault(req.Sex)
	if err != nil {
		return nil, huma.Error400BadRequest("Unknown sex. Use male or female.", err)
	}

	age := req.Age
	if age == 0 {
		age = h.defaults.Age
	}

	report, err := h.svc.Estimate(ctx, sex, age)
	if err != nil {
		return nil, toHTTPError(err)
	}

	log.Info().Str("reportID", report.ID).Str("sex", report.Sex).Float64("age", report.Age).Msg("Returning population estimates")
	return &models.GetEstimatesResponse{Body: report}, nil
}

// Compare returns population estimates alongside the patient's audiogram
func (h *EstimationHandler) Compare(ctx context.Context, req *models.CompareRequest) (*models.CompareResponse, error) {
	sex, err := h.sexOrDefault(req.Body.Sex)
	if err != nil {
		return nil, huma.Error400BadRequest("Unknown sex. Use male or female.", err)
	}

	thresholds, err := estimation.ParseThresholds(req.Body.Thresholds)
	if err != nil {
		return nil, toHTTPError(err)
	}

	report, err := h.svc.Compare(ctx, sex, req.Body.Age, thresholds)
	if err != nil {
		return nil, toHTTPError(err)
	}

	log.Info().
		Str("reportID", report.ID).
		Str("sex", report.Sex).
		Float64("age", report.Age).
		Int("patientValues", len(thresholds)).
		Msg("Returning audiogram comparison")
	return &models.CompareResponse{Body: report}, nil
}

// Classify grades one threshold on the ASHA scale
func (h *EstimationHandler) Classify(ctx context.Context, req *models.ClassifyRequest) (*models.ClassifyResponse, error) {
	res, err := h.svc.Classify(ctx, req.DB)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &models.ClassifyResponse{Body: res}, nil
}

// GetSeverityScale returns the ASHA reference table
func (h *EstimationHandler) GetSeverityScale(ctx context.Context, _ *struct{}) (*models.SeverityScaleResponse, error) {
	resp := &models.SeverityScaleResponse{}
	resp.Body.Bands = h.svc.Scale(ctx)
	return resp, nil
}

func (h *EstimationHandler) sexOrDefault(s string) (engine.Sex, error) {
	if s == "" {
		return h.defaults.Sex, nil
	}
	return engine.ParseSex(s)
}

// toHTTPError maps service errors onto user-facing huma errors
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, engine.ErrUnknownSex):
		return huma.Error400BadRequest("Unknown sex. Use male or female.", err)
	case errors.Is(err, engine.ErrUnknownFrequency):
		return huma.Error400BadRequest("Unknown frequency. Use 500, 1000, 2000, 3000, 4000, 6000 or 8000.", err)
	case errors.Is(err, estimation.ErrInvalidThreshold):
		return huma.Error400BadRequest("Thresholds must be numbers in dB HL.", err)
	case errors.Is(err, estimation.ErrInvalidAge):
		return huma.Error400BadRequest("Age must be a number.", err)
	}
	log.Error().Err(err).Msg("Estimation failed")
	return huma.Error500InternalServerError("Estimation failed", err)
}
