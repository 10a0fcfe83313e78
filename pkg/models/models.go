package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// Report is the full estimation for one sex and age, optionally compared
// against a patient's audiogram
type Report struct {
	ID          string            `json:"id" doc:"Report identifier"`
	Sex         string            `json:"sex" enum:"male,female" doc:"Regression family used"`
	Age         float64           `json:"age" minimum:"20" maximum:"80" doc:"Age after clamping to the supported range"`
	Composites  []CompositeResult `json:"composites" doc:"PTA 5123 and PTA 234 estimates"`
	Audiogram   []AudiogramPoint  `json:"audiogram" doc:"Per-frequency estimates in ascending frequency order"`
	PatientData bool              `json:"patient_data" doc:"Whether any patient thresholds were supplied"`
	CreatedAt   time.Time         `json:"created_at" doc:"When the report was computed"`
}

// GetEstimatesRequest represents a request for population estimates
type GetEstimatesRequest struct {
	Sex string  `query:"sex" enum:"male,female" doc:"Patient sex; defaults to the configured default"`
	Age float64 `query:"age" doc:"Patient age in years; clamped to 20-80, defaults to the configured default when omitted"`
}

// GetEstimatesResponse represents population estimates without patient data
type GetEstimatesResponse struct {
	Body *Report
}

// CompareRequestBody is the body of a comparison request
type CompareRequestBody struct {
	Sex        string              `json:"sex" enum:"male,female" required:"true" doc:"Patient sex"`
	Age        float64             `json:"age" required:"true" doc:"Patient age in years; clamped to 20-80"`
	Thresholds map[string]*float64 `json:"thresholds" required:"false" doc:"Patient thresholds in dB HL keyed by frequency (500, 1000, 2k ...). Null or missing means not entered"`
}

// CompareRequest represents a request to compare a patient audiogram with population norms
type CompareRequest struct {
	Body CompareRequestBody
}

// CompareResponse represents the comparison report
type CompareResponse struct {
	Body *Report
}

// ClassifyRequest represents a request to grade one threshold
type ClassifyRequest struct {
	DB float64 `query:"db" required:"true" doc:"Threshold in dB HL"`
}

// SeverityResult is the ASHA band for one value
type SeverityResult struct {
	DB    float64 `json:"db" doc:"Threshold in dB HL"`
	Label string  `json:"label" example:"Moderate" doc:"ASHA band"`
	Rank  int     `json:"rank" minimum:"0" maximum:"6" doc:"0 for Normal up to 6 for Profound"`
}

// ClassifyResponse represents the graded threshold
type ClassifyResponse struct {
	Body SeverityResult
}

// SeverityScaleResponse represents the ASHA reference table
type SeverityScaleResponse struct {
	Body struct {
		Bands []SeverityBand `json:"bands" doc:"Bands from Normal to Profound"`
	}
}
