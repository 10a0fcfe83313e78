package api

import (
	"net/http"

	"github.com/RMahshie/arhl/internal/api/handlers"
	"github.com/RMahshie/arhl/internal/config"
	"github.com/RMahshie/arhl/internal/estimation"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, svc estimation.EstimationService, defaults config.DefaultsConfig) {
	// Initialize handlers
	estimationHandler := handlers.NewEstimationHandler(svc, defaults)

	huma.Register(api, huma.Operation{
		OperationID: "getEstimates",
		Method:      http.MethodGet,
		Path:        "/api/estimates",
		Summary:     "Get population estimates",
		Description: "Returns median and 95th percentile thresholds for every test frequency and both composite indices",
		Tags:        []string{"Estimation"},
	}, estimationHandler.GetEstimates)

	huma.Register(api, huma.Operation{
		OperationID: "compareAudiogram",
		Method:      http.MethodPost,
		Path:        "/api/comparisons",
		Summary:     "Compare a patient audiogram",
		Description: "Returns population estimates alongside the patient's thresholds, pure-tone averages and ASHA bands",
		Tags:        []string{"Estimation"},
	}, estimationHandler.Compare)

	huma.Register(api, huma.Operation{
		OperationID: "classifyThreshold",
		Method:      http.MethodGet,
		Path:        "/api/severity",
		Summary:     "Classify a threshold",
		Description: "Grades a dB HL value on the ASHA degree of hearing loss scale",
		Tags:        []string{"Severity"},
	}, estimationHandler.Classify)

	huma.Register(api, huma.Operation{
		OperationID: "getSeverityScale",
		Method:      http.MethodGet,
		Path:        "/api/severity/scale",
		Summary:     "Get the ASHA scale",
		Description: "Returns the degree of hearing loss bands from Normal to Profound",
		Tags:        []string{"Severity"},
	}, estimationHandler.GetSeverityScale)
}
