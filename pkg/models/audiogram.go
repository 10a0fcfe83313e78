package models

// AudiogramPoint represents one tested frequency on the comparison audiogram
type AudiogramPoint struct {
	Frequency       int      `json:"frequency" doc:"Frequency in Hz"`
	Label           string   `json:"label" example:"2k" doc:"Short frequency label"`
	Median          float64  `json:"median" doc:"Population median threshold in dB HL"`
	P95             float64  `json:"p95" doc:"Population 95th percentile threshold in dB HL"`
	MedianSeverity  string   `json:"median_severity" doc:"ASHA band of the median"`
	Patient         *float64 `json:"patient,omitempty" doc:"Patient threshold in dB HL, if entered"`
	PatientSeverity *string  `json:"patient_severity,omitempty" doc:"ASHA band of the patient threshold"`
}

// CompositeResult represents a pure-tone average for one composite index
type CompositeResult struct {
	Index           string   `json:"index" enum:"pta5123,pta234" doc:"Composite index identifier"`
	Title           string   `json:"title" doc:"Display name"`
	Frequencies     []int    `json:"frequencies" doc:"Frequencies averaged by the index"`
	Median          float64  `json:"median" doc:"Population median in dB HL"`
	P95             float64  `json:"p95" doc:"Population 95th percentile in dB HL"`
	MedianSeverity  string   `json:"median_severity" doc:"ASHA band of the median"`
	Patient         *float64 `json:"patient,omitempty" doc:"Patient average, present only when every component frequency was entered"`
	PatientSeverity *string  `json:"patient_severity,omitempty" doc:"ASHA band of the patient average"`
}

// SeverityBand represents one row of the ASHA degree of hearing loss scale
type SeverityBand struct {
	Label string   `json:"label" example:"Mild" doc:"Band name"`
	Rank  int      `json:"rank" minimum:"0" maximum:"6" doc:"0 for Normal up to 6 for Profound"`
	Range string   `json:"range" example:"26-40" doc:"Display range in dB HL"`
	Upper *float64 `json:"upper,omitempty" doc:"Inclusive upper bound in dB HL; absent for Profound"`
}
