package estimation

import (
	"fmt"
	"math"

	"github.com/RMahshie/arhl/internal/engine"
)

// ParseThresholds converts user-keyed readings ("500", "2k", "4000Hz") into
// engine thresholds. Nil values are treated as not entered. Duplicate keys
// for the same frequency ("2000" and "2k") are rejected.
func ParseThresholds(raw map[string]*float64) (engine.PatientThresholds, error) {
	out := make(engine.PatientThresholds, len(raw))
	for key, v := range raw {
		f, err := engine.ParseFrequency(key)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil, fmt.Errorf("%w: %s Hz", ErrInvalidThreshold, key)
		}
		if _, dup := out[f]; dup {
			return nil, fmt.Errorf("%w: duplicate reading for %d Hz", ErrInvalidThreshold, f)
		}
		out[f] = *v
	}
	return out, nil
}
