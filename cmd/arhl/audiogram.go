package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RMahshie/arhl/internal/engine"
)

// audiogramFile is the YAML input for the compare command:
//
//	sex: female
//	age: 62
//	thresholds:
//	  500: 10
//	  1k: 15
//	  4000: ~   # not tested
type audiogramFile struct {
	Sex        string              `yaml:"sex"`
	Age        *float64            `yaml:"age"`
	Thresholds map[string]*float64 `yaml:"thresholds"`
}

func loadAudiogram(path string) (*audiogramFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a audiogramFile
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &a, nil
}

// mergeThresholds overlays FREQ=DB flag values onto the file's thresholds.
// An empty DB clears the frequency.
func mergeThresholds(base map[string]*float64, overrides map[string]string) (map[string]*float64, error) {
	out := make(map[string]*float64, len(base)+len(overrides))
	for k, v := range base {
		key := normalizeKey(k)
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("frequency %s listed twice", k)
		}
		out[key] = v
	}
	for k, raw := range overrides {
		key := normalizeKey(k)
		raw = strings.TrimSpace(raw)
		if raw == "" {
			out[key] = nil
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("threshold %s=%q is not a number", k, raw)
		}
		out[key] = &v
	}
	return out, nil
}

// normalizeKey folds "2k", "2000Hz" and "2000" onto one key so a flag
// replaces the file entry instead of duplicating it. Unknown keys are kept
// as given and rejected later.
func normalizeKey(k string) string {
	f, err := engine.ParseFrequency(k)
	if err != nil {
		return k
	}
	return strconv.Itoa(int(f))
}
