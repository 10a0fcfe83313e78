// Package engine estimates age-related hearing thresholds from quadratic
// regression models and grades decibel values on the ASHA scale.
//
// Everything here is pure: no I/O, no logging, no mutable package state.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownSex       = errors.New("unknown sex")
	ErrUnknownIndex     = errors.New("unknown composite index")
	ErrUnknownFrequency = errors.New("unknown frequency")
)

// Sex selects the male or female regression family.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"female" (and "m"/"f"), case-insensitive.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// Frequency is an audiometric test frequency in Hz.
type Frequency int

const (
	F500  Frequency = 500
	F1000 Frequency = 1000
	F2000 Frequency = 2000
	F3000 Frequency = 3000
	F4000 Frequency = 4000
	F6000 Frequency = 6000
	F8000 Frequency = 8000
)

var frequencies = [...]Frequency{F500, F1000, F2000, F3000, F4000, F6000, F8000}

// Frequencies returns the tested frequencies in ascending order.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencies))
	copy(out, frequencies[:])
	return out
}

// Valid reports whether f is one of the seven tested frequencies.
func (f Frequency) Valid() bool {
	for _, v := range frequencies {
		if v == f {
			return true
		}
	}
	return false
}

// Label formats the frequency the way audiograms do: 500, 1k, 2k ...
func (f Frequency) Label() string {
	if f < 1000 {
		return strconv.Itoa(int(f))
	}
	return strconv.Itoa(int(f)/1000) + "k"
}

// ParseFrequency accepts "2000", "2000hz" or "2k".
func ParseFrequency(s string) (Frequency, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSuffix(v, "hz")
	mult := 1
	if strings.HasSuffix(v, "k") {
		mult = 1000
		v = strings.TrimSuffix(v, "k")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
	f := Frequency(n * mult)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
	return f, nil
}

// Index names a composite pure-tone average.
type Index string

const (
	// PTA5123 averages 500, 1000, 2000 and 3000 Hz (speech range).
	PTA5123 Index = "pta5123"
	// PTA234 averages 2000, 3000 and 4000 Hz (OSHA standard threshold shift).
	PTA234 Index = "pta234"
)

// Indices returns the supported composite indices.
func Indices() []Index {
	return []Index{PTA5123, PTA234}
}

// Components lists the frequencies an index averages over.
func (i Index) Components() []Frequency {
	switch i {
	case PTA5123:
		return []Frequency{F500, F1000, F2000, F3000}
	case PTA234:
		return []Frequency{F2000, F3000, F4000}
	}
	return nil
}

// Title is the display name used on reports.
func (i Index) Title() string {
	switch i {
	case PTA5123:
		return "PTA 5123 (Speech)"
	case PTA234:
		return "PTA 234 (OSHA STS)"
	}
	return string(i)
}

// ParseIndex accepts "pta5123", "PTA-5123", "5123" and the same for 234.
func ParseIndex(s string) (Index, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "", "_", "", " ", "").Replace(v)
	v = strings.TrimPrefix(v, "pta")
	switch v {
	case "5123":
		return PTA5123, nil
	case "234":
		return PTA234, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIndex, s)
}

// Tier selects the median or the 95th percentile curve.
type Tier int

const (
	Median Tier = iota
	P95
)

func (t Tier) String() string {
	if t == P95 {
		return "p95"
	}
	return "median"
}

// Estimate is the pair of population thresholds for one metric at one age.
type Estimate struct {
	Median float64
	P95    float64
}

// PatientThresholds maps a frequency to an entered dB HL reading. A missing
// key means the value was not entered.
type PatientThresholds map[Frequency]float64
