package engine

// Severity is a degree of hearing loss on the ASHA scale. The zero value is
// Normal and values increase with severity.
type Severity int

const (
	Normal Severity = iota
	Slight
	Mild
	Moderate
	ModSevere
	Severe
	Profound
)

var severityNames = [...]string{"Normal", "Slight", "Mild", "Moderate", "Mod-Severe", "Severe", "Profound"}

func (s Severity) String() string {
	if s < Normal || s > Profound {
		return "Unknown"
	}
	return severityNames[s]
}

// Band is one row of the ASHA reference table.
type Band struct {
	Severity Severity
	// Upper is the inclusive upper bound in dB HL; zero for Profound,
	// which is unbounded.
	Upper float64
	// Range is the display range, e.g. "16-25".
	Range string
}

var scale = [...]Band{
	{Normal, 15, "0-15"},
	{Slight, 25, "16-25"},
	{Mild, 40, "26-40"},
	{Moderate, 55, "41-55"},
	{ModSevere, 70, "56-70"},
	{Severe, 90, "71-90"},
	{Profound, 0, "91+"},
}

// ClassifySeverity grades a dB HL value. Bounds are inclusive: 15 is Normal,
// 15.5 is Slight. Anything at or below 15, negatives included, is Normal and
// anything above 90 is Profound.
func ClassifySeverity(db float64) Severity {
	for _, b := range scale[:len(scale)-1] {
		if db <= b.Upper {
			return b.Severity
		}
	}
	return Profound
}

// SeverityScale returns the ASHA reference table from Normal to Profound.
func SeverityScale() []Band {
	out := make([]Band, len(scale))
	copy(out, scale[:])
	return out
}
