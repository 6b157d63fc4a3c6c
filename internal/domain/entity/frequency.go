// Package entity defines the core business entities for the domain layer.
package entity

// Frequency represents how often a recurring charge repeats.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyBiannual  Frequency = "biannual"
	FrequencyAnnual    Frequency = "annual"
	FrequencyVariable  Frequency = "variable"
	FrequencyOneTime   Frequency = "one_time"
)

// Months returns the period length in months for the frequency.
// Unknown or non-periodic frequencies (variable, one_time) fall back to
// a one-month period so that totals stay defined for malformed records.
func (f Frequency) Months() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyBiannual:
		return 6
	case FrequencyAnnual:
		return 12
	default:
		return 1
	}
}

// IsPeriodic reports whether the frequency describes a repeating schedule.
func (f Frequency) IsPeriodic() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyBiannual, FrequencyAnnual:
		return true
	default:
		return false
	}
}
