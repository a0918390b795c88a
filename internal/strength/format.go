package strength

import "fmt"

// Scenario multipliers relative to the base offline-slow estimate.
const (
	onlineThrottledFactor   = 100
	onlineUnthrottledFactor = 10
	offlineFastDivisor      = 100
)

// Scenarios renders the crack-time projection for four standard attacker
// speeds.
type Scenarios struct {
	OnlineThrottled   string `json:"online_throttled"`
	OnlineUnthrottled string `json:"online_unthrottled"`
	OfflineSlow       string `json:"offline_slow"`
	OfflineFast       string `json:"offline_fast"`
}

// CrackScenarios projects the base offline-slow estimate across scenarios.
func CrackScenarios(baseSeconds float64) Scenarios {
	return Scenarios{
		OnlineThrottled:   FormatCrackTime(baseSeconds * onlineThrottledFactor),
		OnlineUnthrottled: FormatCrackTime(baseSeconds * onlineUnthrottledFactor),
		OfflineSlow:       FormatCrackTime(baseSeconds),
		OfflineFast:       FormatCrackTime(baseSeconds / offlineFastDivisor),
	}
}

// FormatCrackTime renders a duration in seconds at fixed breakpoints, with
// thousand/million-year compaction at the top end.
func FormatCrackTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "Instant"
	case seconds < 60:
		return fmt.Sprintf("%d seconds", int64(seconds))
	case seconds < 3600:
		return fmt.Sprintf("%d minutes", int64(seconds/60))
	case seconds < 86400:
		return fmt.Sprintf("%d hours", int64(seconds/3600))
	case seconds < 2592000: // 30 days
		return fmt.Sprintf("%d days", int64(seconds/86400))
	case seconds < 31536000: // 365 days
		return fmt.Sprintf("%d months", int64(seconds/2592000))
	}

	years := seconds / 31536000
	switch {
	case years > 1e6:
		return fmt.Sprintf("%.1f million years", years/1e6)
	case years > 1000:
		return fmt.Sprintf("%.1f thousand years", years/1000)
	default:
		return fmt.Sprintf("%d years", int64(years))
	}
}
