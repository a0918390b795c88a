package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCrackTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"sub-second is instant", 0.5, "Instant"},
		{"zero is instant", 0, "Instant"},
		{"seconds", 45, "45 seconds"},
		{"minutes", 90, "1 minutes"},
		{"hours", 7200, "2 hours"},
		{"days", 3 * 86400, "3 days"},
		{"months", 40 * 86400, "1 months"},
		{"years", 200000000, "6 years"},
		{"thousand years", 2000 * 31536000.0, "2.0 thousand years"},
		{"million years", 3e6 * 31536000.0, "3.0 million years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCrackTime(tt.seconds))
		})
	}
}

func TestCrackScenarios(t *testing.T) {
	s := CrackScenarios(10)

	assert.Equal(t, "16 minutes", s.OnlineThrottled)  // x100 = 1000s
	assert.Equal(t, "1 minutes", s.OnlineUnthrottled) // x10 = 100s
	assert.Equal(t, "10 seconds", s.OfflineSlow)      // x1
	assert.Equal(t, "Instant", s.OfflineFast)         // /100 = 0.1s
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "Very Weak", ScoreLabel(0))
	assert.Equal(t, "Weak", ScoreLabel(1))
	assert.Equal(t, "Fair", ScoreLabel(2))
	assert.Equal(t, "Strong", ScoreLabel(3))
	assert.Equal(t, "Very Strong", ScoreLabel(4))
	assert.Equal(t, "Unknown", ScoreLabel(7))
}
