package strength

import "github.com/quantumlock/quantumlock-go/internal/crypto"

// Report is the full strength assessment of a single password.
type Report struct {
	PasswordLength     int             `json:"password_length"`
	Score              int             `json:"score"`
	ScoreLabel         string          `json:"score_label"`
	ShannonEntropy     float64         `json:"shannon_entropy"`
	CharsetEntropy     float64         `json:"charset_entropy"`
	CrackTimeSeconds   float64         `json:"crack_time_seconds"`
	CrackTimeDisplay   string          `json:"crack_time_display"`
	CrackTimeScenarios Scenarios       `json:"crack_time_scenarios"`
	Feedback           Feedback        `json:"feedback"`
	Patterns           PatternAnalysis `json:"pattern_analysis"`
}

// Feedback carries a warning and improvement suggestions.
type Feedback struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}

// Analyzer combines a Scorer with entropy calculation and pattern detection.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer returns an analyzer backed by the statistical scorer.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithScorer(NewZxcvbnScorer())
}

// NewAnalyzerWithScorer returns an analyzer with an explicit scorer, for
// callers that want the deterministic fallback (or a test double).
func NewAnalyzerWithScorer(scorer Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze produces a Report for password. userInputs optionally carries
// user-specific strings penalized by the scorer.
func (a *Analyzer) Analyze(password string, userInputs []string) Report {
	if password == "" {
		return Report{
			ScoreLabel:         ScoreLabel(0),
			CrackTimeDisplay:   FormatCrackTime(0),
			CrackTimeScenarios: CrackScenarios(0),
			Feedback:           Feedback{Warning: "Password is empty"},
		}
	}

	scored := a.scorer.Score(password, userInputs)
	length := len([]rune(password))

	return Report{
		PasswordLength:     length,
		Score:              scored.Score,
		ScoreLabel:         ScoreLabel(scored.Score),
		ShannonEntropy:     crypto.ShannonEntropy(password),
		CharsetEntropy:     crypto.CharsetEntropy(length, inferCharsetSize(password)),
		CrackTimeSeconds:   scored.CrackTimeSeconds,
		CrackTimeDisplay:   FormatCrackTime(scored.CrackTimeSeconds),
		CrackTimeScenarios: CrackScenarios(scored.CrackTimeSeconds),
		Feedback: Feedback{
			Warning:     scored.Warning,
			Suggestions: scored.Suggestions,
		},
		Patterns: DetectPatterns(password),
	}
}
