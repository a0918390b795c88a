package strength

import (
	"math"

	"github.com/nbutton23/zxcvbn-go"
)

// ZxcvbnScorer is the statistical Scorer, backed by the zxcvbn matching
// model. It recognizes dictionary words, keyboard walks, dates and l33t
// substitutions that the heuristic thresholds cannot see.
type ZxcvbnScorer struct{}

// NewZxcvbnScorer returns the statistical scorer.
func NewZxcvbnScorer() *ZxcvbnScorer {
	return &ZxcvbnScorer{}
}

// Score implements Scorer. userInputs are fed to the model as additional
// penalized dictionary entries.
func (s *ZxcvbnScorer) Score(password string, userInputs []string) ScoreResult {
	result := zxcvbn.PasswordStrength(password, userInputs)

	// The Go port exposes no feedback strings, so weak results get the same
	// synthesized suggestions as the fallback scorer.
	warning, suggestions := synthesizeFeedback(password, result.Score)

	return ScoreResult{
		Score:            result.Score,
		CrackTimeSeconds: math.Min(result.CrackTime, crackTimeCap),
		Warning:          warning,
		Suggestions:      suggestions,
	}
}
