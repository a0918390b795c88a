package strength

import (
	"math"
	"strings"
	"unicode"

	"github.com/quantumlock/quantumlock-go/internal/crypto"
)

// heuristicHashesPerSecond models an offline attack against a slow hash,
// matching the offline-slow scenario the scorer contract is defined against.
const heuristicHashesPerSecond = 10000

// crackTimeCap keeps astronomically large estimates finite for formatting.
const crackTimeCap = 1e100

// HeuristicScorer is the deterministic fallback Scorer: a fixed
// length/entropy threshold table plus a brute-force crack-time model. It has
// no notion of dictionaries or patterns beyond what the thresholds imply.
type HeuristicScorer struct{}

// NewHeuristicScorer returns the fallback scorer.
func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

// Score implements Scorer.
func (s *HeuristicScorer) Score(password string, userInputs []string) ScoreResult {
	entropy := crypto.ShannonEntropy(password)
	length := len([]rune(password))

	var score int
	switch {
	case length < 8 || entropy < 2.5:
		score = 0
	case length < 10 || entropy < 3.0:
		score = 1
	case length < 14 || entropy < 3.5:
		score = 2
	case length < 18 || entropy < 4.0:
		score = 3
	default:
		score = 4
	}

	// A password containing the user's own data is guessable regardless of
	// what the thresholds say.
	if score > 0 && containsUserInput(password, userInputs) {
		score--
	}

	warning, suggestions := synthesizeFeedback(password, score)

	return ScoreResult{
		Score:            score,
		CrackTimeSeconds: estimateCrackTime(password),
		Warning:          warning,
		Suggestions:      suggestions,
	}
}

// estimateCrackTime models exhausting half the search space of the inferred
// character set at heuristicHashesPerSecond, capped at crackTimeCap.
func estimateCrackTime(password string) float64 {
	size := inferCharsetSize(password)
	if size == 0 {
		size = 26
	}
	combinations := math.Pow(float64(size), float64(len([]rune(password))))
	seconds := (combinations / 2) / heuristicHashesPerSecond
	return math.Min(seconds, crackTimeCap)
}

// inferCharsetSize estimates the alphabet a password was drawn from by the
// character classes it contains.
func inferCharsetSize(password string) int {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	size := 0
	if hasLower {
		size += 26
	}
	if hasUpper {
		size += 26
	}
	if hasDigit {
		size += 10
	}
	if hasSymbol {
		size += 32
	}
	return size
}

// synthesizeFeedback produces suggestions for weak-to-fair passwords and a
// warning below score 2.
func synthesizeFeedback(password string, score int) (string, []string) {
	if score >= 3 {
		return "", nil
	}

	var suggestions []string
	if len([]rune(password)) < 12 {
		suggestions = append(suggestions, "Use at least 12 characters")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		suggestions = append(suggestions, "Add uppercase letters")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		suggestions = append(suggestions, "Add lowercase letters")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		suggestions = append(suggestions, "Add numbers")
	}
	if !strings.ContainsFunc(password, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		suggestions = append(suggestions, "Add symbols")
	}

	var warning string
	if score < 2 {
		warning = "This password is too weak"
	}
	return warning, suggestions
}

func containsUserInput(password string, userInputs []string) bool {
	lower := strings.ToLower(password)
	for _, input := range userInputs {
		input = strings.ToLower(strings.TrimSpace(input))
		if input != "" && strings.Contains(lower, input) {
			return true
		}
	}
	return false
}
