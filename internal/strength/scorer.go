package strength

// Scorer assigns an ordinal 0-4 strength score and a base crack-time estimate
// (offline slow hashing) to a password. userInputs carries user-specific
// strings (name, email, ...) that weaken any password containing them.
//
// Two implementations exist: the zxcvbn-backed statistical scorer and the
// deterministic heuristic fallback. Callers are agnostic to which is active.
type Scorer interface {
	Score(password string, userInputs []string) ScoreResult
}

// ScoreResult is the scorer's contribution to a Report.
type ScoreResult struct {
	Score            int
	CrackTimeSeconds float64
	Warning          string
	Suggestions      []string
}

var scoreLabels = map[int]string{
	0: "Very Weak",
	1: "Weak",
	2: "Fair",
	3: "Strong",
	4: "Very Strong",
}

// ScoreLabel maps an ordinal score to its human-readable label.
func ScoreLabel(score int) string {
	if label, ok := scoreLabels[score]; ok {
		return label
	}
	return "Unknown"
}
