package strength

import (
	"strings"
	"unicode"
)

// minRunLength is the shortest substring that counts as a sequential or
// repeating run.
const minRunLength = 3

// weakPatterns are case-insensitively matched as substrings.
var weakPatterns = []string{
	"qwerty", "asdfgh", "zxcvbn", "12345", "qazwsx",
	"!@#$%", "abcdef", "password", "admin",
}

// PatternAnalysis flags structural weaknesses in a password.
type PatternAnalysis struct {
	HasSequential   bool          `json:"has_sequential"`
	HasRepeating    bool          `json:"has_repeating"`
	KeyboardPattern bool          `json:"is_keyboard_pattern"`
	CharFrequency   CharFrequency `json:"char_frequency"`
}

// CharFrequency counts characters per class.
type CharFrequency struct {
	Uppercase int `json:"uppercase"`
	Lowercase int `json:"lowercase"`
	Digits    int `json:"digits"`
	Symbols   int `json:"symbols"`
}

// DetectPatterns runs all structural detectors over a password.
func DetectPatterns(password string) PatternAnalysis {
	return PatternAnalysis{
		HasSequential:   hasSequentialRun(password),
		HasRepeating:    hasRepeatingRun(password),
		KeyboardPattern: matchesWeakPattern(password),
		CharFrequency:   countClasses(password),
	}
}

// hasSequentialRun reports a run of minRunLength characters whose codes each
// increase by exactly one ("abc", "123").
func hasSequentialRun(password string) bool {
	runes := []rune(password)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 {
			run++
			if run >= minRunLength {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasRepeatingRun reports a run of minRunLength identical characters.
func hasRepeatingRun(password string) bool {
	runes := []rune(password)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= minRunLength {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func matchesWeakPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range weakPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func countClasses(password string) CharFrequency {
	var freq CharFrequency
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			freq.Uppercase++
		case unicode.IsLower(r):
			freq.Lowercase++
		case unicode.IsDigit(r):
			freq.Digits++
		default:
			freq.Symbols++
		}
	}
	return freq
}
