package crypto

import "math"

// ShannonEntropy returns the Shannon entropy per character of s in bits,
// computed from the observed symbol frequencies. An empty or single-symbol
// string has zero entropy.
func ShannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}

	counts := make(map[rune]int)
	length := 0
	for _, r := range s {
		counts[r]++
		length++
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(length)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// TotalShannonEntropy returns the realized entropy of s in bits: per-character
// Shannon entropy scaled by length. This diverges from the theoretical charset
// entropy when per-class minimums bias the character distribution.
func TotalShannonEntropy(s string) float64 {
	n := 0
	for range s {
		n++
	}
	return ShannonEntropy(s) * float64(n)
}

// CharsetEntropy returns the theoretical entropy in bits of a string of the
// given length drawn uniformly from an alphabet of charsetSize distinct
// characters.
func CharsetEntropy(length, charsetSize int) float64 {
	if length <= 0 || charsetSize <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}
