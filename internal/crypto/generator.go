package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	MinLength = 1
	MaxLength = 128

	// maxRegenerationAttempts bounds the regenerate-on-duplicate loop for
	// no-repeat policies with per-class minimums.
	maxRegenerationAttempts = 16
)

var (
	ErrLengthTooShort           = errors.New("password length must be at least 1")
	ErrLengthTooLong            = errors.New("password length must be at most 128")
	ErrNegativeMinimum          = errors.New("minimum character requirements must not be negative")
	ErrRequirementsExceedLength = errors.New("minimum character requirements exceed password length")
	ErrCharsetTooSmall          = errors.New("character set too small to generate without repeating characters")
	ErrMaxAttemptsExceeded      = errors.New("could not satisfy no-repeat constraint within attempt limit")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length        int
	Uppercase     bool
	Lowercase     bool
	Digits        bool
	Symbols       bool
	CustomSymbols string
	ExcludeChars  string
	NoRepeat      bool
	MinUppercase  int
	MinLowercase  int
	MinDigits     int
	MinSymbols    int
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

func (opts GeneratorOptions) totalMinimums() int {
	return opts.MinUppercase + opts.MinLowercase + opts.MinDigits + opts.MinSymbols
}

// Generate creates a cryptographically secure random password based on the
// given options. Every index and shuffle decision is driven by crypto/rand.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}
	for _, min := range []int{opts.MinUppercase, opts.MinLowercase, opts.MinDigits, opts.MinSymbols} {
		if min < 0 {
			return "", ErrNegativeMinimum
		}
	}
	if opts.totalMinimums() > opts.Length {
		return "", ErrRequirementsExceedLength
	}

	charset, err := BuildCharset(opts)
	if err != nil {
		return "", err
	}

	if opts.NoRepeat && charset.Size() < opts.Length {
		return "", ErrCharsetTooSmall
	}

	if opts.totalMinimums() == 0 {
		if opts.NoRepeat {
			return sampleWithoutReplacement(charset.Pool, opts.Length)
		}
		return randString(charset.Pool, opts.Length)
	}

	attempts := 1
	if opts.NoRepeat {
		attempts = maxRegenerationAttempts
	}

	// Per-class minimums with no-repeat: generate and validate, bounded.
	for ; attempts > 0; attempts-- {
		password, err := generateWithMinimums(opts, charset)
		if err != nil {
			return "", err
		}
		if !opts.NoRepeat || distinctChars(password) == len(password) {
			return password, nil
		}
	}

	return "", ErrMaxAttemptsExceeded
}

// GenerateMultiple generates count distinct passwords with the same options.
func GenerateMultiple(opts GeneratorOptions, count int) ([]string, error) {
	seen := make(map[string]struct{}, count)
	passwords := make([]string, 0, count)
	for len(passwords) < count {
		p, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

// generateWithMinimums draws the per-class minimums from each class
// sub-alphabet, fills the rest from the full pool, then applies a secure
// Fisher-Yates shuffle to remove the positional bias of that construction.
func generateWithMinimums(opts GeneratorOptions, charset Charset) (string, error) {
	result := make([]byte, 0, opts.Length)

	classes := []struct {
		min     int
		enabled bool
		chars   string
	}{
		{opts.MinUppercase, opts.Uppercase, charset.Upper},
		{opts.MinLowercase, opts.Lowercase, charset.Lower},
		{opts.MinDigits, opts.Digits, charset.Digits},
		{opts.MinSymbols, opts.Symbols, charset.Symbols},
	}

	for _, c := range classes {
		if c.min == 0 || !c.enabled {
			continue
		}
		if c.chars == "" {
			return "", ErrEmptyCharset
		}
		for i := 0; i < c.min; i++ {
			ch, err := randChar(c.chars)
			if err != nil {
				return "", err
			}
			result = append(result, ch)
		}
	}

	for len(result) < opts.Length {
		ch, err := randChar(charset.Pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// sampleWithoutReplacement draws length distinct characters from the pool by
// securely shuffling the deduplicated alphabet and taking a prefix.
func sampleWithoutReplacement(pool string, length int) (string, error) {
	seen := make(map[byte]struct{}, len(pool))
	distinct := make([]byte, 0, len(pool))
	for i := 0; i < len(pool); i++ {
		if _, ok := seen[pool[i]]; ok {
			continue
		}
		seen[pool[i]] = struct{}{}
		distinct = append(distinct, pool[i])
	}

	if err := secureShuffle(distinct); err != nil {
		return "", err
	}
	return string(distinct[:length]), nil
}

func randString(charset string, length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}

func distinctChars(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// IsValidationError reports whether err is a policy misconfiguration rather
// than a runtime failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrNegativeMinimum) ||
		errors.Is(err, ErrRequirementsExceedLength) ||
		errors.Is(err, ErrCharsetTooSmall) ||
		errors.Is(err, ErrEmptyCharset) ||
		errors.Is(err, ErrMaxAttemptsExceeded)
}
