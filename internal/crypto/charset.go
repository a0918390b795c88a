package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrEmptyCharset = errors.New("character set is empty, enable at least one character type")

// Charset is the concrete alphabet derived from a policy: the enabled
// character classes concatenated in class order, minus excluded characters.
type Charset struct {
	// Pool is the drawable alphabet. It may contain duplicates when a custom
	// symbol string overlaps another class; Size counts distinct characters.
	Pool string
	// Classes holds the per-class sub-alphabets that survived exclusion, in
	// class order, for enabled classes with a nonzero minimum.
	Upper   string
	Lower   string
	Digits  string
	Symbols string
}

// BuildCharset derives the alphabet for opts. It fails with ErrEmptyCharset
// when no class is enabled or exclusions remove every character.
func BuildCharset(opts GeneratorOptions) (Charset, error) {
	symbols := symbolChars
	if opts.CustomSymbols != "" {
		symbols = opts.CustomSymbols
	}

	cs := Charset{}
	if opts.Uppercase {
		cs.Upper = removeChars(uppercaseChars, opts.ExcludeChars)
	}
	if opts.Lowercase {
		cs.Lower = removeChars(lowercaseChars, opts.ExcludeChars)
	}
	if opts.Digits {
		cs.Digits = removeChars(digitChars, opts.ExcludeChars)
	}
	if opts.Symbols {
		cs.Symbols = removeChars(symbols, opts.ExcludeChars)
	}

	cs.Pool = cs.Upper + cs.Lower + cs.Digits + cs.Symbols
	if cs.Pool == "" {
		return Charset{}, ErrEmptyCharset
	}
	return cs, nil
}

// Size returns the number of distinct characters in the pool.
func (cs Charset) Size() int {
	seen := make(map[rune]struct{}, len(cs.Pool))
	for _, r := range cs.Pool {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func removeChars(charset, exclude string) string {
	if exclude == "" {
		return charset
	}
	var b strings.Builder
	for _, r := range charset {
		if !strings.ContainsRune(exclude, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
