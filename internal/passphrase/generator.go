package passphrase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// appendSymbols is the fixed set a trailing symbol is drawn from (3 bits).
const appendSymbols = "!@#$%^&*"

const (
	MinWords = 1
	MaxWords = 20

	diceDigits = 5
)

var (
	ErrWordCountTooSmall = errors.New("word count must be at least 1")
	ErrWordCountTooLarge = errors.New("word count must be at most 20")
	ErrInvalidDiceInput  = errors.New("dice result must be exactly 5 digits in the range 1-6")
)

// Options configures passphrase generation.
type Options struct {
	WordCount  int
	List       ListKind
	Separator  string
	Capitalize bool
	AddNumber  bool
	AddSymbol  bool
}

// DefaultOptions returns six space-separated diceware words.
func DefaultOptions() Options {
	return Options{
		WordCount: 6,
		List:      ListDiceware,
		Separator: " ",
	}
}

// Generator draws words from a fixed wordlist using crypto/rand. It is safe
// for concurrent use; the wordlist is read-only after construction.
type Generator struct {
	opts Options
	list *Wordlist
}

// NewGenerator builds a generator over the given wordlist.
func NewGenerator(opts Options, list *Wordlist) (*Generator, error) {
	if opts.WordCount < MinWords {
		return nil, ErrWordCountTooSmall
	}
	if opts.WordCount > MaxWords {
		return nil, ErrWordCountTooLarge
	}
	return &Generator{opts: opts, list: list}, nil
}

// Wordlist exposes the list backing this generator.
func (g *Generator) Wordlist() *Wordlist {
	return g.list
}

// Generate produces a passphrase: WordCount uniform draws joined by the
// separator, optionally capitalized, optionally suffixed with a secure
// 4-digit number and/or one symbol from the fixed set.
func (g *Generator) Generate() (string, error) {
	words := make([]string, g.opts.WordCount)
	for i := range words {
		idx, err := randBelow(g.list.Size())
		if err != nil {
			return "", err
		}
		words[i] = g.formatWord(g.list.Words[idx])
	}

	passphrase := strings.Join(words, g.opts.Separator)

	if g.opts.AddNumber {
		n, err := randBelow(10000)
		if err != nil {
			return "", err
		}
		passphrase += g.opts.Separator + strconv.Itoa(n)
	}

	if g.opts.AddSymbol {
		i, err := randBelow(len(appendSymbols))
		if err != nil {
			return "", err
		}
		passphrase += string(appendSymbols[i])
	}

	return passphrase, nil
}

// Entropy returns the configured entropy of a generated passphrase in bits.
// Uniform draws make this exact, independent of which words were selected.
func (g *Generator) Entropy() float64 {
	entropy := float64(g.opts.WordCount) * g.list.BitsPerWord()
	if g.opts.AddNumber {
		entropy += math.Log2(10000)
	}
	if g.opts.AddSymbol {
		entropy += math.Log2(float64(len(appendSymbols)))
	}
	return entropy
}

// RollDice simulates one physical diceware roll: five secure d6 throws,
// rendered as a 5-digit string like "43521".
func (g *Generator) RollDice() (string, error) {
	var b strings.Builder
	for i := 0; i < diceDigits; i++ {
		n, err := randBelow(6)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('1' + n))
	}
	return b.String(), nil
}

// WordFromDice maps a 5-digit dice result onto a word deterministically:
// mixed-radix base-6 with digit 1 -> 0 .. digit 6 -> 5, so "11111" is index 0
// and "66666" is index 7775, taken modulo the list size.
func (g *Generator) WordFromDice(roll string) (string, error) {
	if len(roll) != diceDigits {
		return "", ErrInvalidDiceInput
	}
	index := 0
	for _, d := range roll {
		if d < '1' || d > '6' {
			return "", fmt.Errorf("%w: got %q", ErrInvalidDiceInput, string(d))
		}
		index = index*6 + int(d-'1')
	}
	return g.list.Words[index%g.list.Size()], nil
}

// GenerateWithDice generates a passphrase by simulating dice rolls, returning
// the rolls alongside so the result can be reproduced with physical dice.
func (g *Generator) GenerateWithDice() (string, []string, error) {
	rolls := make([]string, g.opts.WordCount)
	words := make([]string, g.opts.WordCount)

	for i := range words {
		roll, err := g.RollDice()
		if err != nil {
			return "", nil, err
		}
		word, err := g.WordFromDice(roll)
		if err != nil {
			return "", nil, err
		}
		rolls[i] = roll
		words[i] = g.formatWord(word)
	}

	return strings.Join(words, g.opts.Separator), rolls, nil
}

func (g *Generator) formatWord(word string) string {
	if !g.opts.Capitalize || word == "" {
		return word
	}
	r := []rune(word)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// randBelow returns a uniform int in [0, n) from crypto/rand. rand.Int
// rejection-samples internally, so the draw is not modulo-biased.
func randBelow(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
