package service

import (
	"errors"
	"log/slog"

	"github.com/quantumlock/quantumlock-go/internal/crypto"
	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/passphrase"
)

// MaxBatchCount caps multi-password generation per request.
const MaxBatchCount = 100

var (
	ErrCountTooLarge = errors.New("count must be at most 100")
	ErrCountNegative = errors.New("count must be at least 1")
)

// GeneratorService handles password and passphrase generation business logic.
// Wordlists are loaded once at construction and only read afterwards.
type GeneratorService struct {
	defaultLength int
	defaultWords  int
	wordlists     map[passphrase.ListKind]*passphrase.Wordlist
}

// NewGeneratorService loads the wordlists from wordlistDir and returns the
// service. A missing list file is logged and served from the built-in
// fallback list, flagged on every response that uses it.
func NewGeneratorService(wordlistDir string, defaultLength, defaultWords int) (*GeneratorService, error) {
	wordlists := make(map[passphrase.ListKind]*passphrase.Wordlist, 2)
	for _, kind := range []passphrase.ListKind{passphrase.ListDiceware, passphrase.ListBIP39} {
		list, err := passphrase.LoadWordlist(wordlistDir, kind)
		if err != nil {
			return nil, err
		}
		if list.Fallback {
			slog.Warn("canonical wordlist unavailable, using built-in fallback",
				"wordlist", kind, "words", list.Size())
		}
		wordlists[kind] = list
	}

	return &GeneratorService{
		defaultLength: defaultLength,
		defaultWords:  defaultWords,
		wordlists:     wordlists,
	}, nil
}

// GeneratePassword produces one or more passwords based on the given request.
func (s *GeneratorService) GeneratePassword(req model.PasswordGenerateRequest) (model.PasswordGenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:        req.Length,
		Uppercase:     boolOrDefault(req.Uppercase, true),
		Lowercase:     boolOrDefault(req.Lowercase, true),
		Digits:        boolOrDefault(req.Digits, true),
		Symbols:       boolOrDefault(req.Symbols, true),
		CustomSymbols: req.CustomSymbols,
		ExcludeChars:  req.ExcludeChars,
		NoRepeat:      req.NoRepeat,
		MinUppercase:  req.MinUppercase,
		MinLowercase:  req.MinLowercase,
		MinDigits:     req.MinDigits,
		MinSymbols:    req.MinSymbols,
	}

	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	count := req.Count
	switch {
	case count < 0:
		return model.PasswordGenerateResponse{}, ErrCountNegative
	case count == 0:
		count = 1
	case count > MaxBatchCount:
		return model.PasswordGenerateResponse{}, ErrCountTooLarge
	}

	passwords, err := crypto.GenerateMultiple(opts, count)
	if err != nil {
		return model.PasswordGenerateResponse{}, err
	}

	charset, err := crypto.BuildCharset(opts)
	if err != nil {
		return model.PasswordGenerateResponse{}, err
	}
	size := charset.Size()

	resp := model.PasswordGenerateResponse{
		Password:           passwords[0],
		Length:             len(passwords[0]),
		EntropyBits:        crypto.TotalShannonEntropy(passwords[0]),
		CharsetEntropyBits: crypto.CharsetEntropy(opts.Length, size),
		CharsetSize:        size,
	}
	if count > 1 {
		resp.Passwords = passwords
	}
	return resp, nil
}

// GeneratePassphrase produces a passphrase based on the given request.
func (s *GeneratorService) GeneratePassphrase(req model.PassphraseGenerateRequest) (model.PassphraseGenerateResponse, error) {
	kind := passphrase.ListKind(req.Wordlist)
	if req.Wordlist == "" {
		kind = passphrase.ListDiceware
	}
	list, ok := s.wordlists[kind]
	if !ok {
		return model.PassphraseGenerateResponse{}, passphrase.ErrUnknownWordlist
	}

	opts := passphrase.Options{
		WordCount:  req.WordCount,
		List:       kind,
		Separator:  stringOrDefault(req.Separator, " "),
		Capitalize: req.Capitalize,
		AddNumber:  req.AddNumber,
		AddSymbol:  req.AddSymbol,
	}
	if opts.WordCount == 0 {
		opts.WordCount = s.defaultWords
	}

	gen, err := passphrase.NewGenerator(opts, list)
	if err != nil {
		return model.PassphraseGenerateResponse{}, err
	}

	resp := model.PassphraseGenerateResponse{
		WordCount:        opts.WordCount,
		EntropyBits:      gen.Entropy(),
		Wordlist:         string(kind),
		WordlistFallback: list.Fallback,
	}

	if req.WithDice {
		phrase, rolls, err := gen.GenerateWithDice()
		if err != nil {
			return model.PassphraseGenerateResponse{}, err
		}
		resp.Passphrase = phrase
		resp.DiceRolls = rolls
		return resp, nil
	}

	phrase, err := gen.Generate()
	if err != nil {
		return model.PassphraseGenerateResponse{}, err
	}
	resp.Passphrase = phrase
	return resp, nil
}

// WordFromDice resolves a deterministic 5-digit dice roll against a wordlist.
func (s *GeneratorService) WordFromDice(wordlist, roll string) (string, error) {
	kind := passphrase.ListKind(wordlist)
	if wordlist == "" {
		kind = passphrase.ListDiceware
	}
	list, ok := s.wordlists[kind]
	if !ok {
		return "", passphrase.ErrUnknownWordlist
	}
	gen, err := passphrase.NewGenerator(passphrase.Options{WordCount: 1, List: kind}, list)
	if err != nil {
		return "", err
	}
	return gen.WordFromDice(roll)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// stringOrDefault returns the dereferenced pointer value, or the fallback if nil.
func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
