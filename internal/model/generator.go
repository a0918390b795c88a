package model

// PasswordGenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type PasswordGenerateRequest struct {
	Length        int    `json:"length"`
	Uppercase     *bool  `json:"use_uppercase"`
	Lowercase     *bool  `json:"use_lowercase"`
	Digits        *bool  `json:"use_digits"`
	Symbols       *bool  `json:"use_symbols"`
	CustomSymbols string `json:"custom_symbols"`
	ExcludeChars  string `json:"exclude_chars"`
	NoRepeat      bool   `json:"no_repeating"`
	MinUppercase  int    `json:"min_uppercase"`
	MinLowercase  int    `json:"min_lowercase"`
	MinDigits     int    `json:"min_digits"`
	MinSymbols    int    `json:"min_symbols"`
	// Count requests multiple distinct passwords in one call (1..100).
	Count int `json:"count"`
}

// PasswordGenerateResponse represents a password generation response.
type PasswordGenerateResponse struct {
	Password           string   `json:"password"`
	Passwords          []string `json:"passwords,omitempty"`
	Length             int      `json:"length"`
	EntropyBits        float64  `json:"entropy_bits"`
	CharsetEntropyBits float64  `json:"charset_entropy_bits"`
	CharsetSize        int      `json:"charset_size"`
}

// PassphraseGenerateRequest represents a passphrase generation request.
type PassphraseGenerateRequest struct {
	WordCount  int     `json:"word_count"`
	Wordlist   string  `json:"wordlist_type"`
	Separator  *string `json:"separator"`
	Capitalize bool    `json:"capitalize_words"`
	AddNumber  bool    `json:"add_number"`
	AddSymbol  bool    `json:"add_symbol"`
	// WithDice simulates dice rolls and returns them alongside the result.
	WithDice bool `json:"with_dice"`
}

// PassphraseGenerateResponse represents a passphrase generation response.
type PassphraseGenerateResponse struct {
	Passphrase       string   `json:"passphrase"`
	WordCount        int      `json:"word_count"`
	EntropyBits      float64  `json:"entropy_bits"`
	Wordlist         string   `json:"wordlist_type"`
	WordlistFallback bool     `json:"wordlist_fallback"`
	DiceRolls        []string `json:"dice_rolls,omitempty"`
}
