package crypto

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "uppercase only",
			opts: GeneratorOptions{
				Length: 16, Uppercase: true,
			},
			wantErr: nil,
		},
		{
			name: "digits only",
			opts: GeneratorOptions{
				Length: 16, Digits: true,
			},
			wantErr: nil,
		},
		{
			name: "single character",
			opts: GeneratorOptions{
				Length: MinLength, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "maximum length",
			opts: GeneratorOptions{
				Length: MaxLength, Uppercase: true, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "with per-class minimums",
			opts: GeneratorOptions{
				Length: 24, Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
				MinUppercase: 2, MinLowercase: 2, MinDigits: 2, MinSymbols: 2,
			},
			wantErr: nil,
		},
		{
			name: "zero length",
			opts: GeneratorOptions{
				Length: 0, Uppercase: true,
			},
			wantErr: ErrLengthTooShort,
		},
		{
			name: "length too long",
			opts: GeneratorOptions{
				Length: 200, Uppercase: true,
			},
			wantErr: ErrLengthTooLong,
		},
		{
			name: "no character types selected",
			opts: GeneratorOptions{
				Length: 16,
			},
			wantErr: ErrEmptyCharset,
		},
		{
			name: "minimums exceed length",
			opts: GeneratorOptions{
				Length: 6, Uppercase: true, Digits: true,
				MinUppercase: 4, MinDigits: 4,
			},
			wantErr: ErrRequirementsExceedLength,
		},
		{
			name: "negative minimum",
			opts: GeneratorOptions{
				Length: 6, Uppercase: true, Digits: true,
				MinUppercase: -10, MinDigits: 8,
			},
			wantErr: ErrNegativeMinimum,
		},
		{
			name: "no-repeat charset too small",
			opts: GeneratorOptions{
				Length: 11, Digits: true, NoRepeat: true,
			},
			wantErr: ErrCharsetTooSmall,
		},
		{
			name: "exclusions empty the charset",
			opts: GeneratorOptions{
				Length: 8, Digits: true, ExcludeChars: "0123456789",
			},
			wantErr: ErrEmptyCharset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateOnlyUsesCharset(t *testing.T) {
	opts := GeneratorOptions{
		Length: 64, Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
		ExcludeChars: "O0l1I",
	}
	charset, err := BuildCharset(opts)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	for i := 0; i < 20; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, ch := range password {
			if !strings.ContainsRune(charset.Pool, ch) {
				t.Errorf("password contains character %q outside the charset", string(ch))
			}
			if strings.ContainsRune(opts.ExcludeChars, ch) {
				t.Errorf("password contains excluded character %q", string(ch))
			}
		}
	}
}

func TestGenerateSatisfiesMinimums(t *testing.T) {
	opts := GeneratorOptions{
		Length: 16, Uppercase: true, Lowercase: true, Digits: true, Symbols: true,
		MinUppercase: 3, MinLowercase: 2, MinDigits: 4, MinSymbols: 1,
	}

	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		counts := map[string]int{}
		for _, ch := range password {
			switch {
			case strings.ContainsRune(uppercaseChars, ch):
				counts["upper"]++
			case strings.ContainsRune(lowercaseChars, ch):
				counts["lower"]++
			case strings.ContainsRune(digitChars, ch):
				counts["digit"]++
			default:
				counts["symbol"]++
			}
		}

		if counts["upper"] < opts.MinUppercase {
			t.Errorf("password %q has %d uppercase, want >= %d", password, counts["upper"], opts.MinUppercase)
		}
		if counts["lower"] < opts.MinLowercase {
			t.Errorf("password %q has %d lowercase, want >= %d", password, counts["lower"], opts.MinLowercase)
		}
		if counts["digit"] < opts.MinDigits {
			t.Errorf("password %q has %d digits, want >= %d", password, counts["digit"], opts.MinDigits)
		}
		if counts["symbol"] < opts.MinSymbols {
			t.Errorf("password %q has %d symbols, want >= %d", password, counts["symbol"], opts.MinSymbols)
		}
	}
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 32, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 32, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "digits only",
			opts:    GeneratorOptions{Length: 32, Digits: true},
			charset: digitChars,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true},
			charset: symbolChars,
		},
		{
			name:    "custom symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true, CustomSymbols: "#-_"},
			charset: "#-_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateNoRepeat(t *testing.T) {
	opts := GeneratorOptions{
		Length: 20, Uppercase: true, Lowercase: true, Digits: true,
		NoRepeat: true,
	}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if distinctChars(password) != len(password) {
			t.Errorf("password %q contains repeated characters", password)
		}
	}
}

func TestGenerateNoRepeatWithMinimums(t *testing.T) {
	opts := GeneratorOptions{
		Length: 8, Uppercase: true, Lowercase: true, Digits: true,
		NoRepeat: true, MinUppercase: 2, MinDigits: 2,
	}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if distinctChars(password) != len(password) {
			t.Errorf("password %q contains repeated characters", password)
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateMultiple(t *testing.T) {
	passwords, err := GenerateMultiple(DefaultOptions(), 10)
	if err != nil {
		t.Fatalf("GenerateMultiple() unexpected error: %v", err)
	}
	if len(passwords) != 10 {
		t.Fatalf("GenerateMultiple() returned %d passwords, want 10", len(passwords))
	}

	seen := make(map[string]bool)
	for _, p := range passwords {
		if seen[p] {
			t.Errorf("GenerateMultiple() returned duplicate %q", p)
		}
		seen[p] = true
	}
}

func TestGenerateMultiplePropagatesErrors(t *testing.T) {
	_, err := GenerateMultiple(GeneratorOptions{Length: 16}, 3)
	if err != ErrEmptyCharset {
		t.Errorf("GenerateMultiple() error = %v, want %v", err, ErrEmptyCharset)
	}
}
