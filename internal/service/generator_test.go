package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/quantumlock/quantumlock-go/internal/crypto"
	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/passphrase"
)

func newTestGeneratorService(t *testing.T) *GeneratorService {
	t.Helper()
	// An empty dir forces the built-in fallback wordlists, which is fine for
	// service-level behavior tests.
	svc, err := NewGeneratorService(t.TempDir(), 16, 6)
	if err != nil {
		t.Fatalf("NewGeneratorService() unexpected error: %v", err)
	}
	return svc
}

func TestGeneratePassword_Defaults(t *testing.T) {
	svc := newTestGeneratorService(t)

	resp, err := svc.GeneratePassword(model.PasswordGenerateRequest{})
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}

	if resp.Length != 16 {
		t.Errorf("expected default length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected 16-char password, got %q", resp.Password)
	}
	if resp.CharsetSize == 0 {
		t.Error("expected nonzero charset size")
	}
	if resp.EntropyBits <= 0 {
		t.Errorf("expected positive realized entropy, got %v", resp.EntropyBits)
	}
	if resp.CharsetEntropyBits <= resp.EntropyBits/2 {
		t.Errorf("charset entropy %v implausibly low vs realized %v", resp.CharsetEntropyBits, resp.EntropyBits)
	}
	if resp.Passwords != nil {
		t.Error("single-password request should not populate the batch field")
	}
}

func TestGeneratePassword_ExplicitFalseDisablesClass(t *testing.T) {
	svc := newTestGeneratorService(t)
	f := false

	resp, err := svc.GeneratePassword(model.PasswordGenerateRequest{Symbols: &f, Uppercase: &f})
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}

	for _, ch := range resp.Password {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", ch) {
			t.Errorf("password %q contains disabled class character %q", resp.Password, string(ch))
		}
	}
}

func TestGeneratePassword_Batch(t *testing.T) {
	svc := newTestGeneratorService(t)

	resp, err := svc.GeneratePassword(model.PasswordGenerateRequest{Count: 5})
	if err != nil {
		t.Fatalf("GeneratePassword() unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Errorf("expected 5 passwords, got %d", len(resp.Passwords))
	}
}

func TestGeneratePassword_CountTooLarge(t *testing.T) {
	svc := newTestGeneratorService(t)

	_, err := svc.GeneratePassword(model.PasswordGenerateRequest{Count: 101})
	if err != ErrCountTooLarge {
		t.Errorf("expected ErrCountTooLarge, got %v", err)
	}
}

func TestGeneratePassword_CountNegative(t *testing.T) {
	svc := newTestGeneratorService(t)

	_, err := svc.GeneratePassword(model.PasswordGenerateRequest{Count: -1})
	if err != ErrCountNegative {
		t.Errorf("expected ErrCountNegative, got %v", err)
	}
}

func TestGeneratePassword_PropagatesValidation(t *testing.T) {
	svc := newTestGeneratorService(t)

	_, err := svc.GeneratePassword(model.PasswordGenerateRequest{
		Length: 6, MinUppercase: 4, MinDigits: 4,
	})
	if err != crypto.ErrRequirementsExceedLength {
		t.Errorf("expected ErrRequirementsExceedLength, got %v", err)
	}
}

func TestGeneratePassphrase_Defaults(t *testing.T) {
	svc := newTestGeneratorService(t)

	resp, err := svc.GeneratePassphrase(model.PassphraseGenerateRequest{})
	if err != nil {
		t.Fatalf("GeneratePassphrase() unexpected error: %v", err)
	}

	if resp.WordCount != 6 {
		t.Errorf("expected default word count 6, got %d", resp.WordCount)
	}
	if resp.Wordlist != "diceware" {
		t.Errorf("expected default wordlist diceware, got %q", resp.Wordlist)
	}
	if !resp.WordlistFallback {
		t.Error("expected fallback flag with no wordlist files on disk")
	}
	if got := len(strings.Split(resp.Passphrase, " ")); got != 6 {
		t.Errorf("expected 6 words, got %d in %q", got, resp.Passphrase)
	}
	if resp.EntropyBits <= 0 {
		t.Error("expected positive entropy")
	}
}

func TestGeneratePassphrase_UnknownWordlist(t *testing.T) {
	svc := newTestGeneratorService(t)

	_, err := svc.GeneratePassphrase(model.PassphraseGenerateRequest{Wordlist: "klingon"})
	if err != passphrase.ErrUnknownWordlist {
		t.Errorf("expected ErrUnknownWordlist, got %v", err)
	}
}

func TestGeneratePassphrase_WithDice(t *testing.T) {
	svc := newTestGeneratorService(t)

	resp, err := svc.GeneratePassphrase(model.PassphraseGenerateRequest{WordCount: 4, WithDice: true})
	if err != nil {
		t.Fatalf("GeneratePassphrase() unexpected error: %v", err)
	}
	if len(resp.DiceRolls) != 4 {
		t.Errorf("expected 4 dice rolls, got %d", len(resp.DiceRolls))
	}
}

func TestWordFromDice_Deterministic(t *testing.T) {
	svc := newTestGeneratorService(t)

	first, err := svc.WordFromDice("diceware", "11111")
	if err != nil {
		t.Fatalf("WordFromDice() unexpected error: %v", err)
	}
	again, err := svc.WordFromDice("diceware", "11111")
	if err != nil {
		t.Fatalf("WordFromDice() unexpected error: %v", err)
	}
	if first != again {
		t.Errorf("dice lookup not deterministic: %q vs %q", first, again)
	}
}

func TestWordFromDice_InvalidRoll(t *testing.T) {
	svc := newTestGeneratorService(t)

	_, err := svc.WordFromDice("", "99999")
	if !errors.Is(err, passphrase.ErrInvalidDiceInput) {
		t.Errorf("expected ErrInvalidDiceInput, got %v", err)
	}
}
