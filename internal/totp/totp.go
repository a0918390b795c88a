// Package totp wraps time-based one-time password generation for
// authenticator apps. It adds no logic of its own beyond provisioning
// conveniences around the standard algorithm.
package totp

import (
	"bytes"
	"encoding/base32"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/quantumlock/quantumlock-go/internal/crypto"
)

const (
	DefaultDigits = 6
	DefaultPeriod = 30

	backupCodeLength = 8
)

var ErrInvalidDigits = errors.New("totp digits must be 6 or 8")

// Secret is a freshly provisioned TOTP secret with its otpauth URI.
type Secret struct {
	Secret      string `json:"secret"`
	Issuer      string `json:"issuer"`
	AccountName string `json:"account_name"`
	URI         string `json:"uri"`
}

// Generator issues and verifies TOTP codes with fixed digits and period.
type Generator struct {
	digits otp.Digits
	period uint
}

// NewGenerator builds a Generator; digits must be 6 or 8, period is in
// seconds (30 for authenticator-app compatibility).
func NewGenerator(digits, period int) (*Generator, error) {
	var d otp.Digits
	switch digits {
	case 6:
		d = otp.DigitsSix
	case 8:
		d = otp.DigitsEight
	default:
		return nil, ErrInvalidDigits
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Generator{digits: d, period: uint(period)}, nil
}

// GenerateSecret provisions a new random secret for issuer/accountName.
func (g *Generator) GenerateSecret(issuer, accountName string) (Secret, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      g.period,
		Digits:      g.digits,
	})
	if err != nil {
		return Secret{}, err
	}
	return Secret{
		Secret:      key.Secret(),
		Issuer:      issuer,
		AccountName: accountName,
		URI:         key.URL(),
	}, nil
}

// ProvisioningURI builds the otpauth URL for an already-provisioned secret,
// letting the otp library handle label and parameter encoding. secret must be
// the base32 form handed out by GenerateSecret.
func (g *Generator) ProvisioningURI(secret, issuer, accountName string) (string, error) {
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(
		strings.TrimRight(strings.ToUpper(secret), "="))
	if err != nil {
		return "", err
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      g.period,
		Digits:      g.digits,
		Secret:      raw,
	})
	if err != nil {
		return "", err
	}
	return key.URL(), nil
}

// CurrentCode returns the code for the current time step.
func (g *Generator) CurrentCode(secret string) (string, error) {
	return g.CodeAt(secret, time.Now())
}

// CodeAt returns the code for an arbitrary instant.
func (g *Generator) CodeAt(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, g.validateOpts(1))
}

// VerifyCode checks a code against the secret, accepting one time step of
// clock skew in either direction.
func (g *Generator) VerifyCode(secret, code string) (bool, error) {
	return g.VerifyCodeAt(secret, code, time.Now())
}

// VerifyCodeAt checks a code at an arbitrary instant.
func (g *Generator) VerifyCodeAt(secret, code string, t time.Time) (bool, error) {
	return totp.ValidateCustom(code, secret, t, g.validateOpts(1))
}

// QRCodeBase64 renders the provisioning URI as a base64-encoded PNG sized
// size x size pixels, suitable for inlining in a data URL.
func (g *Generator) QRCodeBase64(s Secret, size int) (string, error) {
	key, err := otp.NewKeyFromURL(s.URI)
	if err != nil {
		return "", err
	}
	img, err := key.Image(size, size)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// GenerateBackupCodes produces count single-use recovery codes: 8 characters,
// uppercase letters and digits, drawn from the secure generator.
func GenerateBackupCodes(count int) ([]string, error) {
	opts := crypto.GeneratorOptions{
		Length:    backupCodeLength,
		Uppercase: true,
		Digits:    true,
	}
	codes := make([]string, count)
	for i := range codes {
		code, err := crypto.Generate(opts)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}

func (g *Generator) validateOpts(skew uint) totp.ValidateOpts {
	return totp.ValidateOpts{
		Period: g.period,
		Skew:   skew,
		Digits: g.digits,
	}
}
