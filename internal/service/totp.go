package service

import (
	"errors"

	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/totp"
)

const (
	defaultQRSize      = 300
	defaultBackupCodes = 10
	maxBackupCodes     = 50
)

var (
	ErrAccountNameRequired = errors.New("account_name is required")
	ErrSecretRequired      = errors.New("secret is required")
	ErrCodeRequired        = errors.New("code is required")
	ErrTooManyBackupCodes  = errors.New("backup code count must be at most 50")
	ErrNegativeBackupCodes = errors.New("backup code count must be at least 1")
)

// TOTPService handles one-time-password provisioning and verification.
type TOTPService struct {
	gen           *totp.Generator
	defaultIssuer string
}

// NewTOTPService creates a new TOTPService.
func NewTOTPService(gen *totp.Generator, defaultIssuer string) *TOTPService {
	return &TOTPService{gen: gen, defaultIssuer: defaultIssuer}
}

// CreateSecret provisions a new TOTP secret.
func (s *TOTPService) CreateSecret(req model.TOTPSecretRequest) (totp.Secret, error) {
	if req.AccountName == "" {
		return totp.Secret{}, ErrAccountNameRequired
	}
	issuer := req.Issuer
	if issuer == "" {
		issuer = s.defaultIssuer
	}
	return s.gen.GenerateSecret(issuer, req.AccountName)
}

// CurrentCode returns the code for the current time step.
func (s *TOTPService) CurrentCode(req model.TOTPCodeRequest) (model.TOTPCodeResponse, error) {
	if req.Secret == "" {
		return model.TOTPCodeResponse{}, ErrSecretRequired
	}
	code, err := s.gen.CurrentCode(req.Secret)
	if err != nil {
		return model.TOTPCodeResponse{}, err
	}
	return model.TOTPCodeResponse{Code: code}, nil
}

// VerifyCode checks a code against a secret.
func (s *TOTPService) VerifyCode(req model.TOTPVerifyRequest) (model.TOTPVerifyResponse, error) {
	if req.Secret == "" {
		return model.TOTPVerifyResponse{}, ErrSecretRequired
	}
	if req.Code == "" {
		return model.TOTPVerifyResponse{}, ErrCodeRequired
	}
	valid, err := s.gen.VerifyCode(req.Secret, req.Code)
	if err != nil {
		return model.TOTPVerifyResponse{}, err
	}
	return model.TOTPVerifyResponse{Valid: valid}, nil
}

// QRCode renders a provisioning URI as a base64 PNG. The URI is taken from
// the request when present, otherwise built from secret, issuer and account.
func (s *TOTPService) QRCode(req model.TOTPQRRequest) (model.TOTPQRResponse, error) {
	uri := req.URI
	if uri == "" {
		if req.Secret == "" {
			return model.TOTPQRResponse{}, ErrSecretRequired
		}
		if req.AccountName == "" {
			return model.TOTPQRResponse{}, ErrAccountNameRequired
		}
		issuer := req.Issuer
		if issuer == "" {
			issuer = s.defaultIssuer
		}
		built, err := s.gen.ProvisioningURI(req.Secret, issuer, req.AccountName)
		if err != nil {
			return model.TOTPQRResponse{}, err
		}
		uri = built
	}

	size := req.Size
	if size == 0 {
		size = defaultQRSize
	}

	image, err := s.gen.QRCodeBase64(totp.Secret{URI: uri}, size)
	if err != nil {
		return model.TOTPQRResponse{}, err
	}
	return model.TOTPQRResponse{ImageBase64: image}, nil
}

// BackupCodes generates single-use recovery codes.
func (s *TOTPService) BackupCodes(req model.TOTPBackupCodesRequest) (model.TOTPBackupCodesResponse, error) {
	count := req.Count
	switch {
	case count < 0:
		return model.TOTPBackupCodesResponse{}, ErrNegativeBackupCodes
	case count == 0:
		count = defaultBackupCodes
	case count > maxBackupCodes:
		return model.TOTPBackupCodesResponse{}, ErrTooManyBackupCodes
	}
	codes, err := totp.GenerateBackupCodes(count)
	if err != nil {
		return model.TOTPBackupCodesResponse{}, err
	}
	return model.TOTPBackupCodesResponse{Codes: codes}, nil
}
