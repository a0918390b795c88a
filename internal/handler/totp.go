package handler

import (
	"errors"
	"net/http"

	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/service"
)

// TOTPHandler handles HTTP requests for one-time-password operations.
type TOTPHandler struct {
	service *service.TOTPService
}

// NewTOTPHandler creates a new TOTPHandler.
func NewTOTPHandler(svc *service.TOTPService) *TOTPHandler {
	return &TOTPHandler{service: svc}
}

// HandleCreateSecret handles POST /api/v1/totp/secret requests.
func (h *TOTPHandler) HandleCreateSecret(w http.ResponseWriter, r *http.Request) {
	var req model.TOTPSecretRequest
	if !decodeBody(w, r, &req) {
		return
	}

	secret, err := h.service.CreateSecret(req)
	if err != nil {
		writeTOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, secret)
}

// HandleCurrentCode handles POST /api/v1/totp/code requests.
func (h *TOTPHandler) HandleCurrentCode(w http.ResponseWriter, r *http.Request) {
	var req model.TOTPCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.CurrentCode(req)
	if err != nil {
		writeTOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleVerifyCode handles POST /api/v1/totp/verify requests.
func (h *TOTPHandler) HandleVerifyCode(w http.ResponseWriter, r *http.Request) {
	var req model.TOTPVerifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.VerifyCode(req)
	if err != nil {
		writeTOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleQRCode handles POST /api/v1/totp/qr requests.
func (h *TOTPHandler) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	var req model.TOTPQRRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.QRCode(req)
	if err != nil {
		writeTOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleBackupCodes handles POST /api/v1/totp/backup-codes requests.
func (h *TOTPHandler) HandleBackupCodes(w http.ResponseWriter, r *http.Request) {
	var req model.TOTPBackupCodesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.BackupCodes(req)
	if err != nil {
		writeTOTPError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeTOTPError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrAccountNameRequired) ||
		errors.Is(err, service.ErrSecretRequired) ||
		errors.Is(err, service.ErrCodeRequired) ||
		errors.Is(err, service.ErrTooManyBackupCodes) ||
		errors.Is(err, service.ErrNegativeBackupCodes) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
