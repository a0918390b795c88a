package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/quantumlock/quantumlock-go/internal/crypto"
	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/passphrase"
	"github.com/quantumlock/quantumlock-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password and passphrase generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGeneratePassword handles POST /api/v1/generate/password requests.
func (h *GeneratorHandler) HandleGeneratePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassword(req)
	if err != nil {
		if isGenerationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGeneratePasswordQuick handles GET /api/v1/generate/password/quick requests.
func (h *GeneratorHandler) HandleGeneratePasswordQuick(w http.ResponseWriter, r *http.Request) {
	req := model.PasswordGenerateRequest{}

	if v := r.URL.Query().Get("length"); v != "" {
		length, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid length parameter"))
			return
		}
		req.Length = length
	}
	if v := r.URL.Query().Get("symbols"); v != "" {
		symbols, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid symbols parameter"))
			return
		}
		req.Symbols = &symbols
	}

	resp, err := h.service.GeneratePassword(req)
	if err != nil {
		if isGenerationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"password": resp.Password,
		"length":   resp.Length,
	})
}

// HandleGeneratePassphrase handles POST /api/v1/generate/passphrase requests.
func (h *GeneratorHandler) HandleGeneratePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassphrase(req)
	if err != nil {
		if isGenerationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGeneratePassphraseQuick handles GET /api/v1/generate/passphrase/quick requests.
func (h *GeneratorHandler) HandleGeneratePassphraseQuick(w http.ResponseWriter, r *http.Request) {
	req := model.PassphraseGenerateRequest{
		Wordlist: r.URL.Query().Get("wordlist"),
	}

	if v := r.URL.Query().Get("words"); v != "" {
		words, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid words parameter"))
			return
		}
		req.WordCount = words
	}

	resp, err := h.service.GeneratePassphrase(req)
	if err != nil {
		if isGenerationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"passphrase": resp.Passphrase,
		"word_count": resp.WordCount,
	})
}

// HandleDiceWord handles POST /api/v1/generate/passphrase/dice requests:
// deterministic lookup of a caller-supplied 5-digit dice roll.
func (h *GeneratorHandler) HandleDiceWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Wordlist string `json:"wordlist_type"`
		Roll     string `json:"dice_roll"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	word, err := h.service.WordFromDice(req.Wordlist, req.Roll)
	if err != nil {
		if isGenerationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"dice_roll": req.Roll,
		"word":      word,
	})
}

func isGenerationError(err error) bool {
	return crypto.IsValidationError(err) ||
		errors.Is(err, passphrase.ErrWordCountTooSmall) ||
		errors.Is(err, passphrase.ErrWordCountTooLarge) ||
		errors.Is(err, passphrase.ErrInvalidDiceInput) ||
		errors.Is(err, passphrase.ErrUnknownWordlist) ||
		errors.Is(err, service.ErrCountTooLarge) ||
		errors.Is(err, service.ErrCountNegative)
}

// decodeBody decodes a JSON body with a 1MB cap, writing the error response
// itself and returning false when decoding fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
