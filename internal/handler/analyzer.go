package handler

import (
	"errors"
	"net/http"

	"github.com/quantumlock/quantumlock-go/internal/breach"
	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for strength analysis and breach checks.
type AnalyzerHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc}
}

// HandleAnalyzeStrength handles POST /api/v1/analyze/strength requests.
func (h *AnalyzerHandler) HandleAnalyzeStrength(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := h.service.AnalyzeStrength(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// HandleCheckBreach handles POST /api/v1/analyze/breach requests. A failed
// check surfaces as an error status, never as a clean verdict.
func (h *AnalyzerHandler) HandleCheckBreach(w http.ResponseWriter, r *http.Request) {
	var req model.BreachCheckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.service.CheckBreach(r.Context(), req)
	if err != nil {
		writeBreachError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleFullAnalysis handles POST /api/v1/analyze/full requests.
func (h *AnalyzerHandler) HandleFullAnalysis(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.FullAnalysis(r.Context(), req)
	if err != nil {
		writeBreachError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeBreachError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPasswordRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, breach.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorResponse("breach database rate limited, try again later"))
	case errors.Is(err, breach.ErrCheckFailed):
		writeJSON(w, http.StatusBadGateway, errorResponse("breach check unavailable"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
