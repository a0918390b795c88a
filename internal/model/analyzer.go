package model

import (
	"github.com/quantumlock/quantumlock-go/internal/breach"
	"github.com/quantumlock/quantumlock-go/internal/strength"
)

// AnalyzeRequest represents a strength-analysis request.
type AnalyzeRequest struct {
	Password string `json:"password"`
	// UserInputs carries user-specific strings (name, email, ...) that
	// weaken any password containing them.
	UserInputs []string `json:"user_inputs"`
}

// BreachCheckRequest represents a breach-check request.
type BreachCheckRequest struct {
	Password string `json:"password"`
}

// FullAnalysisResponse combines a strength report with a breach verdict.
type FullAnalysisResponse struct {
	Strength strength.Report `json:"strength"`
	Breach   breach.Result   `json:"breach"`
}
