package service

import (
	"context"
	"errors"

	"github.com/quantumlock/quantumlock-go/internal/breach"
	"github.com/quantumlock/quantumlock-go/internal/model"
	"github.com/quantumlock/quantumlock-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// AnalyzerService handles strength analysis and breach checking.
type AnalyzerService struct {
	analyzer *strength.Analyzer
	checker  *breach.Checker
}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService(analyzer *strength.Analyzer, checker *breach.Checker) *AnalyzerService {
	return &AnalyzerService{analyzer: analyzer, checker: checker}
}

// AnalyzeStrength produces a strength report for the request's password.
func (s *AnalyzerService) AnalyzeStrength(req model.AnalyzeRequest) (strength.Report, error) {
	if req.Password == "" {
		return strength.Report{}, ErrPasswordRequired
	}
	return s.analyzer.Analyze(req.Password, req.UserInputs), nil
}

// CheckBreach runs the k-anonymity breach lookup. A transport failure is
// returned as an error, never as a clean verdict.
func (s *AnalyzerService) CheckBreach(ctx context.Context, req model.BreachCheckRequest) (breach.Result, error) {
	if req.Password == "" {
		return breach.Result{}, ErrPasswordRequired
	}
	return s.checker.Check(ctx, req.Password)
}

// FullAnalysis combines strength analysis with a breach check.
func (s *AnalyzerService) FullAnalysis(ctx context.Context, req model.AnalyzeRequest) (model.FullAnalysisResponse, error) {
	report, err := s.AnalyzeStrength(req)
	if err != nil {
		return model.FullAnalysisResponse{}, err
	}
	verdict, err := s.checker.Check(ctx, req.Password)
	if err != nil {
		return model.FullAnalysisResponse{}, err
	}
	return model.FullAnalysisResponse{Strength: report, Breach: verdict}, nil
}
