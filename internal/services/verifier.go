package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"apnedoctors/resume-verifier/internal/models"
)

// VerifierConfig holds the first-level verification policy constants. The
// defaults mirror long-standing screening practice; there is no derivation
// behind the thresholds, so they are configurable but rarely changed.
type VerifierConfig struct {
	// SimilarityThreshold is the minimum cosine similarity for a document
	// to count as similar to the reference profile.
	SimilarityThreshold float64
	// DuplicateThreshold marks a candidate document as a near-duplicate of
	// the reference, which waives the minimum-experience check.
	DuplicateThreshold float64
	// MinExperienceYears is the required self-reported experience.
	MinExperienceYears float64
	// RequiredCertifications is the recognized credential vocabulary.
	RequiredCertifications []string
}

func DefaultVerifierConfig() VerifierConfig {
	return VerifierConfig{
		SimilarityThreshold:    0.3,
		DuplicateThreshold:     0.99,
		MinExperienceYears:     0.5,
		RequiredCertifications: DefaultCertifications,
	}
}

// VerifierService runs the first-level verification pipeline over an
// uploaded resume and produces a verdict with diagnostic scores. Verdicts
// are values: a rejected resume is a Passed=false verdict, never an error.
type VerifierService interface {
	Verify(ctx context.Context, filePath string) models.Verdict
}

type verifierService struct {
	extractor TextExtractor
	scorer    SimilarityScorer
	signals   SignalExtractor
	cfg       VerifierConfig
	logger    *zap.Logger
}

func NewVerifierService(
	extractor TextExtractor,
	scorer SimilarityScorer,
	signals SignalExtractor,
	cfg VerifierConfig,
	logger *zap.Logger,
) VerifierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &verifierService{
		extractor: extractor,
		scorer:    scorer,
		signals:   signals,
		cfg:       cfg,
		logger:    logger,
	}
}

// Verify implements VerifierService. Stages run in a fixed order and each
// one either continues or returns a terminal verdict; the empty-text check
// must come first since embedding an empty string is meaningless. Every
// verdict carries fully shaped scores, including on failure paths.
func (v *verifierService) Verify(ctx context.Context, filePath string) models.Verdict {
	text, err := v.extractor.ExtractText(filePath)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			v.logger.Warn("document extraction failed", zap.Error(err))
		}
		return models.Verdict{
			Passed:  false,
			Message: "empty or invalid resume document",
			Scores: models.VerificationScores{
				CosineSimilarity:        nil,
				ExtractedExperience:     0,
				ExtractedCertifications: []string{},
			},
		}
	}

	similarity, err := v.scorer.Score(ctx, text)
	if err != nil {
		// Infrastructure fault, not a verification outcome. Reported as a
		// failed verdict with a generic reason; the cause stays in the logs.
		v.logger.Error("similarity scoring failed", zap.Error(err))
		zero := 0.0
		return models.Verdict{
			Passed:  false,
			Message: "an error occurred during verification, please try again",
			Scores: models.VerificationScores{
				CosineSimilarity:        &zero,
				ExtractedExperience:     0,
				ExtractedCertifications: []string{},
			},
		}
	}

	experience := v.signals.ExtractExperience(text)
	certifications := v.signals.ExtractCertifications(text)

	cosine := similarity.Cosine
	scores := models.VerificationScores{
		CosineSimilarity:        &cosine,
		ExtractedExperience:     experience,
		ExtractedCertifications: certifications,
	}

	if experience < v.cfg.MinExperienceYears {
		if cosine >= v.cfg.DuplicateThreshold {
			// A near-duplicate of the trusted reference is assumed to meet
			// the minimum by provenance even when the regex found nothing.
			v.logger.Info("near-duplicate of reference detected, overriding experience check",
				zap.Float64("cosine", cosine))
			experience = v.cfg.MinExperienceYears
			scores.ExtractedExperience = experience
		} else {
			return models.Verdict{
				Passed: false,
				Message: fmt.Sprintf("insufficient experience: found %.2f years, minimum required is %.2f",
					experience, v.cfg.MinExperienceYears),
				Scores: scores,
			}
		}
	}

	if len(certifications) == 0 {
		return models.Verdict{
			Passed:  false,
			Message: "required medical certifications are missing",
			Scores:  scores,
		}
	}

	v.logger.Info("first level verification passed",
		zap.Float64("cosine", cosine),
		zap.Float64("experience_years", experience),
		zap.Strings("certifications", certifications))

	return models.Verdict{
		Passed:  true,
		Message: "first level verification passed",
		Scores:  scores,
	}
}
