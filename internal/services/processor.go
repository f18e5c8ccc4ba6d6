package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"apnedoctors/resume-verifier/internal/models"
	"apnedoctors/resume-verifier/internal/repositories"
)

// ProcessorService drives a queued verification job through the pipeline
// and records the outcome.
type ProcessorService interface {
	ProcessVerification(ctx context.Context, verificationID uuid.UUID) error
}

type processorService struct {
	verificationRepo repositories.VerificationRepository
	verifier         VerifierService
	storage          StorageService
	logger           *zap.Logger
}

func NewProcessorService(
	verificationRepo repositories.VerificationRepository,
	verifier VerifierService,
	storage StorageService,
	logger *zap.Logger,
) ProcessorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &processorService{
		verificationRepo: verificationRepo,
		verifier:         verifier,
		storage:          storage,
		logger:           logger,
	}
}

// ProcessVerification implements ProcessorService. The scratch file is
// removed on every exit path once verification has run.
func (p *processorService) ProcessVerification(ctx context.Context, verificationID uuid.UUID) error {
	log := p.logger.With(zap.String("verification_id", verificationID.String()))

	if err := p.verificationRepo.UpdateStatus(verificationID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	verification, err := p.verificationRepo.FindByID(verificationID)
	if err != nil {
		p.verificationRepo.UpdateError(verificationID, err.Error())
		return fmt.Errorf("failed to get verification: %w", err)
	}

	defer func() {
		if _, statErr := os.Stat(verification.FilePath); statErr == nil {
			if delErr := p.storage.DeleteFile(verification.FilePath); delErr != nil {
				log.Warn("failed to clean up scratch file", zap.Error(delErr))
			}
		}
	}()

	log.Info("starting verification", zap.String("filename", verification.Filename))

	verdict := p.verifier.Verify(ctx, verification.FilePath)

	var interviewSlot *string
	if verdict.Passed {
		slot := time.Now().Format(interviewSlotLayout)
		interviewSlot = &slot
	}

	if err := p.verificationRepo.UpdateVerdict(verificationID, &verdict, interviewSlot); err != nil {
		return fmt.Errorf("failed to save verdict: %w", err)
	}

	log.Info("verification completed",
		zap.Bool("passed", verdict.Passed),
		zap.String("message", verdict.Message))

	return nil
}
