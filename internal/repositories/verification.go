package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"apnedoctors/resume-verifier/internal/models"
)

type VerificationRepository interface {
	Create(verification *models.Verification) error
	FindByID(id uuid.UUID) (*models.Verification, error)
	UpdateStatus(id uuid.UUID, status models.VerificationStatus) error
	UpdateVerdict(id uuid.UUID, verdict *models.Verdict, interviewSlot *string) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Verification, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(verification *models.Verification) error {
	if err := r.db.Create(verification).Error; err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}
	return nil
}

func (r *verificationRepository) FindByID(id uuid.UUID) (*models.Verification, error) {
	var verification models.Verification
	if err := r.db.Where("id = ?", id).First(&verification).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("verification not found")
		}
		return nil, fmt.Errorf("failed to find verification: %w", err)
	}
	return &verification, nil
}

func (r *verificationRepository) UpdateStatus(id uuid.UUID, status models.VerificationStatus) error {
	result := r.db.Model(&models.Verification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("verification not found")
	}

	return nil
}

// UpdateVerdict stores a completed verdict with its diagnostic scores. The
// interview slot is present only when the verdict passed. Struct updates
// keep the json serializer on certifications working.
func (r *verificationRepository) UpdateVerdict(id uuid.UUID, verdict *models.Verdict, interviewSlot *string) error {
	passed := verdict.Passed
	message := verdict.Message
	experience := verdict.Scores.ExtractedExperience

	updates := models.Verification{
		Status:           models.StatusCompleted,
		Passed:           &passed,
		Message:          &message,
		CosineSimilarity: verdict.Scores.CosineSimilarity,
		ExperienceYears:  &experience,
		Certifications:   verdict.Scores.ExtractedCertifications,
		InterviewSlot:    interviewSlot,
		UpdatedAt:        time.Now(),
	}

	result := r.db.Model(&models.Verification{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update verdict: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("verification not found")
	}

	return nil
}

func (r *verificationRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Verification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("verification not found")
	}

	return nil
}

func (r *verificationRepository) FindPendingJobs(limit int) ([]models.Verification, error) {
	var verifications []models.Verification
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&verifications).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return verifications, nil
}
