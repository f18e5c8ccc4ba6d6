package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"apnedoctors/resume-verifier/internal/models"
)

type ExpertRepository interface {
	FindEmailsByCandidateID(candidateID string) ([]string, error)
}

type expertRepository struct {
	db *gorm.DB
}

func NewExpertRepository(db *gorm.DB) ExpertRepository {
	return &expertRepository{db: db}
}

// FindEmailsByCandidateID returns reviewer emails for a candidate. An
// unknown id yields an empty slice, not an error.
func (r *expertRepository) FindEmailsByCandidateID(candidateID string) ([]string, error) {
	var emails []string
	err := r.db.Model(&models.MedicalExpert{}).
		Where("candidate_id = ?", candidateID).
		Order("id ASC").
		Pluck("email", &emails).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find medical experts: %w", err)
	}

	if emails == nil {
		emails = []string{}
	}

	return emails, nil
}
