package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	StatusQueued     VerificationStatus = "queued"
	StatusProcessing VerificationStatus = "processing"
	StatusCompleted  VerificationStatus = "completed"
	StatusFailed     VerificationStatus = "failed"
)

// Verification is a single resume verification job. The uploaded file lives
// in scratch storage only until the job finishes; the record keeps the
// verdict and diagnostic scores.
type Verification struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID      string             `gorm:"type:text" json:"candidate_id"`
	Filename         string             `gorm:"type:text" json:"filename"`
	OriginalFileName string             `gorm:"type:text" json:"original_filename"`
	FilePath         string             `gorm:"type:text" json:"file_path"`
	Status           VerificationStatus `gorm:"not null;default:'queued'" json:"status"`
	Passed           *bool              `json:"passed,omitempty"`
	Message          *string            `gorm:"type:text" json:"message,omitempty"`
	CosineSimilarity *float64           `json:"cosine_similarity,omitempty"`
	ExperienceYears  *float64           `json:"experience_years,omitempty"`
	Certifications   []string           `gorm:"type:jsonb;serializer:json" json:"certifications,omitempty"`
	InterviewSlot    *string            `gorm:"type:text" json:"interview_slot,omitempty"`
	ErrorMessage     string             `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Verification) TableName() string {
	return "verifications"
}
