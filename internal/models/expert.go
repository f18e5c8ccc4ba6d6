package models

// MedicalExpert maps a candidate id to a reviewer contact used when
// scheduling the second verification level.
type MedicalExpert struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CandidateID string `gorm:"type:text;index" json:"candidate_id"`
	Email       string `gorm:"type:text" json:"email"`
}

func (MedicalExpert) TableName() string {
	return "medical_experts"
}
