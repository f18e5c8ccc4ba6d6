package services

import (
	"time"

	"apnedoctors/resume-verifier/internal/models"
	"apnedoctors/resume-verifier/internal/repositories"
)

const interviewSlotLayout = "2006-01-02 15:04"

// SchedulerService builds the second-level scheduling record for candidates
// who passed verification.
type SchedulerService interface {
	ScheduleInterview(candidateID string) (*models.InterviewDetails, error)
}

type schedulerService struct {
	expertRepo repositories.ExpertRepository
	now        func() time.Time
}

func NewSchedulerService(expertRepo repositories.ExpertRepository) SchedulerService {
	return &schedulerService{
		expertRepo: expertRepo,
		now:        time.Now,
	}
}

// ScheduleInterview implements SchedulerService. The slot is the current
// timestamp; experts may be empty for an unknown candidate id.
func (s *schedulerService) ScheduleInterview(candidateID string) (*models.InterviewDetails, error) {
	experts, err := s.expertRepo.FindEmailsByCandidateID(candidateID)
	if err != nil {
		return nil, err
	}

	return &models.InterviewDetails{
		CandidateID:    candidateID,
		InterviewSlot:  s.now().Format(interviewSlotLayout),
		MedicalExperts: experts,
	}, nil
}
