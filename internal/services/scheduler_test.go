package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpertRepo struct {
	emails map[string][]string
	err    error
}

func (s *stubExpertRepo) FindEmailsByCandidateID(candidateID string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if emails, ok := s.emails[candidateID]; ok {
		return emails, nil
	}
	return []string{}, nil
}

func TestScheduleInterview(t *testing.T) {
	repo := &stubExpertRepo{emails: map[string][]string{
		"DOC123": {"expert@example.com", "second@example.com"},
	}}
	scheduler := NewSchedulerService(repo)

	t.Run("known candidate", func(t *testing.T) {
		details, err := scheduler.ScheduleInterview("DOC123")
		require.NoError(t, err)

		assert.Equal(t, "DOC123", details.CandidateID)
		assert.Equal(t, []string{"expert@example.com", "second@example.com"}, details.MedicalExperts)

		_, err = time.Parse(interviewSlotLayout, details.InterviewSlot)
		assert.NoError(t, err, "slot should use the %s layout", interviewSlotLayout)
	})

	t.Run("unknown candidate yields empty experts", func(t *testing.T) {
		details, err := scheduler.ScheduleInterview("nobody")
		require.NoError(t, err)

		require.NotNil(t, details.MedicalExperts)
		assert.Empty(t, details.MedicalExperts)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		broken := NewSchedulerService(&stubExpertRepo{err: errors.New("db down")})
		_, err := broken.ScheduleInterview("DOC123")
		assert.Error(t, err)
	})
}
