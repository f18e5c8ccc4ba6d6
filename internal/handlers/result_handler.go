package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"apnedoctors/resume-verifier/internal/models"
	"apnedoctors/resume-verifier/internal/repositories"
	"apnedoctors/resume-verifier/internal/services"
)

type ResultHandler struct {
	verificationRepo repositories.VerificationRepository
	scheduler        services.SchedulerService
}

func NewResultHandler(
	verificationRepo repositories.VerificationRepository,
	scheduler services.SchedulerService,
) *ResultHandler {
	return &ResultHandler{
		verificationRepo: verificationRepo,
		scheduler:        scheduler,
	}
}

// HandleGetResult handles GET /result/:id. Completed jobs include the
// verdict with its scores; passed jobs additionally include the interview
// scheduling details.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	verificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid verification ID format",
		})
	}

	verification, err := h.verificationRepo.FindByID(verificationID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "verification not found",
		})
	}

	response := models.ResultResponse{
		ID:     verification.ID.String(),
		Status: string(verification.Status),
	}

	if verification.Status == models.StatusCompleted {
		response.Result = verdictFromRecord(verification)

		if verification.Passed != nil && *verification.Passed {
			interview, err := h.scheduler.ScheduleInterview(verification.CandidateID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to load interview details",
				})
			}
			if verification.InterviewSlot != nil {
				interview.InterviewSlot = *verification.InterviewSlot
			}
			response.Interview = interview
		}
	}

	if verification.Status == models.StatusFailed && verification.ErrorMessage != "" {
		response.ErrorMessage = &verification.ErrorMessage
	}

	return c.JSON(response)
}

func verdictFromRecord(verification *models.Verification) *models.Verdict {
	verdict := &models.Verdict{
		Scores: models.VerificationScores{
			CosineSimilarity:        verification.CosineSimilarity,
			ExtractedCertifications: []string{},
		},
	}

	if verification.Passed != nil {
		verdict.Passed = *verification.Passed
	}
	if verification.Message != nil {
		verdict.Message = *verification.Message
	}
	if verification.ExperienceYears != nil {
		verdict.Scores.ExtractedExperience = *verification.ExperienceYears
	}
	if verification.Certifications != nil {
		verdict.Scores.ExtractedCertifications = verification.Certifications
	}

	return verdict
}
