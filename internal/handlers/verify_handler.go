package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"apnedoctors/resume-verifier/internal/models"
	"apnedoctors/resume-verifier/internal/repositories"
	"apnedoctors/resume-verifier/internal/services"
)

type VerifyHandler struct {
	verificationRepo repositories.VerificationRepository
	storageService   services.StorageService
	worker           services.Worker
	maxFileSize      int64
}

func NewVerifyHandler(
	verificationRepo repositories.VerificationRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *VerifyHandler {
	return &VerifyHandler{
		verificationRepo: verificationRepo,
		storageService:   storageService,
		worker:           worker,
		maxFileSize:      maxFileSize,
	}
}

// HandleVerify handles POST /verify. It validates and stores the uploaded
// resume, creates a queued verification job and returns its id; the actual
// pipeline runs on the worker pool.
func (h *VerifyHandler) HandleVerify(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no resume file uploaded",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to accept resume: %v", err),
		})
	}

	verification := &models.Verification{
		ID:               uuid.New(),
		CandidateID:      c.FormValue("candidate_id"),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.verificationRepo.Create(verification); err != nil {
		h.storageService.DeleteFile(filePath)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create verification job",
		})
	}

	h.worker.EnqueueJob(verification.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.VerifyResponse{
		ID:     verification.ID.String(),
		Status: string(models.StatusQueued),
	})
}
