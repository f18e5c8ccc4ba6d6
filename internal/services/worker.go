package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"apnedoctors/resume-verifier/internal/repositories"
)

// Worker dispatches queued verification jobs to a fixed pool of goroutines.
// Verification is CPU and inference bound, so the pool size caps how many
// documents are processed at once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(verificationID uuid.UUID)
}

type worker struct {
	verificationRepo repositories.VerificationRepository
	processor        ProcessorService
	jobQueue         chan uuid.UUID
	concurrency      int
	wg               sync.WaitGroup
	stopChan         chan struct{}
	logger           *zap.Logger
}

func NewWorker(
	verificationRepo repositories.VerificationRepository,
	processor ProcessorService,
	concurrency int,
	logger *zap.Logger,
) Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &worker{
		verificationRepo: verificationRepo,
		processor:        processor,
		jobQueue:         make(chan uuid.UUID, 100),
		concurrency:      concurrency,
		stopChan:         make(chan struct{}),
		logger:           logger,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.logger.Info("starting worker pool", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.logger.Info("stopping worker pool")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("worker pool stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(verificationID uuid.UUID) {
	select {
	case w.jobQueue <- verificationID:
		w.logger.Debug("job enqueued", zap.String("verification_id", verificationID.String()))
	case <-w.stopChan:
		w.logger.Warn("worker stopped, dropping job",
			zap.String("verification_id", verificationID.String()))
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log := w.logger.With(zap.Int("worker_id", workerID))

	for {
		select {
		case <-w.stopChan:
			log.Debug("worker stopped")
			return
		case verificationID := <-w.jobQueue:
			log.Info("processing job", zap.String("verification_id", verificationID.String()))
			if err := w.processor.ProcessVerification(ctx, verificationID); err != nil {
				log.Error("job failed",
					zap.String("verification_id", verificationID.String()),
					zap.Error(err))
			}
		}
	}
}

// pollPendingJobs re-enqueues jobs that were created but never picked up,
// e.g. after a restart.
func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.verificationRepo.FindPendingJobs(10)
			if err != nil {
				w.logger.Warn("failed to fetch pending jobs", zap.Error(err))
				continue
			}

			if len(pending) > 0 {
				w.logger.Info("found pending jobs", zap.Int("count", len(pending)))
			}

			for _, job := range pending {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
