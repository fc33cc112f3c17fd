// Package scheduler runs the recurring maintenance jobs. Each job is
// isolated: a panic or error in one never stops the others or the ticker.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const jobTimeout = 5 * time.Minute

type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger.Named("scheduler"),
	}
}

func (s *Scheduler) Register(job Job) error {
	if job.Name == "" || job.Run == nil {
		return fmt.Errorf("scheduler: job needs a name and a body")
	}

	_, err := s.cron.AddFunc(job.Spec, s.safeRun(job))
	if err != nil {
		return fmt.Errorf("scheduler: register %s: %w", job.Name, err)
	}

	s.logger.Info("job registered",
		zap.String("job", job.Name),
		zap.String("spec", job.Spec),
	)
	return nil
}

// safeRun wraps the job body with a recover and error logging so the cron
// goroutine survives anything the job does.
func (s *Scheduler) safeRun(job Job) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("job panicked",
					zap.String("job", job.Name),
					zap.Any("panic", r),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("job failed",
				zap.String("job", job.Name),
				zap.Error(err),
			)
			return
		}

		s.logger.Info("job completed",
			zap.String("job", job.Name),
			zap.Duration("took", time.Since(start)),
		)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop halts scheduling and returns once running jobs have finished.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
