package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
)

// ExpiryScheduler runs the daily expiry sweep so the log stream always
// carries the fleet's expired and approaching totals.
type ExpiryScheduler struct {
	cron         *cron.Cron
	alertService service.AlertService
	spec         string
}

// NewExpiryScheduler creates the scheduler. spec is a standard 5-field cron
// expression, "0 6 * * *" in the default configuration.
func NewExpiryScheduler(alertService service.AlertService, spec string) *ExpiryScheduler {
	return &ExpiryScheduler{
		cron:         cron.New(),
		alertService: alertService,
		spec:         spec,
	}
}

func (s *ExpiryScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled expiry sweep", nil)

		if err := s.alertService.Sweep(); err != nil {
			logger.Error("Scheduled expiry sweep failed", err)
			return
		}
	})
	if err != nil {
		logger.Error("Failed to register expiry sweep cron job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Expiry scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

func (s *ExpiryScheduler) Stop() {
	logger.Info("Stopping expiry scheduler...", nil)
	s.cron.Stop()
	logger.Info("Expiry scheduler stopped", nil)
}
