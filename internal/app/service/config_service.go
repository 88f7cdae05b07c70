package service

import (
	"strings"

	"github.com/frotadocs/frotadocs-backend/internal/alert"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
)

// thresholdKeyPrefix is the form-field prefix the management UI has always
// sent for per-category lead times.
const thresholdKeyPrefix = "prazo_"

// ThresholdEntry is one configurable alert category with its lead time.
type ThresholdEntry struct {
	DocumentName string `json:"document_name"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// ConfigService exposes the per-category alert thresholds. List shows every
// category the fleet currently has documents for, filled in with the default
// where nothing was configured yet.
type ConfigService interface {
	List() ([]ThresholdEntry, error)
	Save(values map[string]int) error
}

type configService struct {
	documentRepo    repository.DocumentRepository
	alertConfigRepo repository.AlertConfigRepository
}

func NewConfigService(documentRepo repository.DocumentRepository, alertConfigRepo repository.AlertConfigRepository) ConfigService {
	return &configService{documentRepo: documentRepo, alertConfigRepo: alertConfigRepo}
}

func (s *configService) List() ([]ThresholdEntry, error) {
	stored, err := s.alertConfigRepo.Thresholds()
	if err != nil {
		return nil, err
	}

	names, err := s.documentRepo.DistinctNames()
	if err != nil {
		return nil, err
	}

	// The same stored label can canonicalize to one category several times;
	// collapse before merging with the stored thresholds.
	seen := make(map[string]struct{})
	entries := make([]ThresholdEntry, 0, len(names))
	for _, name := range names {
		category := alert.Canonicalize(name)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}

		days, ok := stored[category]
		if !ok {
			days = alert.DefaultLeadTimeDays
		}
		entries = append(entries, ThresholdEntry{DocumentName: category, LeadTimeDays: days})
	}
	return entries, nil
}

func (s *configService) Save(values map[string]int) error {
	for key, days := range values {
		name := strings.TrimPrefix(key, thresholdKeyPrefix)
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" || days <= 0 {
			continue
		}
		if err := s.alertConfigRepo.Upsert(name, days); err != nil {
			return err
		}
	}

	logger.Info("Alert thresholds saved", map[string]interface{}{
		"entries": len(values),
	})
	return nil
}
