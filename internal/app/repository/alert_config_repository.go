package repository

import (
	"errors"
	"strings"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
	"gorm.io/gorm"
)

type AlertConfigRepository interface {
	All() ([]model.AlertConfig, error)
	Upsert(documentName string, leadTimeDays int) error
	// Thresholds returns the stored configuration as a category -> days map.
	Thresholds() (map[string]int, error)
}

type alertConfigRepository struct {
	db *gorm.DB
}

func NewAlertConfigRepository(db *gorm.DB) AlertConfigRepository {
	return &alertConfigRepository{db: db}
}

func (r *alertConfigRepository) All() ([]model.AlertConfig, error) {
	var configs []model.AlertConfig
	if err := r.db.Order("document_name ASC").Find(&configs).Error; err != nil {
		logger.Error("Failed to load alert configs", err)
		return nil, err
	}
	return configs, nil
}

func (r *alertConfigRepository) Upsert(documentName string, leadTimeDays int) error {
	name := strings.ToUpper(strings.TrimSpace(documentName))

	var config model.AlertConfig
	err := r.db.Where("document_name = ?", name).First(&config).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		config = model.AlertConfig{DocumentName: name, LeadTimeDays: leadTimeDays}
		return r.db.Create(&config).Error
	case err != nil:
		return err
	default:
		config.LeadTimeDays = leadTimeDays
		return r.db.Save(&config).Error
	}
}

func (r *alertConfigRepository) Thresholds() (map[string]int, error) {
	configs, err := r.All()
	if err != nil {
		return nil, err
	}
	thresholds := make(map[string]int, len(configs))
	for _, c := range configs {
		thresholds[c.DocumentName] = c.LeadTimeDays
	}
	return thresholds, nil
}
