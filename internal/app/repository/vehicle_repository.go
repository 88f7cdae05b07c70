package repository

import (
	"errors"
	"strings"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(vehicle *model.Vehicle) error
	FindAll(search string) ([]model.Vehicle, error)
	FindByID(id uint) (*model.Vehicle, error)
	FindByPlate(plate string) (*model.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(vehicle *model.Vehicle) error {
	if err := r.db.Create(vehicle).Error; err != nil {
		logger.Error("Failed to create vehicle in database", err, map[string]interface{}{
			"plate": vehicle.Plate,
		})
		return err
	}
	logger.Debug("Vehicle created in database", map[string]interface{}{
		"vehicle_id": vehicle.ID,
		"plate":      vehicle.Plate,
	})
	return nil
}

func (r *vehicleRepository) FindAll(search string) ([]model.Vehicle, error) {
	query := r.db.Model(&model.Vehicle{}).Preload("Company")
	if search != "" {
		like := "%" + strings.ToUpper(search) + "%"
		query = query.Where("plate LIKE ?", like)
	}

	var vehicles []model.Vehicle
	if err := query.Order("plate ASC").Find(&vehicles).Error; err != nil {
		logger.Error("Failed to find vehicles", err)
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) FindByID(id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.Preload("Company").First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindByPlate(plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.Where("plate = ?", strings.ToUpper(strings.TrimSpace(plate))).First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}
