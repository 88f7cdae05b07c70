package repository

import (
	"errors"
	"strings"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
	"gorm.io/gorm"
)

type DriverRepository interface {
	Create(driver *model.Driver) error
	FindAll(search string) ([]model.Driver, error)
	FindByID(id uint) (*model.Driver, error)
	FindByCPF(cpf string) (*model.Driver, error)
	// FindAllByName returns every driver whose name equals the given one
	// (case-insensitive). More than one result means the name is ambiguous
	// and the caller must not pick silently.
	FindAllByName(name string) ([]model.Driver, error)
}

type driverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(driver *model.Driver) error {
	if err := r.db.Create(driver).Error; err != nil {
		logger.Error("Failed to create driver in database", err, map[string]interface{}{
			"name": driver.Name,
		})
		return err
	}
	logger.Debug("Driver created in database", map[string]interface{}{
		"driver_id": driver.ID,
		"cpf":       driver.CPF,
	})
	return nil
}

func (r *driverRepository) FindAll(search string) ([]model.Driver, error) {
	query := r.db.Model(&model.Driver{}).Preload("Company")
	if search != "" {
		like := "%" + strings.ToUpper(search) + "%"
		query = query.Where("name LIKE ? OR cpf LIKE ?", like, "%"+search+"%")
	}

	var drivers []model.Driver
	if err := query.Order("name ASC").Find(&drivers).Error; err != nil {
		logger.Error("Failed to find drivers", err)
		return nil, err
	}
	return drivers, nil
}

func (r *driverRepository) FindByID(id uint) (*model.Driver, error) {
	var driver model.Driver
	err := r.db.Preload("Company").First(&driver, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *driverRepository) FindByCPF(cpf string) (*model.Driver, error) {
	var driver model.Driver
	err := r.db.Where("cpf = ?", cpf).First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *driverRepository) FindAllByName(name string) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.
		Where("name = ?", strings.ToUpper(strings.TrimSpace(name))).
		Order("id ASC").
		Find(&drivers).Error
	if err != nil {
		return nil, err
	}
	return drivers, nil
}
