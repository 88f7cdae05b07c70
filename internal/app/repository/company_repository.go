package repository

import (
	"errors"
	"strings"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *model.Company) error
	FindAll(search string) ([]model.Company, error)
	FindByID(id uint) (*model.Company, error)
	// FindByCNPJ and the other lookup helpers return (nil, nil) when no row
	// matches; ingestion treats absence as data, not as failure.
	FindByCNPJ(cnpj string) (*model.Company, error)
	FindByNameContains(name string) (*model.Company, error)
	ExistsByLegalName(name string) (bool, error)
	UpdateStatus(id uint, status model.CompanyStatus) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *model.Company) error {
	if err := r.db.Create(company).Error; err != nil {
		logger.Error("Failed to create company in database", err, map[string]interface{}{
			"legal_name": company.LegalName,
		})
		return err
	}
	logger.Debug("Company created in database", map[string]interface{}{
		"company_id": company.ID,
		"cnpj":       company.CNPJ,
	})
	return nil
}

func (r *companyRepository) FindAll(search string) ([]model.Company, error) {
	query := r.db.Model(&model.Company{})
	if search != "" {
		like := "%" + strings.ToUpper(search) + "%"
		query = query.Where("legal_name LIKE ? OR cnpj LIKE ?", like, "%"+search+"%")
	}

	var companies []model.Company
	if err := query.Order("legal_name ASC").Find(&companies).Error; err != nil {
		logger.Error("Failed to find companies", err)
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) FindByID(id uint) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByCNPJ(cnpj string) (*model.Company, error) {
	var company model.Company
	err := r.db.Where("cnpj = ?", cnpj).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByNameContains(name string) (*model.Company, error) {
	// Legal names are stored uppercase, so uppercasing the needle makes
	// LIKE behave case-insensitively on every backend.
	like := "%" + strings.ToUpper(strings.TrimSpace(name)) + "%"

	var company model.Company
	err := r.db.Where("legal_name LIKE ?", like).Order("id ASC").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ExistsByLegalName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Company{}).
		Where("legal_name = ?", strings.ToUpper(strings.TrimSpace(name))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *companyRepository) UpdateStatus(id uint, status model.CompanyStatus) error {
	var company model.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return err
	}
	company.Status = status
	if err := r.db.Save(&company).Error; err != nil {
		logger.Error("Failed to update company status", err, map[string]interface{}{
			"company_id": id,
		})
		return err
	}
	return nil
}
