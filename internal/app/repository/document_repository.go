package repository

import (
	"errors"
	"sort"
	"strings"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
	"gorm.io/gorm"
)

// DocumentRepository accesses the three parallel document tables. Lookup
// methods return (nil, nil) when no row matches.
type DocumentRepository interface {
	FindCompanyDocument(companyID uint, name string) (*model.CompanyDocument, error)
	FindDriverDocument(driverID uint, name string) (*model.DriverDocument, error)
	FindVehicleDocument(vehicleID uint, name string) (*model.VehicleDocument, error)

	SaveCompanyDocument(doc *model.CompanyDocument) error
	SaveDriverDocument(doc *model.DriverDocument) error
	SaveVehicleDocument(doc *model.VehicleDocument) error

	AllCompanyDocuments() ([]model.CompanyDocument, error)
	AllDriverDocuments() ([]model.DriverDocument, error)
	AllVehicleDocuments() ([]model.VehicleDocument, error)

	// DistinctNames returns the union of document-type labels across all
	// three tables, used to build the alert configuration screen.
	DistinctNames() ([]string, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) FindCompanyDocument(companyID uint, name string) (*model.CompanyDocument, error) {
	var doc model.CompanyDocument
	err := r.db.
		Where("company_id = ? AND name = ?", companyID, strings.ToUpper(strings.TrimSpace(name))).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindDriverDocument(driverID uint, name string) (*model.DriverDocument, error) {
	var doc model.DriverDocument
	err := r.db.
		Where("driver_id = ? AND name = ?", driverID, strings.ToUpper(strings.TrimSpace(name))).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindVehicleDocument(vehicleID uint, name string) (*model.VehicleDocument, error) {
	var doc model.VehicleDocument
	err := r.db.
		Where("vehicle_id = ? AND name = ?", vehicleID, strings.ToUpper(strings.TrimSpace(name))).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) SaveCompanyDocument(doc *model.CompanyDocument) error {
	if err := r.db.Save(doc).Error; err != nil {
		logger.Error("Failed to save company document", err, map[string]interface{}{
			"company_id": doc.CompanyID,
			"name":       doc.Name,
		})
		return err
	}
	return nil
}

func (r *documentRepository) SaveDriverDocument(doc *model.DriverDocument) error {
	if err := r.db.Save(doc).Error; err != nil {
		logger.Error("Failed to save driver document", err, map[string]interface{}{
			"driver_id": doc.DriverID,
			"name":      doc.Name,
		})
		return err
	}
	return nil
}

func (r *documentRepository) SaveVehicleDocument(doc *model.VehicleDocument) error {
	if err := r.db.Save(doc).Error; err != nil {
		logger.Error("Failed to save vehicle document", err, map[string]interface{}{
			"vehicle_id": doc.VehicleID,
			"name":       doc.Name,
		})
		return err
	}
	return nil
}

func (r *documentRepository) AllCompanyDocuments() ([]model.CompanyDocument, error) {
	var docs []model.CompanyDocument
	if err := r.db.Preload("Company").Find(&docs).Error; err != nil {
		logger.Error("Failed to load company documents", err)
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) AllDriverDocuments() ([]model.DriverDocument, error) {
	var docs []model.DriverDocument
	if err := r.db.Preload("Driver").Preload("Driver.Company").Find(&docs).Error; err != nil {
		logger.Error("Failed to load driver documents", err)
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) AllVehicleDocuments() ([]model.VehicleDocument, error) {
	var docs []model.VehicleDocument
	if err := r.db.Preload("Vehicle").Preload("Vehicle.Company").Find(&docs).Error; err != nil {
		logger.Error("Failed to load vehicle documents", err)
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) DistinctNames() ([]string, error) {
	names := make(map[string]struct{})
	for _, table := range []string{"company_documents", "driver_documents", "vehicle_documents"} {
		var batch []string
		if err := r.db.Table(table).Distinct("name").Order("name ASC").Pluck("name", &batch).Error; err != nil {
			return nil, err
		}
		for _, n := range batch {
			names[n] = struct{}{}
		}
	}

	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
