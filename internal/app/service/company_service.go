package service

import (
	"errors"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
	"github.com/frotadocs/frotadocs-backend/pkg/docid"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
)

var (
	ErrCompanyNotFound = errors.New("transportador não encontrado")
	ErrCompanyExists   = errors.New("transportador já cadastrado")
	ErrInvalidCNPJ     = errors.New("CNPJ inválido")
)

type CompanyService interface {
	List(search string) ([]model.Company, error)
	Get(id uint) (*model.Company, error)
	Create(legalName, cnpj string) (*model.Company, error)
	UpdateStatus(id uint, status model.CompanyStatus) error
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) List(search string) ([]model.Company, error) {
	return s.companyRepo.FindAll(search)
}

func (s *companyService) Get(id uint) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

func (s *companyService) Create(legalName, cnpj string) (*model.Company, error) {
	formatted, err := docid.FormatCNPJ(cnpj)
	if err != nil {
		return nil, ErrInvalidCNPJ
	}

	existing, err := s.companyRepo.FindByCNPJ(formatted)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCompanyExists
	}

	company := &model.Company{LegalName: legalName, CNPJ: formatted}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}

	logger.Info("Company registered", map[string]interface{}{
		"company_id": company.ID,
		"cnpj":       company.CNPJ,
	})
	return company, nil
}

func (s *companyService) UpdateStatus(id uint, status model.CompanyStatus) error {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}
	return s.companyRepo.UpdateStatus(id, status)
}
