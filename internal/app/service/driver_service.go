package service

import (
	"errors"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
	"github.com/frotadocs/frotadocs-backend/pkg/docid"
)

var (
	ErrDriverNotFound = errors.New("motorista não encontrado")
	ErrDriverExists   = errors.New("motorista já cadastrado")
	ErrInvalidCPF     = errors.New("CPF inválido")
)

// DriverCreateInput carries the registration form fields. CNH and Operation
// are optional.
type DriverCreateInput struct {
	Name      string
	CPF       string
	CNH       string
	Operation string
	CompanyID uint
}

type DriverService interface {
	List(search string) ([]model.Driver, error)
	Get(id uint) (*model.Driver, error)
	Create(input DriverCreateInput) (*model.Driver, error)
}

type driverService struct {
	driverRepo  repository.DriverRepository
	companyRepo repository.CompanyRepository
}

func NewDriverService(driverRepo repository.DriverRepository, companyRepo repository.CompanyRepository) DriverService {
	return &driverService{driverRepo: driverRepo, companyRepo: companyRepo}
}

func (s *driverService) List(search string) ([]model.Driver, error) {
	return s.driverRepo.FindAll(search)
}

func (s *driverService) Get(id uint) (*model.Driver, error) {
	driver, err := s.driverRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

func (s *driverService) Create(input DriverCreateInput) (*model.Driver, error) {
	cpf, err := docid.FormatCPF(input.CPF)
	if err != nil {
		return nil, ErrInvalidCPF
	}

	company, err := s.companyRepo.FindByID(input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	existing, err := s.driverRepo.FindByCPF(cpf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDriverExists
	}

	driver := &model.Driver{
		Name:      input.Name,
		CPF:       cpf,
		Operation: input.Operation,
		CompanyID: input.CompanyID,
	}
	if input.CNH != "" {
		driver.CNH = &input.CNH
	}
	if err := s.driverRepo.Create(driver); err != nil {
		return nil, err
	}
	return driver, nil
}
