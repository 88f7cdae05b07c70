package service

import (
	"errors"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
)

var (
	ErrVehicleNotFound = errors.New("veículo não encontrado")
	ErrVehicleExists   = errors.New("veículo já cadastrado")
)

type VehicleCreateInput struct {
	Plate     string
	Operation string
	CompanyID uint
}

type VehicleService interface {
	List(search string) ([]model.Vehicle, error)
	Get(id uint) (*model.Vehicle, error)
	Create(input VehicleCreateInput) (*model.Vehicle, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	companyRepo repository.CompanyRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, companyRepo repository.CompanyRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, companyRepo: companyRepo}
}

func (s *vehicleService) List(search string) ([]model.Vehicle, error) {
	return s.vehicleRepo.FindAll(search)
}

func (s *vehicleService) Get(id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *vehicleService) Create(input VehicleCreateInput) (*model.Vehicle, error) {
	company, err := s.companyRepo.FindByID(input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	existing, err := s.vehicleRepo.FindByPlate(input.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrVehicleExists
	}

	vehicle := &model.Vehicle{
		Plate:     input.Plate,
		Operation: input.Operation,
		CompanyID: input.CompanyID,
	}
	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}
