package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	apperrors "github.com/frotadocs/frotadocs-backend/internal/errors"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

type VehicleController struct {
	vehicleService service.VehicleService
}

func NewVehicleController(vehicleService service.VehicleService) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

type VehicleRequest struct {
	Plate     string `json:"plate" binding:"required"`
	Operation string `json:"operation"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

func (ctrl *VehicleController) ListVehicles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	vehicles, err := ctrl.vehicleService.List(c.Query("search"))
	if err != nil {
		log.Error("Failed to list vehicles", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

func (ctrl *VehicleController) CreateVehicle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, map[string]string{
			"plate":      "obrigatório",
			"company_id": "obrigatório",
		})
		return
	}

	vehicle, err := ctrl.vehicleService.Create(service.VehicleCreateInput{
		Plate:     req.Plate,
		Operation: req.Operation,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.CompanyNotFound, "Transportador não encontrado")
		case errors.Is(err, service.ErrVehicleExists):
			apperrors.Conflict(c, apperrors.VehiclePlateExists, "Placa já cadastrada")
		default:
			log.Error("Failed to create vehicle", err, nil)
			info := apperrors.ParseError(err, "vehicle")
			apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}
