package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	apperrors "github.com/frotadocs/frotadocs-backend/internal/errors"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

type DriverController struct {
	driverService service.DriverService
}

func NewDriverController(driverService service.DriverService) *DriverController {
	return &DriverController{driverService: driverService}
}

type DriverRequest struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	CNH       string `json:"cnh"`
	Operation string `json:"operation"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

func (ctrl *DriverController) ListDrivers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	drivers, err := ctrl.driverService.List(c.Query("search"))
	if err != nil {
		log.Error("Failed to list drivers", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drivers": drivers,
		"count":   len(drivers),
	})
}

func (ctrl *DriverController) CreateDriver(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, map[string]string{
			"name":       "obrigatório",
			"cpf":        "obrigatório",
			"company_id": "obrigatório",
		})
		return
	}

	driver, err := ctrl.driverService.Create(service.DriverCreateInput{
		Name:      req.Name,
		CPF:       req.CPF,
		CNH:       req.CNH,
		Operation: req.Operation,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCPF):
			apperrors.BadRequest(c, apperrors.DriverInvalidCPF, "CPF deve conter 11 dígitos")
		case errors.Is(err, service.ErrCompanyNotFound):
			apperrors.NotFound(c, apperrors.CompanyNotFound, "Transportador não encontrado")
		case errors.Is(err, service.ErrDriverExists):
			apperrors.Conflict(c, apperrors.DriverCPFExists, "CPF já cadastrado")
		default:
			log.Error("Failed to create driver", err, nil)
			info := apperrors.ParseError(err, "driver")
			apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	c.JSON(http.StatusCreated, driver)
}
