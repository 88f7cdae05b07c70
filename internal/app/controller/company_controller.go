package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	apperrors "github.com/frotadocs/frotadocs-backend/internal/errors"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

type CompanyController struct {
	companyService service.CompanyService
}

func NewCompanyController(companyService service.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

type CompanyRequest struct {
	LegalName string `json:"legal_name" binding:"required"`
	CNPJ      string `json:"cnpj" binding:"required"`
}

type CompanyStatusRequest struct {
	Status model.CompanyStatus `json:"status" binding:"required"`
}

func (ctrl *CompanyController) ListCompanies(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companies, err := ctrl.companyService.List(c.Query("search"))
	if err != nil {
		log.Error("Failed to list companies", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

func (ctrl *CompanyController) CreateCompany(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, map[string]string{
			"legal_name": "obrigatório",
			"cnpj":       "obrigatório",
		})
		return
	}

	company, err := ctrl.companyService.Create(req.LegalName, req.CNPJ)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCNPJ):
			apperrors.BadRequest(c, apperrors.CompanyInvalidCNPJ, "CNPJ deve conter 14 dígitos")
		case errors.Is(err, service.ErrCompanyExists):
			apperrors.Conflict(c, apperrors.CompanyCNPJExists, "CNPJ já cadastrado")
		default:
			log.Error("Failed to create company", err, nil)
			info := apperrors.ParseError(err, "company")
			apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		}
		return
	}

	c.JSON(http.StatusCreated, company)
}

// UpdateCompanyStatus activates or deactivates a carrier. Carriers are never
// deleted, history stays attached.
func (ctrl *CompanyController) UpdateCompanyStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "ID inválido")
		return
	}

	var req CompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Informe o novo status")
		return
	}
	if req.Status != model.CompanyActive && req.Status != model.CompanyInactive {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Status deve ser active ou inactive")
		return
	}

	if err := ctrl.companyService.UpdateStatus(uint(id), req.Status); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			apperrors.NotFound(c, apperrors.CompanyNotFound, "Transportador não encontrado")
			return
		}
		log.Error("Failed to update company status", err, map[string]interface{}{
			"company_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status atualizado"})
}
