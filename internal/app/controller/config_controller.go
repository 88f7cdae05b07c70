package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	apperrors "github.com/frotadocs/frotadocs-backend/internal/errors"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

type ConfigController struct {
	configService service.ConfigService
}

func NewConfigController(configService service.ConfigService) *ConfigController {
	return &ConfigController{configService: configService}
}

func (ctrl *ConfigController) ListThresholds(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	entries, err := ctrl.configService.List()
	if err != nil {
		log.Error("Failed to list alert thresholds", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"thresholds": entries,
		"count":      len(entries),
	})
}

// SaveThresholds accepts the management form as a flat JSON object. Keys may
// carry the legacy "prazo_" prefix per category.
func (ctrl *ConfigController) SaveThresholds(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var values map[string]int
	if err := c.ShouldBindJSON(&values); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Corpo da requisição inválido")
		return
	}
	if len(values) == 0 {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Nenhum prazo informado")
		return
	}

	if err := ctrl.configService.Save(values); err != nil {
		log.Error("Failed to save alert thresholds", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prazos de alerta atualizados"})
}
