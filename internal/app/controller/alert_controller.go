package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	apperrors "github.com/frotadocs/frotadocs-backend/internal/errors"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

type AlertController struct {
	alertService service.AlertService
}

func NewAlertController(alertService service.AlertService) *AlertController {
	return &AlertController{alertService: alertService}
}

// GetAlerts returns the expiry dashboard. Query filters narrow the item
// list; the summary counters always cover the whole fleet.
func (ctrl *AlertController) GetAlerts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	query := service.DashboardQuery{
		Kind:        c.Query("kind"),
		Status:      c.Query("status"),
		Search:      c.Query("search"),
		HideExpired: strings.EqualFold(c.DefaultQuery("hide_expired", "false"), "true"),
	}

	if raw := c.Query("company_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "company_id inválido")
			return
		}
		query.CompanyID = uint(id)
	}

	dashboard, err := ctrl.alertService.Dashboard(query)
	if err != nil {
		log.Error("Failed to build alert dashboard", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
