package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	apperrors "github.com/frotadocs/frotadocs-backend/internal/errors"
	"github.com/frotadocs/frotadocs-backend/internal/ingest"
	"github.com/frotadocs/frotadocs-backend/internal/middleware"
)

// UploadController receives fleet spreadsheets and hands them to the
// reconciler. One endpoint per entity kind, all sharing the same multipart
// contract: a single "file" field with a .csv, .xls or .xlsx attachment.
type UploadController struct {
	ingestService  service.IngestService
	maxUploadBytes int64
}

func NewUploadController(ingestService service.IngestService, maxUploadBytes int64) *UploadController {
	return &UploadController{ingestService: ingestService, maxUploadBytes: maxUploadBytes}
}

func (ctrl *UploadController) UploadCompanies(c *gin.Context) {
	ctrl.handle(c, "companies", ctrl.ingestService.ImportCompanies)
}

func (ctrl *UploadController) UploadDrivers(c *gin.Context) {
	ctrl.handle(c, "drivers", ctrl.ingestService.ImportDrivers)
}

func (ctrl *UploadController) UploadVehicles(c *gin.Context) {
	ctrl.handle(c, "vehicles", ctrl.ingestService.ImportVehicles)
}

func (ctrl *UploadController) UploadCompanyDocuments(c *gin.Context) {
	ctrl.handle(c, "company-documents", ctrl.ingestService.ImportCompanyDocuments)
}

func (ctrl *UploadController) UploadDriverDocuments(c *gin.Context) {
	ctrl.handle(c, "driver-documents", ctrl.ingestService.ImportDriverDocuments)
}

func (ctrl *UploadController) UploadVehicleDocuments(c *gin.Context) {
	ctrl.handle(c, "vehicle-documents", ctrl.ingestService.ImportVehicleDocuments)
}

func (ctrl *UploadController) handle(c *gin.Context, kind string, importFn func(*ingest.Table) (*service.Report, error)) {
	log := middleware.GetLoggerFromContext(c)

	header, err := c.FormFile("file")
	if err != nil {
		log.Warn("Upload without file field", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Envie a planilha no campo \"file\"")
		return
	}

	if header.Size > ctrl.maxUploadBytes {
		log.Warn("Upload too large", map[string]interface{}{
			"kind": kind,
			"size": header.Size,
		})
		apperrors.RespondWithError(c, http.StatusRequestEntityTooLarge,
			apperrors.UploadFileTooLarge, "Arquivo excede o tamanho máximo permitido")
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, map[string]interface{}{"kind": kind})
		apperrors.InternalError(c, "")
		return
	}
	defer file.Close()

	table, err := ingest.ReadTable(file, header.Filename)
	if err != nil {
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType,
				"Formato não suportado. Envie um arquivo .csv, .xls ou .xlsx")
			return
		}
		log.Warn("Unreadable spreadsheet", map[string]interface{}{
			"kind":     kind,
			"filename": header.Filename,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.UploadFailed, "Não foi possível ler a planilha")
		return
	}

	report, err := importFn(table)
	if err != nil {
		var missing *ingest.MissingColumnsError
		if errors.As(err, &missing) {
			apperrors.BadRequest(c, apperrors.UploadMissingColumns,
				"Colunas obrigatórias ausentes: "+strings.Join(missing.Columns, ", "))
			return
		}
		log.Error("Ingestion batch failed", err, map[string]interface{}{"kind": kind})
		apperrors.InternalError(c, "Falha ao processar a planilha. Nenhuma linha foi importada")
		return
	}

	log.Info("Spreadsheet processed", map[string]interface{}{
		"kind":    kind,
		"created": report.Created,
		"updated": report.Updated,
	})
	c.JSON(http.StatusOK, report)
}
