package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	"github.com/frotadocs/frotadocs-backend/internal/db"
)

func setupUploadControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	uploadController := NewUploadController(service.NewIngestService(testDB), 10<<20)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/uploads/companies", uploadController.UploadCompanies)
	router.POST("/api/v1/uploads/company-documents", uploadController.UploadCompanyDocuments)

	return router, testDB
}

// multipartCSV builds the request body with the spreadsheet in the "file"
// field, encoded Latin-1 like real fleet exports.
func multipartCSV(t *testing.T, filename, csvText string) (*bytes.Buffer, string) {
	t.Helper()

	encoded, err := charmap.ISO8859_1.NewEncoder().String(csvText)
	require.NoError(t, err)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(encoded))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadController_UploadCompanies(t *testing.T) {
	router, testDB := setupUploadControllerTest(t)

	body, contentType := multipartCSV(t, "empresas.csv",
		"razao_social,cnpj\nTransportes Silva Ltda,12345678000195\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/companies", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report service.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Created)

	var count int64
	testDB.Model(&model.Company{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUploadController_UploadCompanies_MissingColumns(t *testing.T) {
	router, _ := setupUploadControllerTest(t)

	body, contentType := multipartCSV(t, "empresas.csv", "razao_social\nTransportes Silva Ltda\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/companies", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "UPLOAD_MISSING_COLUMNS", response["error"])
	assert.Contains(t, response["message"], "cnpj")
}

func TestUploadController_UploadCompanies_UnsupportedExtension(t *testing.T) {
	router, _ := setupUploadControllerTest(t)

	body, contentType := multipartCSV(t, "empresas.pdf", "razao_social,cnpj\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/companies", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "UPLOAD_INVALID_FILE_TYPE", response["error"])
}

func TestUploadController_UploadCompanies_NoFile(t *testing.T) {
	router, _ := setupUploadControllerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/companies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadController_UploadCompanyDocuments(t *testing.T) {
	router, testDB := setupUploadControllerTest(t)

	testDB.Create(&model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"})

	body, contentType := multipartCSV(t, "docs.csv",
		"nome,tipo_evento,data_vencimento\nsilva,Licença ANTT,15/03/2024\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/company-documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report service.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Created)
}
