package service

import (
	"strings"
	"testing"
	"time"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/db"
	"github.com/frotadocs/frotadocs-backend/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"
)

func setupIngestServiceTest(t *testing.T) (IngestService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewIngestService(testDB), testDB
}

// newTable encodes the CSV text as Latin-1, the way exported fleet
// spreadsheets arrive, and parses it through the regular upload path.
func newTable(t *testing.T, csvText string) *ingest.Table {
	t.Helper()

	encoded, err := charmap.ISO8859_1.NewEncoder().String(csvText)
	require.NoError(t, err)

	table, err := ingest.ReadTable(strings.NewReader(encoded), "upload.csv")
	require.NoError(t, err)
	return table
}

func TestIngestService_ImportCompanies(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	table := newTable(t, "razao_social,cnpj\n"+
		"Transportes Silva Ltda,12345678000195\n"+
		"Logística Norte SA,98.765.432/0001-10\n")

	report, err := ingestService.ImportCompanies(table)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Empty(t, report.AlreadyExists)

	var companies []model.Company
	testDB.Order("id ASC").Find(&companies)
	require.Len(t, companies, 2)
	assert.Equal(t, "TRANSPORTES SILVA LTDA", companies[0].LegalName)
	assert.Equal(t, "12.345.678/0001-95", companies[0].CNPJ)
	assert.Equal(t, "98.765.432/0001-10", companies[1].CNPJ)
}

func TestIngestService_ImportCompanies_DuplicateCNPJ(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	testDB.Create(&model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"})

	// Same CNPJ with noise punctuation, and a distinct CNPJ reusing the
	// stored legal name. Both land in the already-exists bucket.
	table := newTable(t, "razao_social,cnpj\n"+
		"Outra Razão,12.345.678/0001-95\n"+
		"transportes silva ltda,98765432000110\n")

	report, err := ingestService.ImportCompanies(table)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
	assert.ElementsMatch(t, []string{"12.345.678/0001-95", "TRANSPORTES SILVA LTDA"}, report.AlreadyExists)

	var count int64
	testDB.Model(&model.Company{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIngestService_ImportCompanies_SkipsMalformedRows(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	table := newTable(t, "razao_social,cnpj\n"+
		"Sem CNPJ,\n"+
		"CNPJ Curto,12345\n"+
		"Transportes Válida,12345678000195\n")

	report, err := ingestService.ImportCompanies(table)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)

	var count int64
	testDB.Model(&model.Company{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestIngestService_ImportCompanies_MissingColumns(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	table := newTable(t, "razao_social\nTransportes Silva Ltda\n")

	_, err := ingestService.ImportCompanies(table)
	var missing *ingest.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"cnpj"}, missing.Columns)

	// Rejected wholesale: no partial writes.
	var count int64
	testDB.Model(&model.Company{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestIngestService_ImportDrivers(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	testDB.Create(&model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"})

	table := newTable(t, "nome,cpf,cnh,operacao,cnpj_transportador\n"+
		"João Silva,12345678901,11122233344,Grãos,12345678000195\n"+
		"Maria Souza,98765432109,,Contêiner,12.345.678/0001-95\n"+
		"Sem Empresa,11111111111,,,99999999000199\n"+
		"CPF Ruim,1234,,,12345678000195\n")

	report, err := ingestService.ImportDrivers(table)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, []string{"99999999000199"}, report.UnmatchedOwners)

	var drivers []model.Driver
	testDB.Order("id ASC").Find(&drivers)
	require.Len(t, drivers, 2)
	assert.Equal(t, "JOÃO SILVA", drivers[0].Name)
	assert.Equal(t, "123.456.789-01", drivers[0].CPF)
	require.NotNil(t, drivers[0].CNH)
	assert.Equal(t, "11122233344", *drivers[0].CNH)
	assert.Nil(t, drivers[1].CNH)
}

func TestIngestService_ImportDrivers_Reimport(t *testing.T) {
	ingestService, _ := setupIngestServiceTest(t)

	companies := newTable(t, "razao_social,cnpj\nTransportes Silva Ltda,12345678000195\n")
	_, err := ingestService.ImportCompanies(companies)
	require.NoError(t, err)

	table := newTable(t, "nome,cpf,cnh,operacao,cnpj_transportador\n"+
		"João Silva,12345678901,,Grãos,12345678000195\n")

	first, err := ingestService.ImportDrivers(table)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := ingestService.ImportDrivers(table)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 0, second.Updated)
}

func TestIngestService_ImportVehicles(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	testDB.Create(&model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"})

	table := newTable(t, "placa,operacao,cnpj_transportador\n"+
		"abc1d23,Grãos,12345678000195\n"+
		"ABC1D23,Grãos,12345678000195\n"+
		"XYZ9A88,Carga Geral,99999999000199\n")

	report, err := ingestService.ImportVehicles(table)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, []string{"99999999000199"}, report.UnmatchedOwners)

	var vehicles []model.Vehicle
	testDB.Find(&vehicles)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "ABC1D23", vehicles[0].Plate)
}

func TestIngestService_ImportCompanyDocuments_Upsert(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	testDB.Create(&model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"})

	table := newTable(t, "nome,tipo_evento,data_vencimento\n"+
		"silva,Licença ANTT,15/03/2024\n")

	first, err := ingestService.ImportCompanyDocuments(table)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)
	assert.Equal(t, 0, first.Updated)

	// Identical batch is a no-op.
	second, err := ingestService.ImportCompanyDocuments(table)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 0, second.Updated)

	// New due date for the same label updates in place.
	renewed := newTable(t, "nome,tipo_evento,data_vencimento\n"+
		"silva,Licença ANTT,20/06/2024\n")
	third, err := ingestService.ImportCompanyDocuments(renewed)
	require.NoError(t, err)
	assert.Equal(t, 0, third.Created)
	assert.Equal(t, 1, third.Updated)

	var docs []model.CompanyDocument
	testDB.Find(&docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "LICENÇA ANTT", docs[0].Name)
	assert.True(t, docs[0].DueDate.Equal(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)))
}

func TestIngestService_ImportCompanyDocuments_UnmatchedOwner(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	table := newTable(t, "nome,tipo_evento,data_vencimento\n"+
		"Transportadora Fantasma,CRLV,15/03/2024\n")

	report, err := ingestService.ImportCompanyDocuments(table)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, []string{"TRANSPORTADORA FANTASMA"}, report.UnmatchedOwners)

	var count int64
	testDB.Model(&model.CompanyDocument{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestIngestService_ImportDriverDocuments_AmbiguousName(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	company := &model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"}
	testDB.Create(company)
	testDB.Create(&model.Driver{Name: "João Silva", CPF: "12345678901", CompanyID: company.ID})
	testDB.Create(&model.Driver{Name: "JOÃO SILVA", CPF: "98765432109", CompanyID: company.ID})
	testDB.Create(&model.Driver{Name: "Maria Souza", CPF: "11122233344", CompanyID: company.ID})

	table := newTable(t, "nome,tipo_evento,data_vencimento\n"+
		"joão silva,CNH,15/03/2024\n"+
		"Maria Souza,CNH,15/03/2024\n")

	report, err := ingestService.ImportDriverDocuments(table)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, []string{"JOÃO SILVA"}, report.AmbiguousOwners)
	assert.Empty(t, report.UnmatchedOwners)

	// Only the unambiguous driver received a document.
	var docs []model.DriverDocument
	testDB.Find(&docs)
	require.Len(t, docs, 1)
}

func TestIngestService_ImportVehicleDocuments(t *testing.T) {
	ingestService, testDB := setupIngestServiceTest(t)

	company := &model.Company{LegalName: "Transportes Silva Ltda", CNPJ: "12345678000195"}
	testDB.Create(company)
	testDB.Create(&model.Vehicle{Plate: "ABC1D23", CompanyID: company.ID})

	table := newTable(t, "nome,tipo_evento,data_vencimento\n"+
		"abc1d23,CRLV 2024,15/03/2024\n"+
		"ZZZ0Z00,CRLV 2024,15/03/2024\n"+
		"ABC1D23,CRLV 2024,data inválida\n")

	report, err := ingestService.ImportVehicleDocuments(table)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, []string{"ZZZ0Z00"}, report.UnmatchedOwners)

	var docs []model.VehicleDocument
	testDB.Find(&docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "CRLV 2024", docs[0].Name)
}
