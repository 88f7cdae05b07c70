package ingest

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func TestReadTable_CSVLatin1(t *testing.T) {
	// Encode the payload as Latin-1 the way regional exports do.
	enc := charmap.ISO8859_1.NewEncoder()
	raw, err := enc.String("razao_social,cnpj\nTRANSPORTES JOSÉ LTDA,12345678000195\n")
	require.NoError(t, err)

	table, err := ReadTable(bytes.NewReader([]byte(raw)), "empresas.csv")
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "TRANSPORTES JOSÉ LTDA", table.Value(0, "razao_social"))
	assert.Equal(t, "12345678000195", table.Value(0, "cnpj"))
}

func TestReadTable_CSVByteOrderMark(t *testing.T) {
	// A UTF-8 BOM ahead of the header survives the Latin-1 decoder as
	// three transcoded runes; the first column must still resolve.
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("razao_social,cnpj\nACME,12345678000195\n")...)

	table, err := ReadTable(bytes.NewReader(raw), "empresas.csv")
	require.NoError(t, err)
	assert.NoError(t, table.Require("razao_social", "cnpj"))
	assert.Equal(t, "ACME", table.Value(0, "razao_social"))
}

func TestReadTable_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Razao Social", "CNPJ"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Transportes José Ltda", "12345678000195"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := ReadTable(&buf, "empresas.xlsx")
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.NoError(t, table.Require("razao_social", "cnpj"))
	assert.Equal(t, "Transportes José Ltda", table.Value(0, "razao_social"))
	assert.Equal(t, "12345678000195", table.Value(0, "cnpj"))
}

func TestReadTable_HeaderNormalization(t *testing.T) {
	csv := "Tipo Evento, Nome ,Data Vencimento\nCNH,JOAO,15/03/2024\n"
	table, err := ReadTable(strings.NewReader(csv), "docs.CSV")
	require.NoError(t, err)
	assert.NoError(t, table.Require("tipo_evento", "nome", "data_vencimento"))
	assert.Equal(t, "CNH", table.Value(0, "tipo_evento"))
}

func TestReadTable_RequireReportsAllMissing(t *testing.T) {
	table, err := ReadTable(strings.NewReader("placa\nABC1D23\n"), "veiculos.csv")
	require.NoError(t, err)

	err = table.Require("placa", "cnpj_transportador", "operacao")
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"cnpj_transportador", "operacao"}, missing.Columns)
}

func TestReadTable_UnsupportedExtension(t *testing.T) {
	_, err := ReadTable(strings.NewReader("x"), "empresas.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadTable_ShortRow(t *testing.T) {
	table, err := ReadTable(strings.NewReader("nome,cpf,cnh\nJOAO\n"), "motoristas.csv")
	require.NoError(t, err)
	assert.Equal(t, "JOAO", table.Value(0, "nome"))
	assert.Equal(t, "", table.Value(0, "cnh"))
}

func TestParseDueDate_DayFirst(t *testing.T) {
	parsed, err := ParseDueDate("15/03/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDueDate_AcceptedLayouts(t *testing.T) {
	for _, in := range []string{"01/02/2024", "01-02-2024", "01.02.2024", "2024-02-01"} {
		parsed, err := ParseDueDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), parsed, in)
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "sem data", "40/40/2024"} {
		_, err := ParseDueDate(in)
		assert.Error(t, err, in)
	}
}
