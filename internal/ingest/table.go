package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .csv, .xls and .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// MissingColumnsError reports the required columns absent from an uploaded
// file. The whole file is rejected before any row is processed.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Table is an uploaded spreadsheet with normalized headers. Column names
// are matched after trimming, lowercasing and replacing spaces with
// underscores, so "Data Vencimento" and "data_vencimento" are the same
// column.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// ReadTable decodes an uploaded spreadsheet into a Table. CSV files are
// read with a Latin-1 decoder because regional exports routinely carry
// accented characters in that encoding.
func ReadTable(r io.Reader, filename string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readCSV(data)
	case ".xlsx":
		records, err = readXLSX(data)
	case ".xls":
		records, err = readXLS(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{index: map[string]int{}}, nil
	}

	t := &Table{index: make(map[string]int)}
	for i, h := range records[0] {
		name := NormalizeHeader(h)
		t.headers = append(t.headers, name)
		if _, dup := t.index[name]; !dup && name != "" {
			t.index[name] = i
		}
	}
	t.rows = records[1:]
	return t, nil
}

// NormalizeHeader lowers, trims and underscores a column name. Both BOM
// shapes are stripped: the plain U+FEFF from workbook cells, and the form a
// UTF-8 BOM takes after the CSV bytes pass through the Latin-1 decoder.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.TrimPrefix(h, "\u00EF\u00BB\u00BF")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// Require fails with MissingColumnsError when any of the given columns is
// absent, listing every missing one.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := t.index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Value returns the trimmed cell at the given row for a normalized column
// name, or "" when the column is unknown or the row is short.
func (t *Table) Value(row int, col string) string {
	idx, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.rows) || idx >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][idx])
}

func readCSV(data []byte) ([][]string, error) {
	utf8Reader := transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder())
	cr := csv.NewReader(utf8Reader)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("no sheets found in xlsx file")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("no sheets found in xls file")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
