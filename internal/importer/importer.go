// Package importer turns uploaded spreadsheets into candidate client names.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// headerDenylist holds first-column values that are almost certainly column
// headers rather than client names, in both supported languages.
var headerDenylist = map[string]struct{}{
	"name":     {},
	"client":   {},
	"company":  {},
	"שם לקוח":  {},
	"לקוח":     {},
	"שם החברה": {},
}

// ExtractNames parses an uploaded spreadsheet or CSV file and returns the
// candidate names found in the first column of its first sheet, in row order.
// Empty cells and denylisted header values are skipped row by row; a file that
// cannot be parsed at all fails as a whole.
func ExtractNames(filename string, r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(filename), err)
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readXLSX(data)
	case ".xls":
		rows, err = readXLS(data)
	case ".csv":
		rows, err = readCSV(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(filename), err)
	}

	return filterNames(rows), nil
}

func filterNames(rows [][]string) []string {
	var names []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		val := strings.TrimSpace(row[0])
		if val == "" {
			continue
		}
		if _, denied := headerDenylist[strings.ToLower(val)]; denied {
			continue
		}
		names = append(names, val)
	}
	return names
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		rows = append(rows, []string{row.Col(0)})
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
