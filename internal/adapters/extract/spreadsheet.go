package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"ordina/internal/ports"
)

// maxRows bounds how much of a sheet is serialized; the first rows carry
// the headers and enough cells to classify on.
const maxRows = 20

// Spreadsheet serializes the first rows of a workbook's first sheet as
// comma-joined lines.
type Spreadsheet struct{}

var _ ports.Extractor = (*Spreadsheet)(nil)

// NewSpreadsheet creates the spreadsheet extractor.
func NewSpreadsheet() *Spreadsheet { return &Spreadsheet{} }

// Supports matches spreadsheet MIME types and extensions.
func (e *Spreadsheet) Supports(mimeType, ext string) bool {
	if strings.Contains(mimeType, "spreadsheet") || strings.HasSuffix(mimeType, "ms-excel") {
		return true
	}
	return ext == ".xlsx" || ext == ".xlsm" || ext == ".xls"
}

// Extract reads the first sheet row by row, up to maxRows.
func (e *Spreadsheet) Extract(_ context.Context, name string, data []byte) (string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("spreadsheet open %s: %w", name, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("spreadsheet rows %s: %w", name, err)
	}

	var lines []string
	for i, row := range rows {
		if i >= maxRows {
			break
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n"), nil
}
