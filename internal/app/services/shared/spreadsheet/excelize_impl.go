package spreadsheet

import (
	"bytes"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/xuri/excelize/v2"
)

const outputSheetName = "Updated"

type excelizeService struct{}

func NewSpreadsheetService() contracts.SpreadsheetService {
	return &excelizeService{}
}

// Parse reads the first sheet of the workbook. The first row is the
// header; every data row gets an entry for every header, blank cells
// included, so the pipeline never sees absent keys.
func (s *excelizeService) Parse(fileBytes []byte) (*models.Sheet, error) {
	file, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, exceptions.ErrParseSpreadsheet(err)
	}
	defer file.Close()

	sheetNames := file.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, exceptions.ErrParseSpreadsheet(nil)
	}

	rows, err := file.GetRows(sheetNames[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, exceptions.ErrParseSpreadsheet(err)
	}
	if len(rows) == 0 {
		return &models.Sheet{Headers: []string{}, Rows: []models.Row{}}, nil
	}

	headers := rows[0]
	sheet := &models.Sheet{
		Headers: headers,
		Rows:    make([]models.Row, 0, len(rows)-1),
	}
	for _, cells := range rows[1:] {
		row := make(models.Row, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// Serialize writes the sheet back out with columns in header order.
func (s *excelizeService) Serialize(sheet *models.Sheet) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), outputSheetName); err != nil {
		return nil, exceptions.ErrWriteSpreadsheet(err)
	}

	headerCells := make([]interface{}, len(sheet.Headers))
	for i, header := range sheet.Headers {
		headerCells[i] = header
	}
	if err := file.SetSheetRow(outputSheetName, "A1", &headerCells); err != nil {
		return nil, exceptions.ErrWriteSpreadsheet(err)
	}

	for rowIndex, row := range sheet.Rows {
		cells := make([]interface{}, len(sheet.Headers))
		for i, header := range sheet.Headers {
			cells[i] = row[header]
		}
		startCell, err := excelize.CoordinatesToCellName(1, rowIndex+2)
		if err != nil {
			return nil, exceptions.ErrWriteSpreadsheet(err)
		}
		if err := file.SetSheetRow(outputSheetName, startCell, &cells); err != nil {
			return nil, exceptions.ErrWriteSpreadsheet(err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, exceptions.ErrWriteSpreadsheet(err)
	}
	return buffer.Bytes(), nil
}
