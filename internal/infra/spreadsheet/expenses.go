// Package spreadsheet renders expense lists as downloadable files.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Expenses"

var header = []string{"Date", "Category", "Description", "Amount"}

func Render(format models.ExportFormat, expenses []models.Expense) ([]byte, error) {
	if format == models.ExportCSV {
		return RenderCSV(expenses)
	}
	return RenderXLSX(expenses)
}

func RenderCSV(expenses []models.Expense) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, expense := range expenses {
		record := []string{
			expense.Date.UTC().Format(time.DateOnly),
			expense.Category,
			expense.Description,
			strconv.FormatFloat(expense.Amount, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv record: %w", err)
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("generating csv: %w", err)
	}

	return buf.Bytes(), nil
}

func RenderXLSX(expenses []models.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	for i, expense := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			expense.Date.UTC().Format(time.DateOnly),
			expense.Category,
			expense.Description,
			expense.Amount,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if len(expenses) > 0 {
		last, err := excelize.CoordinatesToCellName(4, len(expenses)+1)
		if err != nil {
			return nil, err
		}
		style, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
		if err != nil {
			return nil, fmt.Errorf("creating amount style: %w", err)
		}
		if err := f.SetCellStyle(sheetName, "D2", last, style); err != nil {
			return nil, fmt.Errorf("styling amounts: %w", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("serializing xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
