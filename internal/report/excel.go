package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
)

const sheetName = "Donations"

var excelColumnWidths = []float64{20, 16, 28, 12, 12, 18, 18}

// RenderXLSX produces the donation table as an XLSX workbook with the same
// header and rows as the PDF export.
func RenderXLSX(donations []domain.Donation) ([]byte, error) {
	rows := BuildRows(donations)

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, name, cell); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", name, err)
			}
			if rowIdx == 0 {
				if err := f.SetCellStyle(sheetName, name, name, headerStyle); err != nil {
					f.Close()
					return nil, fmt.Errorf("set header style: %w", err)
				}
			}
		}
	}

	for i, width := range excelColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
