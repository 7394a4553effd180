package export

import (
	"fmt"
	"time"

	"shiptrack/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheet = "Records"

var headers = []string{"ID", "Date", "Delivery note", "Invoice", "Supplier", "Quantity"}

// dateLayouts are the accepted shapes of a stored date value, tried in
// order. Values that match none of them are exported as plain text.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// Write renders the record snapshot into a styled xlsx file at path,
// overwriting whatever is there. Same snapshot in, same workbook out.
func Write(records []models.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	centerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	dateFmt := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &dateFmt,
		Alignment:    &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	qtyFmt := "#,##0.00"
	qtyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &qtyFmt,
	})
	if err != nil {
		return err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2

		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID); err != nil {
			return err
		}
		setDateCell(f, fmt.Sprintf("B%d", row), r.Date, dateStyle, centerStyle)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.DeliveryNote)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.InvoiceReference)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Supplier)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Quantity)

		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), centerStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), centerStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), qtyStyle)
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "D", 18)
	f.SetColWidth(sheet, "E", "E", 28)
	f.SetColWidth(sheet, "F", "F", 14)

	rows := len(records) + 1
	if rows < 2 {
		// a table needs a data region even when the store is empty
		rows = 2
	}
	showStripes := true
	if err := f.AddTable(sheet, &excelize.Table{
		Range:          fmt.Sprintf("A1:F%d", rows),
		Name:           "ShipmentRecords",
		StyleName:      "TableStyleMedium9",
		ShowRowStripes: &showStripes,
	}); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// setDateCell writes the date as a real date cell when the stored text
// parses, and as the raw text otherwise.
func setDateCell(f *excelize.File, cell, value string, dateStyle, textStyle int) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			f.SetCellValue(sheet, cell, t)
			f.SetCellStyle(sheet, cell, cell, dateStyle)
			return
		}
	}
	f.SetCellValue(sheet, cell, value)
	f.SetCellStyle(sheet, cell, cell, textStyle)
}
