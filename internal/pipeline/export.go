package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/CAPSATECH24/data-connector-mapper/internal"
)

// ExportRecordsToXLSX writes the canonical records to a spreadsheet: one
// header row of field names, one row per record, nil fields as empty cells.
func ExportRecordsToXLSX(records []internal.CanonicalRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range internal.RecordColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, derefString(rec.Name))
		set(2, derefString(rec.AccountID))
		set(3, derefString(rec.DeviceType))
		set(4, derefString(rec.IMEI))
		set(5, derefString(rec.ICCID))
		set(6, derefString(rec.ActivationDate))
		set(7, derefString(rec.DeactivationDate))
		set(8, derefString(rec.LastMessageTime))
		set(9, derefString(rec.LastReport))
		set(10, derefString(rec.Vehicle))
		set(11, derefString(rec.Services))
		set(12, derefString(rec.Group))
		set(13, derefString(rec.Phone))
		set(14, rec.Origin)
		set(15, rec.FileDate)
		set(16, derefInt(rec.DaysSinceLastReport))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
