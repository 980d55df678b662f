package pipeline

import (
	"fmt"

	"github.com/CAPSATECH24/data-connector-mapper/internal"
	"github.com/CAPSATECH24/data-connector-mapper/internal/mapping"
)

// ProcessWorkbook decodes raw file bytes and normalizes every sheet with a
// registered mapping. The file date is derived once from the file name and
// shared by every record the file produces. Sheets without a mapping are
// listed in Skipped; that is a filter, not a failure.
func ProcessWorkbook(raw []byte, filename string) (internal.FileResult, error) {
	wb, err := DecodeWorkbook(raw)
	if err != nil {
		return internal.FileResult{}, fmt.Errorf("decode %s: %w", filename, err)
	}

	fileDate := FileDate(filename)
	result := internal.FileResult{FileName: filename, FileDate: fileDate}
	for _, sheet := range wb.SheetNames {
		m, ok := mapping.Lookup(sheet)
		if !ok {
			result.Skipped = append(result.Skipped, sheet)
			continue
		}
		valid, invalid := Normalize(wb.Rows[sheet], m, m.Origin, fileDate)
		result.Sheets = append(result.Sheets, internal.SheetResult{
			SheetName: sheet,
			Origin:    m.Origin,
			Valid:     valid,
			Invalid:   invalid,
		})
	}

	return result, nil
}

// ValidRecords flattens the per-sheet partitions into the export sequence,
// keeping sheet order and row order within each sheet.
func ValidRecords(result internal.FileResult) []internal.CanonicalRecord {
	out := []internal.CanonicalRecord{}
	for _, sheet := range result.Sheets {
		out = append(out, sheet.Valid...)
	}
	return out
}

// InvalidRows flattens the rejected rows across sheets in the same order.
func InvalidRows(result internal.FileResult) []internal.RawRow {
	out := []internal.RawRow{}
	for _, sheet := range result.Sheets {
		out = append(out, sheet.Invalid...)
	}
	return out
}

// DeviceTypeCounts aggregates records by device type in first-seen order.
// Records without one are bucketed under "Unknown".
func DeviceTypeCounts(records []internal.CanonicalRecord) []internal.DeviceTypeCount {
	index := map[string]int{}
	out := []internal.DeviceTypeCount{}
	for _, rec := range records {
		name := "Unknown"
		if rec.DeviceType != nil && *rec.DeviceType != "" {
			name = *rec.DeviceType
		}
		if i, ok := index[name]; ok {
			out[i].Count++
			continue
		}
		index[name] = len(out)
		out = append(out, internal.DeviceTypeCount{DeviceType: name, Count: 1})
	}
	return out
}
