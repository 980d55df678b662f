package pipeline

import (
	"bytes"
	"regexp"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/CAPSATECH24/data-connector-mapper/internal"
)

var fileDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// FileDate extracts a YYYY-MM-DD substring from a file name. Files without
// one are dated with the current day, so every record of a file still shares
// one file date.
func FileDate(filename string) string {
	if m := fileDatePattern.FindString(filename); m != "" {
		return m
	}
	return time.Now().Format("2006-01-02")
}

// Workbook is the decoded form of one uploaded export: sheet order plus the
// loosely typed rows of each sheet.
type Workbook struct {
	SheetNames []string
	Rows       map[string][]internal.RawRow
}

// DecodeWorkbook reads an xlsx payload into per-sheet rows. The first row of
// each sheet is taken as the header row; cells with no value produce no key,
// and rows with no values at all are dropped.
func DecodeWorkbook(raw []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &Workbook{Rows: map[string][]internal.RawRow{}}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		headers := rows[0]
		decoded := make([]internal.RawRow, 0, len(rows)-1)
		for _, cells := range rows[1:] {
			row := internal.RawRow{}
			for i, header := range headers {
				if header == "" || i >= len(cells) || cells[i] == "" {
					continue
				}
				row[header] = cells[i]
			}
			if len(row) == 0 {
				continue
			}
			decoded = append(decoded, row)
		}

		wb.SheetNames = append(wb.SheetNames, sheet)
		wb.Rows[sheet] = decoded
	}

	return wb, nil
}
