package internal

// RawRow is one decoded spreadsheet row: the literal header text of each
// column mapped to the cell text under it. Rows are transient; they live for
// one processing pass and are never retained by the normalizer.
type RawRow map[string]string

// CanonicalRecord is the normalized output unit shared by every platform.
// Origin and FileDate are assigned from configuration, never read from rows.
type CanonicalRecord struct {
	Name                *string
	AccountID           *string
	DeviceType          *string
	IMEI                *string
	ICCID               *string
	ActivationDate      *string
	DeactivationDate    *string
	LastMessageTime     *string
	LastReport          *string
	Vehicle             *string
	Services            *string
	Group               *string
	Phone               *string
	Origin              string
	FileDate            string
	DaysSinceLastReport *int
}

// RecordColumns is the canonical field order used by every exporter.
var RecordColumns = []string{
	"Name", "AccountId", "DeviceType", "IMEI", "ICCID",
	"ActivationDate", "DeactivationDate", "LastMessageTime", "LastReport",
	"Vehicle", "Services", "Group", "Phone", "Origin", "FileDate",
	"DaysSinceLastReport",
}

// SheetResult holds the valid/invalid partition of one source sheet.
type SheetResult struct {
	SheetName string
	Origin    string
	Valid     []CanonicalRecord
	Invalid   []RawRow
}

// FileResult is the accumulated outcome of one workbook pass. Skipped lists
// sheet names that had no registered mapping.
type FileResult struct {
	FileName string
	FileDate string
	Sheets   []SheetResult
	Skipped  []string
}

type DeviceTypeCount struct {
	DeviceType string
	Count      int
}
