package pipeline

import (
	"strings"
	"time"

	"github.com/CAPSATECH24/data-connector-mapper/internal"
	"github.com/CAPSATECH24/data-connector-mapper/internal/mapping"
	"github.com/CAPSATECH24/data-connector-mapper/internal/util"
)

// Normalize partitions one sheet's rows into canonical records and rejects.
// A row is valid only when the column mapped to AccountId carries a
// non-empty value after trimming; rejected rows are returned verbatim so the
// missing data stays diagnosable. Both partitions preserve input row order.
//
// Origin and FileDate are taken from the arguments, never from row data, so
// provenance is fixed by the caller regardless of row shape. Normalize holds
// no state and never fails on malformed row data; every transform degrades
// to nil instead.
func Normalize(rows []internal.RawRow, m mapping.FieldMapping, originTag, fileDate string) ([]internal.CanonicalRecord, []internal.RawRow) {
	return normalizeAt(rows, m, originTag, fileDate, time.Now())
}

func normalizeAt(rows []internal.RawRow, m mapping.FieldMapping, originTag, fileDate string, now time.Time) ([]internal.CanonicalRecord, []internal.RawRow) {
	valid := make([]internal.CanonicalRecord, 0, len(rows))
	invalid := make([]internal.RawRow, 0)

	for _, row := range rows {
		if strings.TrimSpace(rawValue(row, m.AccountID)) == "" {
			invalid = append(invalid, row)
			continue
		}

		rec := internal.CanonicalRecord{
			Name:             textField(row, m.Name),
			AccountID:        textField(row, m.AccountID),
			DeviceType:       textField(row, m.DeviceType),
			IMEI:             textField(row, m.IMEI),
			ICCID:            textField(row, m.ICCID),
			ActivationDate:   dateField(row, m.ActivationDate),
			DeactivationDate: dateField(row, m.DeactivationDate),
			LastMessageTime:  dateField(row, m.LastMessageTime),
			LastReport:       dateField(row, m.LastReport),
			Vehicle:          textField(row, m.Vehicle),
			Services:         textField(row, m.Services),
			Group:            textField(row, m.Group),
			Phone:            phoneField(row, m.Phone),
			Origin:           originTag,
			FileDate:         fileDate,
		}
		if rec.LastMessageTime != nil {
			rec.DaysSinceLastReport = util.DaysSince(*rec.LastMessageTime, now)
		}

		valid = append(valid, rec)
	}

	return valid, invalid
}

func rawValue(row internal.RawRow, column *string) string {
	if column == nil {
		return ""
	}
	return row[*column]
}

func textField(row internal.RawRow, column *string) *string {
	value := rawValue(row, column)
	if value == "" {
		return nil
	}
	return util.StringPtr(value)
}

func dateField(row internal.RawRow, column *string) *string {
	return util.DecodeSerialDate(rawValue(row, column))
}

func phoneField(row internal.RawRow, column *string) *string {
	return util.CleanPhone(rawValue(row, column))
}
