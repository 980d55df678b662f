package util

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial day 0 is 1899-12-30 UTC, so the Unix epoch sits at
// serial day 25569.
const serialEpochOffsetDays = 25569

// DecodeSerialDate interprets a raw cell value as a spreadsheet serial date
// and formats it YYYY-MM-DD in UTC. Empty values become nil; non-numeric
// values are assumed to already be human-readable and are returned unchanged.
func DecodeSerialDate(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(raw)
	serial, err := strconv.ParseFloat(trimmed, 64)
	// ParseFloat also accepts NaN, infinities and hex floats; those are not
	// serial dates, so they stay text like any other non-numeric value.
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) || strings.ContainsAny(trimmed, "xX") {
		return StringPtr(raw)
	}
	ms := math.Round((serial - serialEpochOffsetDays) * 86400 * 1000)
	return StringPtr(time.UnixMilli(int64(ms)).UTC().Format("2006-01-02"))
}

// DaysSince parses the leading DD.MM.YYYY token of a last-message timestamp
// and returns the signed whole-day distance from now, measured against local
// midnight of that date. Anything unparseable yields nil, never an error.
func DaysSince(lastMessageTime string, now time.Time) *int {
	fields := strings.Fields(lastMessageTime)
	if len(fields) == 0 {
		return nil
	}
	parts := strings.Split(fields[0], ".")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return nil
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	days := int(math.Floor(float64(now.Sub(date)) / float64(24*time.Hour)))
	return IntPtr(days)
}
