package pipeline

import (
	"testing"

	"github.com/CAPSATECH24/data-connector-mapper/internal"
)

func TestProcessWorkbook(t *testing.T) {
	blob := mkWorkbook([]sheetFixture{
		{
			name: "WIALON",
			rows: [][]any{
				{"Cuenta", "Nombre", "Tipo de dispositivo"},
				{"123", "Unidad 1", "GPS"},
				{"", "sin cuenta", "GPS"},
			},
		},
		{
			name: "Combustible",
			rows: [][]any{
				{"Cuenta", "Vehículo", "Tanques"},
				{"777", "Camión 7", "2"},
			},
		},
		{
			name: "Resumen",
			rows: [][]any{
				{"Total"},
				{"3"},
			},
		},
	})

	result, err := ProcessWorkbook(blob, "plataformas-2025-04-15.xlsx")
	if err != nil {
		t.Fatal(err)
	}

	if result.FileDate != "2025-04-15" {
		t.Fatalf("fileDate=%q", result.FileDate)
	}
	if len(result.Sheets) != 2 {
		t.Fatalf("sheets=%d", len(result.Sheets))
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "Resumen" {
		t.Fatalf("skipped=%v", result.Skipped)
	}

	wialon := result.Sheets[0]
	if wialon.Origin != "WIALON" || len(wialon.Valid) != 1 || len(wialon.Invalid) != 1 {
		t.Fatalf("wialon: %+v", wialon)
	}
	fuel := result.Sheets[1]
	if fuel.Origin != "COMBUSTIBLE" || len(fuel.Valid) != 1 {
		t.Fatalf("combustible: %+v", fuel)
	}

	records := ValidRecords(result)
	if len(records) != 2 {
		t.Fatalf("records=%d", len(records))
	}
	for _, rec := range records {
		if rec.FileDate != "2025-04-15" {
			t.Fatalf("record fileDate=%q", rec.FileDate)
		}
	}
	if records[0].Origin != "WIALON" || records[1].Origin != "COMBUSTIBLE" {
		t.Fatalf("origins: %q %q", records[0].Origin, records[1].Origin)
	}

	if rejects := InvalidRows(result); len(rejects) != 1 {
		t.Fatalf("rejects=%d", len(rejects))
	}
}

func TestProcessWorkbookBadInput(t *testing.T) {
	if _, err := ProcessWorkbook([]byte("nope"), "nope.xlsx"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDeviceTypeCounts(t *testing.T) {
	records := []internal.CanonicalRecord{
		{DeviceType: sp("GPS")},
		{DeviceType: sp("Tanque")},
		{DeviceType: sp("GPS")},
		{},
	}

	counts := DeviceTypeCounts(records)
	if len(counts) != 3 {
		t.Fatalf("len=%d", len(counts))
	}
	if counts[0].DeviceType != "GPS" || counts[0].Count != 2 {
		t.Fatalf("counts[0]=%+v", counts[0])
	}
	if counts[1].DeviceType != "Tanque" || counts[1].Count != 1 {
		t.Fatalf("counts[1]=%+v", counts[1])
	}
	if counts[2].DeviceType != "Unknown" || counts[2].Count != 1 {
		t.Fatalf("counts[2]=%+v", counts[2])
	}
}
