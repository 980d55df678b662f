package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/CAPSATECH24/data-connector-mapper/internal/config"
	"github.com/CAPSATECH24/data-connector-mapper/internal/mapping"
	"github.com/CAPSATECH24/data-connector-mapper/internal/pipeline"
	"github.com/CAPSATECH24/data-connector-mapper/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input xlsx path")
		out := fs.String("out", "", "output xlsx path")
		dbPath := fs.String("db", "", "output sqlite path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		raw, err := os.ReadFile(*input)
		must(err)
		result, err := pipeline.ProcessWorkbook(raw, filepath.Base(*input))
		must(err)

		validCount, invalidCount := 0, 0
		for _, sheet := range result.Sheets {
			fmt.Printf("sheet %s origin=%s valid=%d invalid=%d\n", sheet.SheetName, sheet.Origin, len(sheet.Valid), len(sheet.Invalid))
			validCount += len(sheet.Valid)
			invalidCount += len(sheet.Invalid)
		}
		for _, name := range result.Skipped {
			fmt.Printf("sheet %s skipped: no registered mapping\n", name)
		}

		records := pipeline.ValidRecords(result)

		outPath := *out
		if outPath == "" {
			outPath = filepath.Join(cfg.OutputDir, "normalized.xlsx")
		}
		must(pipeline.ExportRecordsToXLSX(records, outPath))

		target := *dbPath
		if target == "" {
			target = cfg.DBPath
		}
		db, err := storage.Open(target)
		must(err)
		defer db.Close()
		must(db.ExportDevices(records))
		must(db.InsertImport(uuid.NewString(), result.FileName, result.FileDate, len(result.Sheets), validCount, invalidCount))

		fmt.Printf("processed %s fileDate=%s valid=%d invalid=%d xlsx=%s db=%s\n",
			result.FileName, result.FileDate, validCount, invalidCount, outPath, target)
	case "sheets":
		for _, name := range mapping.SheetNames() {
			m, _ := mapping.Lookup(name)
			fmt.Printf("%-12s origin=%-12s mappedColumns=%d\n", name, m.Origin, m.MappedColumns())
		}
	case "stats":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		raw, err := os.ReadFile(*input)
		must(err)
		result, err := pipeline.ProcessWorkbook(raw, filepath.Base(*input))
		must(err)

		counts := pipeline.DeviceTypeCounts(pipeline.ValidRecords(result))
		for _, c := range counts {
			fmt.Printf("%-24s %d\n", c.DeviceType, c.Count)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: data-connector-mapper <command>")
	fmt.Println("commands:")
	fmt.Println("  process --input=file.xlsx [--out=./out/normalized.xlsx] [--db=./data/devices.db]")
	fmt.Println("  sheets")
	fmt.Println("  stats --input=file.xlsx")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
