package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/CAPSATECH24/data-connector-mapper/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS imports (
  id TEXT PRIMARY KEY,
  fileName TEXT NOT NULL,
  fileDate TEXT NOT NULL,
  sheets INTEGER NOT NULL,
  validRows INTEGER NOT NULL,
  invalidRows INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// ExportDevices rebuilds the devices table from the given records, one TEXT
// column per column of the first record, nil fields stored as NULL. The
// column set is taken from the record type, so every record carries the full
// key set; the schema still follows the first record by convention.
func (d *DB) ExportDevices(records []internal.CanonicalRecord) error {
	if len(records) == 0 {
		return nil
	}

	columns := make([]string, 0, len(internal.RecordColumns))
	placeholders := make([]string, 0, len(internal.RecordColumns))
	for _, col := range internal.RecordColumns {
		columns = append(columns, fmt.Sprintf("%q TEXT", col))
		placeholders = append(placeholders, "?")
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS devices`); err != nil {
		return err
	}
	if _, err := tx.Exec(fmt.Sprintf(`CREATE TABLE devices (%s)`, strings.Join(columns, ", "))); err != nil {
		return err
	}

	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO devices VALUES (%s)`, strings.Join(placeholders, ",")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(deviceValues(rec)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) InsertImport(id, fileName, fileDate string, sheets, validRows, invalidRows int) error {
	_, err := d.conn.Exec(`
INSERT INTO imports (id, fileName, fileDate, sheets, validRows, invalidRows)
VALUES (?, ?, ?, ?, ?, ?)
`, id, fileName, fileDate, sheets, validRows, invalidRows)
	return err
}

func (d *DB) CountDevices() (int, error) {
	var count int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM devices`).Scan(&count)
	return count, err
}

// deviceValues coerces one record to the text column set, in RecordColumns
// order. nil stays nil so the driver stores database NULL.
func deviceValues(rec internal.CanonicalRecord) []any {
	text := func(v *string) any {
		if v == nil {
			return nil
		}
		return *v
	}

	values := []any{
		text(rec.Name), text(rec.AccountID), text(rec.DeviceType),
		text(rec.IMEI), text(rec.ICCID),
		text(rec.ActivationDate), text(rec.DeactivationDate),
		text(rec.LastMessageTime), text(rec.LastReport),
		text(rec.Vehicle), text(rec.Services), text(rec.Group),
		text(rec.Phone), rec.Origin, rec.FileDate,
	}
	if rec.DaysSinceLastReport == nil {
		values = append(values, nil)
	} else {
		values = append(values, strconv.Itoa(*rec.DaysSinceLastReport))
	}
	return values
}
