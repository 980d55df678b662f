package mapping

import (
	"github.com/CAPSATECH24/data-connector-mapper/internal/util"
)

// FieldMapping ties each canonical record field to the raw column that feeds
// it in one platform's export. A nil column means the platform does not
// provide that field. Origin is the platform tag stamped on every record
// produced through this mapping; it is configuration, not row data.
type FieldMapping struct {
	Name             *string
	AccountID        *string
	DeviceType       *string
	IMEI             *string
	ICCID            *string
	ActivationDate   *string
	DeactivationDate *string
	LastMessageTime  *string
	LastReport       *string
	Vehicle          *string
	Services         *string
	Group            *string
	Phone            *string
	Origin           string
}

var wialon = FieldMapping{
	Name:             util.StringPtr("Nombre"),
	AccountID:        util.StringPtr("Cuenta"),
	DeviceType:       util.StringPtr("Tipo de dispositivo"),
	IMEI:             util.StringPtr("IMEI"),
	ICCID:            util.StringPtr("Iccid"),
	ActivationDate:   util.StringPtr("Creada"),
	DeactivationDate: util.StringPtr("Desactivación"),
	LastMessageTime:  util.StringPtr("Hora de último mensaje"),
	LastReport:       util.StringPtr("Ultimo Reporte"),
	Group:            util.StringPtr("Grupos"),
	Phone:            util.StringPtr("Teléfono"),
	Origin:           "WIALON",
}

var adas = FieldMapping{
	Name:           util.StringPtr("equipo"),
	AccountID:      util.StringPtr("Subordinar"),
	DeviceType:     util.StringPtr("Modelo"),
	IMEI:           util.StringPtr("IMEI"),
	ICCID:          util.StringPtr("Iccid"),
	ActivationDate: util.StringPtr("Activation Date"),
	Phone:          util.StringPtr("Número de tarjeta SIM"),
	Origin:         "ADAS",
}

// COMBUSTIBLE feeds LastMessageTime from its "Último reporte" column; the
// platform has no separate last-report export.
var combustible = FieldMapping{
	Name:            util.StringPtr("Vehículo"),
	AccountID:       util.StringPtr("Cuenta"),
	DeviceType:      util.StringPtr("Tanques"),
	LastMessageTime: util.StringPtr("Último reporte"),
	Vehicle:         util.StringPtr("Vehículo"),
	Services:        util.StringPtr("Servicios"),
	Group:           util.StringPtr("Grupos"),
	Phone:           util.StringPtr("Línea"),
	Origin:          "COMBUSTIBLE",
}

// generico covers unrecognized platforms whose sheets were renamed to the
// agreed generic layout.
var generico = FieldMapping{
	Name:             util.StringPtr("Nombre"),
	AccountID:        util.StringPtr("Cuenta"),
	DeviceType:       util.StringPtr("Tipo"),
	IMEI:             util.StringPtr("IMEI"),
	ICCID:            util.StringPtr("ICCID"),
	ActivationDate:   util.StringPtr("Fecha Activacion"),
	DeactivationDate: util.StringPtr("Fecha Desactivacion"),
	LastMessageTime:  util.StringPtr("Ultimo Mensaje"),
	LastReport:       util.StringPtr("Ultimo Reporte"),
	Vehicle:          util.StringPtr("Vehiculo"),
	Services:         util.StringPtr("Servicios"),
	Group:            util.StringPtr("Grupo"),
	Phone:            util.StringPtr("Telefono"),
	Origin:           "GENERICO",
}

// Sheet names seen in the wild vary in casing, so spelling variants of one
// platform register the same table under several keys. Lookup is by exact
// match only.
var registry = map[string]FieldMapping{
	"WIALON":      wialon,
	"Wialon":      wialon,
	"ADAS":        adas,
	"Adas":        adas,
	"COMBUSTIBLE": combustible,
	"Combustible": combustible,
	"Generico":    generico,
}

var sheetOrder = []string{
	"WIALON", "Wialon",
	"ADAS", "Adas",
	"COMBUSTIBLE", "Combustible",
	"Generico",
}

// Lookup returns the mapping registered for sheetName. A false result means
// the sheet is not a recognized platform export and must be skipped.
func Lookup(sheetName string) (FieldMapping, bool) {
	m, ok := registry[sheetName]
	return m, ok
}

// SheetNames returns every recognized sheet name in registration order.
func SheetNames() []string {
	return append([]string(nil), sheetOrder...)
}

// MappedColumns counts the fields with a concrete raw-column assignment,
// a rough measure of how well a source schema is covered.
func (m FieldMapping) MappedColumns() int {
	count := 0
	for _, col := range []*string{
		m.Name, m.AccountID, m.DeviceType, m.IMEI, m.ICCID,
		m.ActivationDate, m.DeactivationDate, m.LastMessageTime, m.LastReport,
		m.Vehicle, m.Services, m.Group, m.Phone,
	} {
		if col != nil {
			count++
		}
	}
	return count
}
