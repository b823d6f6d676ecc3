// Package importer reads patient master data from spreadsheet exports.
// Clinics migrate from other systems with xlsx dumps whose headers come
// in Portuguese or English and in mixed casing.
package importer

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dentara/dentara/internal/application/dto"
)

// ErrNoSheets is returned when the workbook has no sheets at all.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrMissingNameColumn is returned when no recognizable name column is
// present in the header row.
var ErrMissingNameColumn = errors.New("sheet has no name column")

// header aliases seen across exports from legacy clinic systems
var columnAliases = map[string]string{
	"name":               "name",
	"nome":               "name",
	"paciente":           "name",
	"phone":              "phone",
	"telefone":           "phone",
	"celular":            "phone",
	"email":              "email",
	"e-mail":             "email",
	"cpf":                "cpf",
	"birth_date":         "birth_date",
	"nascimento":         "birth_date",
	"data de nascimento": "birth_date",
	"address":            "address",
	"endereco":           "address",
	"endereço":           "address",
}

var birthDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"01-02-06",
}

// ParsePatientSheet reads the first sheet of an xlsx workbook and maps
// its rows to patient creation requests. Rows with an empty name are
// skipped here; the import use case validates everything else per row.
func ParsePatientSheet(r io.Reader) ([]dto.CreatePatientRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if rows.Error() != nil {
			return nil, rows.Error()
		}
		return nil, ErrMissingNameColumn
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	fields := mapHeader(header)
	if _, ok := indexOf(fields, "name"); !ok {
		return nil, ErrMissingNameColumn
	}

	var out []dto.CreatePatientRequest
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			continue
		}
		req := rowToRequest(fields, cols)
		if strings.TrimSpace(req.Name) == "" {
			continue
		}
		out = append(out, req)
	}
	return out, rows.Error()
}

// mapHeader resolves each header cell to a canonical field name, or ""
// for columns the importer ignores.
func mapHeader(header []string) []string {
	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = columnAliases[strings.ToLower(strings.TrimSpace(h))]
	}
	return fields
}

func indexOf(fields []string, name string) (int, bool) {
	for i, f := range fields {
		if f == name {
			return i, true
		}
	}
	return 0, false
}

func rowToRequest(fields, cols []string) dto.CreatePatientRequest {
	var req dto.CreatePatientRequest
	for i, f := range fields {
		if i >= len(cols) {
			break
		}
		v := strings.TrimSpace(cols[i])
		switch f {
		case "name":
			req.Name = v
		case "phone":
			req.Phone = v
		case "email":
			req.Email = v
		case "cpf":
			req.CPF = v
		case "birth_date":
			if d, ok := normalizeBirthDate(v); ok {
				req.BirthDate = &d
			}
		case "address":
			req.Address = v
		}
	}
	return req
}

// normalizeBirthDate accepts the date formats legacy exports use and
// renders the canonical wire layout. Unparseable cells are dropped
// rather than failing the whole row.
func normalizeBirthDate(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(dto.DateLayout), true
		}
	}
	return "", false
}
