package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, cell))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParsePatientSheet(t *testing.T) {
	t.Run("maps portuguese headers", func(t *testing.T) {
		buf := buildSheet(t, [][]string{
			{"Nome", "Telefone", "E-mail", "CPF", "Nascimento", "Endereço"},
			{"Maria Silva", "(11) 98888-7777", "maria@example.com", "123.456.789-00", "15/03/1990", "Rua A, 10"},
			{"João Costa", "", "", "", "", ""},
		})

		got, err := ParsePatientSheet(buf)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "Maria Silva", got[0].Name)
		assert.Equal(t, "(11) 98888-7777", got[0].Phone)
		assert.Equal(t, "maria@example.com", got[0].Email)
		assert.Equal(t, "123.456.789-00", got[0].CPF)
		require.NotNil(t, got[0].BirthDate)
		assert.Equal(t, "1990-03-15", *got[0].BirthDate)
		assert.Equal(t, "Rua A, 10", got[0].Address)

		assert.Equal(t, "João Costa", got[1].Name)
		assert.Nil(t, got[1].BirthDate)
	})

	t.Run("skips rows without a name", func(t *testing.T) {
		buf := buildSheet(t, [][]string{
			{"name", "phone"},
			{"", "555-0000"},
			{"Ana", "555-1111"},
		})

		got, err := ParsePatientSheet(buf)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ana", got[0].Name)
	})

	t.Run("rejects sheet without a name column", func(t *testing.T) {
		buf := buildSheet(t, [][]string{
			{"telefone", "email"},
			{"555-0000", "x@example.com"},
		})

		_, err := ParsePatientSheet(buf)
		assert.ErrorIs(t, err, ErrMissingNameColumn)
	})

	t.Run("drops unparseable birth dates", func(t *testing.T) {
		buf := buildSheet(t, [][]string{
			{"name", "birth_date"},
			{"Bia", "not-a-date"},
		})

		got, err := ParsePatientSheet(buf)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].BirthDate)
	})
}
