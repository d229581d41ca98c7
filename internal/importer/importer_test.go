package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExtractNamesCSV(t *testing.T) {
	t.Run("takes only the first column", func(t *testing.T) {
		csv := "Wiz,ignored,also ignored\nMelio,x\nGong.io\n"
		names, err := ExtractNames("clients.csv", strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, []string{"Wiz", "Melio", "Gong.io"}, names)
	})

	t.Run("skips header tokens in both languages", func(t *testing.T) {
		csv := "Name\nWiz\nשם לקוח\nלקוח\nMelio\nCOMPANY\nClient\nשם החברה\n"
		names, err := ExtractNames("clients.csv", strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, []string{"Wiz", "Melio"}, names)
	})

	t.Run("trims cells and skips empties", func(t *testing.T) {
		csv := "  Wiz  \n\"\"\n   \nMelio\n"
		names, err := ExtractNames("clients.csv", strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, []string{"Wiz", "Melio"}, names)
	})

	t.Run("denylisted value embedded in a longer name is kept", func(t *testing.T) {
		names, err := ExtractNames("clients.csv", strings.NewReader("Acme Company\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme Company"}, names)
	})

	t.Run("malformed csv fails as a whole", func(t *testing.T) {
		names, err := ExtractNames("bad.csv", strings.NewReader("Wiz\n\"unterminated\n"))
		assert.Error(t, err)
		assert.Nil(t, names)
	})
}

func TestExtractNamesXLSX(t *testing.T) {
	t.Run("reads the first sheet only", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
		require.NoError(t, f.SetCellValue("Sheet1", "A2", "Wiz"))
		require.NoError(t, f.SetCellValue("Sheet1", "B2", "second column ignored"))
		require.NoError(t, f.SetCellValue("Sheet1", "A3", "monday.com"))
		_, err := f.NewSheet("Sheet2")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet2", "A1", "Other"))

		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		names, err := ExtractNames("clients.xlsx", buf)
		require.NoError(t, err)
		assert.Equal(t, []string{"Wiz", "monday.com"}, names)
	})

	t.Run("corrupt file fails as a whole", func(t *testing.T) {
		names, err := ExtractNames("clients.xlsx", strings.NewReader("not a zip archive"))
		assert.Error(t, err)
		assert.Nil(t, names)
	})
}

func TestExtractNamesUnsupported(t *testing.T) {
	_, err := ExtractNames("clients.pdf", strings.NewReader("%PDF"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractNamesXLSCorrupt(t *testing.T) {
	_, err := ExtractNames("clients.xls", strings.NewReader("garbage"))
	assert.Error(t, err)
}
