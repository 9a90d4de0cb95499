package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable_Basic(t *testing.T) {
	raw := "Journal,ISSN\nCell,0092-8674\nNature,0028-0836\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cell", rows[0].Get("Journal"))
	assert.Equal(t, "0092-8674", rows[0].Get("ISSN"))
	assert.Equal(t, "Nature", rows[1].Get("Journal"))
}

func TestParseTable_QuotedFields(t *testing.T) {
	// Embedded comma and escaped quote inside one quoted field.
	raw := "Journal,Publisher\n\"Cell, \"\"Press\"\"\",Elsevier\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, `Cell, "Press"`, rows[0]["Journal"])
	assert.Equal(t, "Elsevier", rows[0]["Publisher"])
}

func TestParseTable_CommaInsideQuotesIsNotASeparator(t *testing.T) {
	raw := "Journal,Category\n\"Bioinformatics, Systems Biology\",Biology\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bioinformatics, Systems Biology", rows[0]["Journal"])
	assert.Equal(t, "Biology", rows[0]["Category"])
}

func TestParseTable_SkipsBlankLines(t *testing.T) {
	raw := "Journal,ISSN\n\nCell,0092-8674\n   \r\nNature,0028-0836\n\n"

	rows := ParseTable(raw)
	assert.Len(t, rows, 2)
}

func TestParseTable_ShortRowDefaultsMissingColumns(t *testing.T) {
	raw := "Journal,ISSN,Category\nCell\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cell", rows[0]["Journal"])
	assert.Equal(t, "", rows[0]["ISSN"])
	assert.Equal(t, "", rows[0]["Category"])
}

func TestParseTable_ExtraFieldsDropped(t *testing.T) {
	raw := "Journal,ISSN\nCell,0092-8674,surplus,junk\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 2)
}

func TestParseTable_TrimsUnquotedWhitespace(t *testing.T) {
	raw := "Journal,ISSN\n  Cell  , 0092-8674 \n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cell", rows[0]["Journal"])
	assert.Equal(t, "0092-8674", rows[0]["ISSN"])
}

func TestParseTable_PreservesQuotedWhitespace(t *testing.T) {
	raw := "Journal,ISSN\n\" Cell \",0092-8674\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, " Cell ", rows[0]["Journal"])
}

func TestParseTable_CRLF(t *testing.T) {
	raw := "Journal,ISSN\r\nCell,0092-8674\r\n"

	rows := ParseTable(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cell", rows[0]["Journal"])
}

func TestRow_GetPrefix(t *testing.T) {
	rows := ParseTable("Journal,IF(2024)\nCell,45.5\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "45.5", rows[0].GetPrefix("IF"))
	assert.Equal(t, "", rows[0].GetPrefix("Quartile"))
}

func TestParseTable_Empty(t *testing.T) {
	assert.Empty(t, ParseTable(""))
	assert.Empty(t, ParseTable("Journal,ISSN\n"))
}
