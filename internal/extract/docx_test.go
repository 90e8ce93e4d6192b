package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docxBodyWithTable = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t></w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Skill</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Years</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>5</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p><w:r><w:t>Closing line</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestParseDocumentXML(t *testing.T) {
	paragraphs, cells, err := parseDocumentXML(docxBodyWithTable)
	require.NoError(t, err)

	// Body paragraphs keep document order; the table does not leak
	// its paragraphs into the body flow.
	assert.Equal(t, []string{"John Doe", "Senior Engineer", "", "Closing line"}, paragraphs)

	// Cells arrive row-major.
	assert.Equal(t, []string{"Skill", "Years", "Go", "5"}, cells)
}

func TestParseDocumentXMLMultiParagraphCell(t *testing.T) {
	const body = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:tbl>
      <w:tr>
        <w:tc>
          <w:p><w:r><w:t>first line</w:t></w:r></w:p>
          <w:p><w:r><w:t>second line</w:t></w:r></w:p>
        </w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

	paragraphs, cells, err := parseDocumentXML(body)
	require.NoError(t, err)
	assert.Empty(t, paragraphs)
	assert.Equal(t, []string{"first line\nsecond line"}, cells)
}

func TestParseDocumentXMLBreaksAndTabs(t *testing.T) {
	const body = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t><w:tab/><w:t>after tab</w:t></w:r></w:p>
  </w:body>
</w:document>`

	paragraphs, _, err := parseDocumentXML(body)
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)
	assert.Equal(t, "line one\nline two\tafter tab", paragraphs[0])
}

func TestParseDocumentXMLMalformed(t *testing.T) {
	_, _, err := parseDocumentXML(`<w:document><w:body><w:p>`)
	assert.Error(t, err)
}
