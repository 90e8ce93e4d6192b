package extract

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDOCX reads body paragraphs in document order, then every table
// cell row by row. Tables are appended after the paragraph flow rather
// than interleaved at their original positions.
func extractDOCX(path string) (*Document, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	paragraphs, cells, err := parseDocumentXML(r.Editable().GetContent())
	if err != nil {
		return nil, fmt.Errorf("parse docx body: %w", err)
	}

	var parts []string
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}

	return &Document{
		Format:   FormatDOCX,
		Text:     strings.Join(parts, "\n"),
		Segments: len(parts),
	}, nil
}

// parseDocumentXML walks word/document.xml and separates top-level body
// paragraphs from table cell contents. Run text comes from w:t elements;
// w:br and w:cr become newlines, w:tab becomes a tab. Paragraphs inside
// a table belong to their cell, where they are joined with newlines.
func parseDocumentXML(content string) (paragraphs, cells []string, err error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		tableDepth int
		cellDepth  int
		para       strings.Builder
		inPara     bool
		inText     bool
		cellParas  []string
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tc":
				if tableDepth > 0 {
					cellDepth++
					if cellDepth == 1 {
						cellParas = cellParas[:0]
					}
				}
			case "p":
				inPara = true
				para.Reset()
			case "t":
				inText = inPara
			case "br", "cr":
				if inPara {
					para.WriteByte('\n')
				}
			case "tab":
				if inPara {
					para.WriteByte('\t')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			case "tc":
				if cellDepth > 0 {
					cellDepth--
					if cellDepth == 0 {
						cells = append(cells, strings.Join(cellParas, "\n"))
					}
				}
			case "p":
				if inPara {
					inPara = false
					text := para.String()
					if cellDepth > 0 {
						if strings.TrimSpace(text) != "" {
							cellParas = append(cellParas, strings.TrimSpace(text))
						}
					} else if tableDepth == 0 {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	return paragraphs, cells, nil
}
