// Package extractor converts uploaded binary documents into plain text.
// A .docx file is a zip archive whose main body lives in
// word/document.xml; extraction walks the XML and collects the text runs.
package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
)

const documentEntry = "word/document.xml"

// DocxExtractor implements domain.TextExtractor for Word documents.
type DocxExtractor struct{}

func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ExtractText returns the raw text content of the document, one line per
// paragraph. Formatting, images and embedded media are discarded; a
// scanned-image-only document therefore yields empty text, which callers
// must treat as an input failure.
func (e *DocxExtractor) ExtractText(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a valid docx archive: %w", err)
	}

	var document *zip.File
	for _, f := range reader.File {
		if f.Name == documentEntry {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("docx archive is missing %s", documentEntry)
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document body: %w", err)
	}
	defer rc.Close()

	text, err := collectTextRuns(rc)
	if err != nil {
		return "", fmt.Errorf("failed to parse document body: %w", err)
	}
	return text, nil
}

// collectTextRuns walks WordprocessingML, appending the character data of
// every <w:t> run and a newline at each paragraph (<w:p>) boundary.
func collectTextRuns(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inTextRun := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

var _ domain.TextExtractor = (*DocxExtractor)(nil)
