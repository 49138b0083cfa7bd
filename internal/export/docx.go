// Package export renders pipeline results as documents.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	textColor = "000000"
	noteColor = "666666"
)

// Report is everything that goes into one exported document.
type Report struct {
	Title       string
	Source      string
	GeneratedAt time.Time
	Result      models.Result
}

// WriteDocx writes the report as a .docx file, creating parent directories.
func WriteDocx(report Report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	title := strings.TrimSpace(report.Title)
	if title == "" {
		title = "Voice note"
	}
	addStyledRun(doc.AddParagraph(""), title, true, 16, textColor)

	meta := report.GeneratedAt.Format("2006-01-02 15:04")
	if report.Source != "" {
		meta = report.Source + " | " + meta
	}
	if report.Result.Degraded {
		meta += " | unstructured summary"
	}
	addStyledRun(doc.AddParagraph(""), meta, false, 11, noteColor)

	summary := report.Result.Summary.Normalized()
	addSection(doc, "Key points", summary.KeyPoints)
	addSection(doc, "Action items", summary.ActionItems)

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15, textColor)
	for _, para := range splitParagraphs(report.Result.Transcript) {
		addStyledRun(doc.AddParagraph(""), para, false, fontSize, textColor)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addSection(doc *docx.RootDoc, heading string, items []string) {
	addStyledRun(doc.AddParagraph(""), heading, true, 15, textColor)
	if len(items) == 0 {
		addStyledRun(doc.AddParagraph(""), "None", false, fontSize, noteColor)
		return
	}
	for _, item := range items {
		addStyledRun(doc.AddParagraph(""), "• "+item, false, fontSize, textColor)
	}
}

// splitParagraphs breaks a transcript on blank lines and drops empty chunks.
func splitParagraphs(text string) []string {
	var out []string
	for _, chunk := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64, color string) {
	run := p.AddText(text).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}
