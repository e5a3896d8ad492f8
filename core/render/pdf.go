// Package render — PDF renderer.
// Lays out the recipe card on A4 pages with gofpdf core fonts. Text is
// translated to cp1252, the encoding of the core fonts; characters outside it
// are lost. Images are not embedded.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/normalize"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
)

const (
	pdfFont       = "Helvetica"
	pdfMargin     = 15.0
	pdfLineHeight = 5.0
)

// PDFRenderer renders a recipe card as a PDF document.
type PDFRenderer struct {
	normalizer *normalize.MarkdownNormalizer
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{normalizer: normalize.New()}
}

// Render lays out the recipe card and returns the PDF bytes.
func (r *PDFRenderer) Render(recipe *schema.Recipe, meta core.SourceMetadata) ([]byte, error) {
	c, err := newCard(recipe, meta, r.normalizer)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(c.Title, true)
	pdf.SetCreator("recipepipe", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title
	pdf.SetFont(pdfFont, "B", 18)
	pdf.MultiCell(0, 8, tr(c.Title), "", "L", false)
	pdf.Ln(2)

	// Source
	if c.Source != "" {
		pdf.SetFont(pdfFont, "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 4.5, tr("Source: "+c.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	if c.Description != "" {
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, pdfLineHeight, tr(plainText(c.Description)), "", "L", false)
		pdf.Ln(3)
	}

	// Facts as a two-column table.
	for _, f := range c.Facts {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.CellFormat(35, pdfLineHeight, tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, pdfLineHeight, tr(f.Value), "", "L", false)
	}

	if len(c.Ingredients) > 0 {
		pdfHeading(pdf, tr("Ingredients"))
		pdf.SetFont(pdfFont, "", 10)
		for _, ing := range c.Ingredients {
			pdf.MultiCell(0, pdfLineHeight, tr("• "+plainText(ing)), "", "L", false)
		}
	}

	if len(c.Steps) > 0 {
		pdfHeading(pdf, tr("Instructions"))
		for i, step := range c.Steps {
			pdf.SetFont(pdfFont, "B", 10)
			pdf.CellFormat(8, pdfLineHeight, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
			pdf.SetFont(pdfFont, "", 10)
			pdf.MultiCell(0, pdfLineHeight, tr(plainText(step)), "", "L", false)
			pdf.Ln(1.5)
		}
	}

	if len(c.Nutrition) > 0 {
		pdfHeading(pdf, tr("Nutrition"))
		pdf.SetFont(pdfFont, "", 9)
		for _, f := range c.Nutrition {
			pdf.CellFormat(35, 4.5, tr(f.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 4.5, tr(f.Value), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func pdfHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(4)
	pdf.SetFont(pdfFont, "B", 13)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(1)
}

var (
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	mdCode     = regexp.MustCompile("`([^`]+)`")
	mdEmphasis = regexp.MustCompile(`(\*{1,2}|_{1,2})(\S(?:.*?\S)?)(\*{1,2}|_{1,2})`)
)

// plainText strips the inline Markdown the normalizer may have produced.
func plainText(s string) string {
	s = mdLink.ReplaceAllString(s, "$1")
	s = mdCode.ReplaceAllString(s, "$1")
	s = mdEmphasis.ReplaceAllString(s, "$2")
	return strings.TrimSpace(s)
}
