package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Renderer turns a sequence of drawing instructions into a document.
type Renderer interface {
	Render(ctx context.Context, doc []Instruction) ([]byte, error)
}

// PDFRenderer renders instructions with fpdf using embedded UTF-8 TrueType
// fonts, so signer names outside Latin-1 are kept as written.
type PDFRenderer struct {
	PageSize string // "Letter" (default) or "A4"
	Author   string
	Creator  string
	Fonts    Fonts // zero value means GoFonts
}

// NewPDFRenderer returns a PDFRenderer with Letter pages and the Go fonts.
func NewPDFRenderer(author string) *PDFRenderer {
	return &PDFRenderer{PageSize: "Letter", Author: author, Creator: "revvit proposal", Fonts: GoFonts()}
}

const (
	marginMM   = 20.0
	bulletMM   = 6.0
	lineHeight = 6.0
)

func (r *PDFRenderer) Render(ctx context.Context, doc []Instruction) ([]byte, error) {
	size := r.PageSize
	if size == "" {
		size = "Letter"
	}

	pdf := fpdf.New("P", "mm", size, "")
	fonts := r.Fonts.withDefaults()
	pdf.AddUTF8FontFromBytes(fontFamily, "", fonts.Regular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fonts.Bold)
	pdf.AddUTF8FontFromBytes(fontFamily, "I", fonts.Italic)
	if pdf.Err() {
		return nil, fmt.Errorf("document: load fonts: %w", pdf.Error())
	}
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	if r.Author != "" {
		pdf.SetAuthor(r.Author, true)
	}
	if r.Creator != "" {
		pdf.SetCreator(r.Creator, true)
	}
	for _, inst := range doc {
		if inst.Kind == KindTitle {
			pdf.SetTitle(inst.Text, true)
			break
		}
	}
	pdf.AddPage()

	for _, inst := range doc {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch inst.Kind {
		case KindTitle:
			pdf.SetFont(fontFamily, "B", 18)
			pdf.SetTextColor(3, 8, 43)
			pdf.MultiCell(0, 9, inst.Text, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		case KindHeading:
			pdf.Ln(4)
			pdf.SetFont(fontFamily, "B", 13)
			pdf.SetTextColor(3, 8, 43)
			pdf.MultiCell(0, 7, inst.Text, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		case KindParagraph:
			pdf.SetFont(fontFamily, "", 11)
			pdf.MultiCell(0, lineHeight, inst.Text, "", "L", false)
		case KindList:
			pdf.SetFont(fontFamily, "", 11)
			for _, item := range inst.Items {
				pdf.SetX(marginMM)
				pdf.CellFormat(bulletMM, lineHeight, "•", "", 0, "L", false, 0, "")
				pdf.MultiCell(0, lineHeight, item, "", "L", false)
			}
		case KindClosing:
			pdf.SetFont(fontFamily, "I", 11)
			pdf.MultiCell(0, lineHeight, inst.Text, "", "L", false)
		case KindSpacer:
			pdf.Ln(inst.Height)
		default:
			return nil, fmt.Errorf("document: unknown instruction kind %d", inst.Kind)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("document: render: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: output: %w", err)
	}
	return buf.Bytes(), nil
}
