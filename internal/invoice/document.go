package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// FileName is the download name of a generated invoice.
const FileName = "invoice.pdf"

const (
	fontFamily = "Helvetica"
	fontSize   = 12
	margin     = 50.0
	lineHeight = 20.0
)

// Renderer draws invoices as single page PDF documents.
type Renderer struct {
	creator string
}

// NewRenderer returns a Renderer stamping creator into the document info.
func NewRenderer(creator string) *Renderer {
	return &Renderer{creator: creator}
}

// Render draws the invoice and stores its metadata as JSON in the document subject.
// Empty transaction fields are rendered and embedded as empty strings.
func (r *Renderer) Render(form model.InvoiceForm, tx model.TransactionRecord, network model.Network) ([]byte, error) {
	subject, err := EncodeMetadata(form.Metadata(tx))
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("Invoice", true)
	pdf.SetCreator(r.creator, true)
	pdf.SetSubject(subject, true)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)
	pdf.SetTextColor(0, 0, 0)

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	for i, line := range Lines(form, tx, network) {
		pdf.Text(margin, margin+lineHeight*float64(i+1), translate(line))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

// Lines returns the text lines of an invoice, top to bottom.
func Lines(form model.InvoiceForm, tx model.TransactionRecord, network model.Network) []string {
	return []string{
		"Invoice",
		"Business Name: " + form.BusinessName,
		"Transaction Hash: " + form.TransactionHash,
		"Invoice Date: " + form.InvoiceDate,
		"Customer: " + tx.From,
		"Product Name: " + form.ProductName,
		"Category: " + form.Category,
		"Quantity: " + form.Quantity,
		fmt.Sprintf("Amount: %s %s", tx.Value, network.Currency),
		"Network: " + network.ChainName,
	}
}
