// Package receipt renders the fixed-layout payment receipt PDF.
package receipt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/iatac-in/membership-payments/models"
)

// Renderer produces the receipt document for a verified transaction.
type Renderer interface {
	Render(rec *models.TransactionRecord) ([]byte, error)
	RenderToFile(rec *models.TransactionRecord) (string, error)
}

// PDFRenderer renders receipts with gofpdf. The same render path backs both
// output modes, so file and inline bytes are identical for the same record.
type PDFRenderer struct {
	logoPath string
	dir      string
}

// NewPDFRenderer creates a renderer. logoPath may point at a missing file;
// the logo is simply omitted then. dir is where RenderToFile writes.
func NewPDFRenderer(logoPath, dir string) *PDFRenderer {
	return &PDFRenderer{logoPath: logoPath, dir: dir}
}

// Render produces the single-page receipt document as raw PDF bytes.
func (r *PDFRenderer) Render(rec *models.TransactionRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	// Fixed creation date so the file and inline modes emit identical bytes
	// for the same record.
	pdf.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	pdf.SetHeaderFunc(func() {
		if _, err := os.Stat(r.logoPath); err == nil {
			pdf.ImageOptions(r.logoPath, 10, 8, 33, 0, false, gofpdf.ImageOptions{}, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 20)
		pdf.SetTextColor(0, 123, 255)
		pdf.Cell(80, 10, "")
		pdf.CellFormat(100, 10, "OFFICIAL RECEIPT", "", 1, "R", false, 0, "")
		pdf.Ln(20)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-35)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(169, 169, 169)
		pdf.CellFormat(0, 10, "This is a computer-generated document. No signature is required.", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(45, 52, 70)
		pdf.CellFormat(0, 10, "IATAC - Indian Association of Talent Acquisition Consultants", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, "Office-609, Parth Solitaire, Sector-9E, Kalamboli, Navi Mumbai - 410218", "", 0, "C", false, 0, "")
	})

	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Billed-to block
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 10, "BILLED TO:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, rec.Name, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Mobile: "+rec.Phone, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Email: "+rec.Email, "", 1, "L", false, 0, "")

	// Receipt number and date, top right
	pdf.SetXY(140, 45)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(50, 6, "RECEIPT NO:", "", 1, "R", false, 0, "")
	pdf.SetX(140)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(50, 6, "#"+rec.ReceiptNo, "", 1, "R", false, 0, "")
	pdf.SetX(140)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(50, 6, "DATE:", "", 1, "R", false, 0, "")
	pdf.SetX(140)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(50, 6, rec.Date, "", 1, "R", false, 0, "")

	pdf.Ln(20)

	// Items table header
	pdf.SetFillColor(0, 123, 255)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 10, " Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 10, " Transaction ID", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 10, " Amount", "1", 1, "R", true, 0, "")

	// Single item row
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(100, 15, " "+rec.Service, "1", 0, "L", false, 0, "")
	pdf.SetFont("Courier", "", 9)
	pdf.CellFormat(50, 15, " "+rec.PaymentID, "1", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 15, fmt.Sprintf(" INR %.2f ", rec.Amount), "1", 1, "R", false, 0, "")

	// Total line
	pdf.Ln(10)
	pdf.SetX(140)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(50, 10, "TOTAL RECEIVED:", "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 123, 255)
	pdf.CellFormat(0, 10, fmt.Sprintf(" INR %.2f", rec.Amount), "", 1, "R", false, 0, "")

	// Payment method and status
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 10, "Payment Method: "+strings.ToUpper(rec.Method), "", 1, "L", false, 0, "")
	pdf.SetTextColor(40, 167, 69)
	pdf.CellFormat(0, 10, "Status: PAID", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %v", err)
	}
	return buf.Bytes(), nil
}

// RenderToFile renders the receipt and writes it under the receipts
// directory as Receipt_<paymentID>.pdf, returning the bare filename.
func (r *PDFRenderer) RenderToFile(rec *models.TransactionRecord) (string, error) {
	data, err := r.Render(rec)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("create receipts directory: %v", err)
	}

	filename := fmt.Sprintf("Receipt_%s.pdf", rec.PaymentID)
	if err := os.WriteFile(filepath.Join(r.dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write receipt file: %v", err)
	}
	return filename, nil
}
