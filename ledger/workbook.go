package ledger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/iatac-in/membership-payments/models"
)

const workbookSheet = "Transactions"

var workbookHeaders = []string{
	"Transaction Date", "Transaction Time", "User Full Name", "User Mobile Number",
	"User Email Address", "Selected Service Name", "Service Category", "Amount Paid (INR)",
	"Payment Method", "Razorpay Payment ID", "Order ID", "Payment Status",
	"Website Source", "Receipt Generated", "Manager Email Sent", "PDF Receipt Source",
	"Created At",
}

// WorkbookLedger appends rows to a local .xlsx workbook. Used where no
// Google Sheets credential is available but an audit trail is still wanted.
// Unlike the Sheets backend, appending here is a local read-modify-write of
// the whole file, so concurrent appends from pool workers must serialize.
type WorkbookLedger struct {
	mu            sync.Mutex
	path          string
	catalog       *models.Catalog
	receiptSource string
	loc           *time.Location
}

// NewWorkbookLedger creates a ledger backed by the workbook at path. The
// file is created with a header row on first append.
func NewWorkbookLedger(path string, catalog *models.Catalog, receiptSource string, loc *time.Location) *WorkbookLedger {
	return &WorkbookLedger{path: path, catalog: catalog, receiptSource: receiptSource, loc: loc}
}

// Append adds one transaction row and saves the workbook.
func (l *WorkbookLedger) Append(rec *models.TransactionRecord, orderID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, sheet, err := l.open()
	if err != nil {
		return err
	}

	row := sheet.AddRow()
	for _, v := range buildRow(rec, orderID, l.catalog.Category(rec.Service), l.receiptSource, time.Now().In(l.loc)) {
		row.AddCell().SetString(v)
	}

	if err := file.Save(l.path); err != nil {
		return fmt.Errorf("save ledger workbook: %v", err)
	}
	return nil
}

func (l *WorkbookLedger) open() (*xlsx.File, *xlsx.Sheet, error) {
	if _, err := os.Stat(l.path); err == nil {
		file, err := xlsx.OpenFile(l.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open ledger workbook: %v", err)
		}
		if sheet, ok := file.Sheet[workbookSheet]; ok {
			return file, sheet, nil
		}
		sheet, err := file.AddSheet(workbookSheet)
		if err != nil {
			return nil, nil, fmt.Errorf("add ledger sheet: %v", err)
		}
		return file, sheet, nil
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(workbookSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("create ledger sheet: %v", err)
	}
	headerRow := sheet.AddRow()
	for _, h := range workbookHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}
	return file, sheet, nil
}
