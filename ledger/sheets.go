package ledger

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/iatac-in/membership-payments/models"
)

// SheetsLedger appends rows to a Google Sheets spreadsheet using a
// service-account credential file.
type SheetsLedger struct {
	credsFile     string
	spreadsheetID string
	catalog       *models.Catalog
	receiptSource string
	loc           *time.Location
}

// NewSheetsLedger creates a Google Sheets backed ledger. receiptSource is
// the value written to the PDF Receipt Source column for this deployment.
func NewSheetsLedger(credsFile, spreadsheetID string, catalog *models.Catalog, receiptSource string, loc *time.Location) *SheetsLedger {
	return &SheetsLedger{
		credsFile:     credsFile,
		spreadsheetID: spreadsheetID,
		catalog:       catalog,
		receiptSource: receiptSource,
		loc:           loc,
	}
}

// Append authenticates, opens the configured spreadsheet and appends one
// transaction row to the first sheet.
func (l *SheetsLedger) Append(rec *models.TransactionRecord, orderID string) error {
	creds, err := os.ReadFile(l.credsFile)
	if err != nil {
		return fmt.Errorf("read sheet credentials: %v", err)
	}

	ctx := context.Background()
	conf, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return fmt.Errorf("parse sheet credentials: %v", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return fmt.Errorf("create sheets service: %v", err)
	}

	row := buildRow(rec, orderID, l.catalog.Category(rec.Service), l.receiptSource, time.Now().In(l.loc))
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	_, err = svc.Spreadsheets.Values.
		Append(l.spreadsheetID, "A1", &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append sheet row: %v", err)
	}
	return nil
}
