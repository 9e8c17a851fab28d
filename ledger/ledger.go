// Package ledger appends verified transactions to an external spreadsheet.
// Appends are best-effort and write-only; there is no update or delete path
// and no de-duplication, so re-logging a payment id produces a second row.
package ledger

import (
	"fmt"
	"time"

	"github.com/iatac-in/membership-payments/models"
)

// SiteTag identifies rows written by this deployment.
const SiteTag = "iatac.in"

// Ledger appends one row per verified transaction.
type Ledger interface {
	Append(rec *models.TransactionRecord, orderID string) error
}

// Noop is the disabled ledger used when no backend is configured.
type Noop struct{}

// Append discards the row.
func (Noop) Append(rec *models.TransactionRecord, orderID string) error { return nil }

// buildRow flattens a transaction into the fixed 17-column sheet layout.
// receiptSource records how the receipt was delivered for this deployment.
func buildRow(rec *models.TransactionRecord, orderID, category, receiptSource string, now time.Time) []string {
	return []string{
		now.Format("02-01-2006"),        // Transaction Date
		now.Format("15:04:05"),          // Transaction Time
		rec.Name,                        // User Full Name
		rec.Phone,                       // User Mobile Number
		rec.Email,                       // User Email Address
		rec.Service,                     // Selected Service Name
		category,                        // Service Category
		fmt.Sprintf("%.2f", rec.Amount), // Amount Paid (INR)
		rec.Method,                      // Payment Method
		rec.PaymentID,                   // Razorpay Payment ID
		orderID,                         // Order ID
		"SUCCESS",                       // Payment Status
		SiteTag,                         // Website Source
		"Yes",                           // Receipt Generated
		"Yes",                           // Manager Email Sent
		receiptSource,                   // PDF Receipt Source
		now.Format("2006-01-02 15:04:05"), // Created At
	}
}
