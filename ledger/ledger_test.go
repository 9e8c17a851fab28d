package ledger

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/iatac-in/membership-payments/models"
)

func sampleRecord() *models.TransactionRecord {
	return &models.TransactionRecord{
		Name:      "Asha Rao",
		Phone:     "9876543210",
		Email:     "asha@example.com",
		Service:   "Demo Service",
		Amount:    1.00,
		PaymentID: "pay_456",
		ReceiptNo: "IATAC_AB12CD34",
		Date:      "14-Mar-2025 09:30:00 AM IST",
		Method:    "card",
	}
}

func TestBuildRowShape(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 15, 0, time.UTC)
	row := buildRow(sampleRecord(), "order_123", "Membership", "N/A", now)

	require.Len(t, row, 17)
	assert.Equal(t, "14-03-2025", row[0])
	assert.Equal(t, "09:30:15", row[1])
	assert.Equal(t, "Asha Rao", row[2])
	assert.Equal(t, "Demo Service", row[5])
	assert.Equal(t, "Membership", row[6])
	assert.Equal(t, "1.00", row[7])
	assert.Equal(t, "card", row[8])
	assert.Equal(t, "pay_456", row[9])
	assert.Equal(t, "order_123", row[10])
	assert.Equal(t, "SUCCESS", row[11])
	assert.Equal(t, SiteTag, row[12])
	assert.Equal(t, "Yes", row[13])
	assert.Equal(t, "Yes", row[14])
	assert.Equal(t, "N/A", row[15])
	assert.Equal(t, "2025-03-14 09:30:15", row[16])
}

func TestNoopLedger(t *testing.T) {
	assert.NoError(t, Noop{}.Append(sampleRecord(), "order_123"))
}

func TestWorkbookLedgerAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	l := NewWorkbookLedger(path, models.NewCatalog(), "N/A", time.UTC)

	require.NoError(t, l.Append(sampleRecord(), "order_123"))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet, ok := file.Sheet[workbookSheet]
	require.True(t, ok)

	// Header plus one data row.
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Transaction Date", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "pay_456", sheet.Rows[1].Cells[9].Value)
	assert.Equal(t, "SUCCESS", sheet.Rows[1].Cells[11].Value)
}

func TestWorkbookLedgerNoDedup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	l := NewWorkbookLedger(path, models.NewCatalog(), "N/A", time.UTC)

	// Appending the same payment id twice is documented to produce two rows.
	require.NoError(t, l.Append(sampleRecord(), "order_123"))
	require.NoError(t, l.Append(sampleRecord(), "order_123"))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet := file.Sheet[workbookSheet]
	require.NotNil(t, sheet)
	assert.Len(t, sheet.Rows, 3)
}

func TestWorkbookLedgerConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	l := NewWorkbookLedger(path, models.NewCatalog(), "N/A", time.UTC)

	// Pool workers can append simultaneously; every transaction must land.
	const appends = 8
	var wg sync.WaitGroup
	for i := 0; i < appends; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			rec := sampleRecord()
			rec.PaymentID = fmt.Sprintf("pay_%d", n)
			assert.NoError(t, l.Append(rec, "order_123"))
		}(i)
	}
	wg.Wait()

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet := file.Sheet[workbookSheet]
	require.NotNil(t, sheet)
	assert.Len(t, sheet.Rows, appends+1)
}

func TestWorkbookLedgerCategoryLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	l := NewWorkbookLedger(path, models.NewCatalog(), "N/A", time.UTC)

	rec := sampleRecord()
	rec.Service = "Corporates Membership"
	require.NoError(t, l.Append(rec, "order_123"))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet := file.Sheet[workbookSheet]
	assert.Equal(t, "Corporate", sheet.Rows[1].Cells[6].Value)
}
