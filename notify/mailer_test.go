package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iatac-in/membership-payments/models"
)

func TestMailerDisabledIsNoop(t *testing.T) {
	m := NewMailer("smtp.example.com", 465, "sender@example.com", "")

	assert.False(t, m.Enabled())
	// No credentials: Send must succeed without opening a connection.
	assert.NoError(t, m.Send("to@example.com", "subject", "<p>body</p>"))
}

func TestMailerEnabled(t *testing.T) {
	m := NewMailer("smtp.example.com", 465, "sender@example.com", "app-password")
	assert.True(t, m.Enabled())
}

func TestManagerAlertBody(t *testing.T) {
	rec := &models.TransactionRecord{
		Name:      "Asha Rao",
		Phone:     "9876543210",
		Email:     "asha@example.com",
		Service:   "Demo Service",
		Amount:    1.00,
		PaymentID: "pay_456",
		Date:      "14-Mar-2025 09:30:00 AM IST",
	}

	body := ManagerAlertBody(rec)
	assert.Contains(t, body, "Asha Rao")
	assert.Contains(t, body, "Demo Service")
	assert.Contains(t, body, "INR 1.00")
	assert.Contains(t, body, "pay_456")
}

func TestCustomerConfirmationBody(t *testing.T) {
	rec := &models.TransactionRecord{
		Name:      "Asha Rao",
		Service:   "Corporates Membership",
		Amount:    15000,
		PaymentID: "pay_456",
	}

	body := CustomerConfirmationBody(rec)
	assert.Contains(t, body, "Dear Asha Rao")
	assert.Contains(t, body, "Corporates Membership")
	assert.Contains(t, body, "INR 15000.00")
}

func TestContactEnquiryBody(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	body := ContactEnquiryBody("Asha Rao", "9876543210", "asha@example.com", "Hello there", now)

	assert.Contains(t, body, "Asha Rao")
	assert.Contains(t, body, "9876543210")
	assert.Contains(t, body, "Hello there")
	assert.Contains(t, body, "14-Mar-2025")
}
