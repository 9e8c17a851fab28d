package models

// OrderRequest is the payload for creating a payment order. Validated
// against the catalog before use and discarded after the gateway call.
type OrderRequest struct {
	Service string `json:"service" binding:"required"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// TransactionRecord is the authoritative summary of a completed, verified
// payment. Identity and service come from the gateway order's notes, never
// from the client payload, so metadata cannot be tampered with after order
// creation. Amount is in rupees.
type TransactionRecord struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Service   string  `json:"service"`
	Amount    float64 `json:"amount"`
	PaymentID string  `json:"payment_id"`
	ReceiptNo string  `json:"receipt_no"`
	Date      string  `json:"date"`
	Method    string  `json:"method"`

	// Exactly one of these is populated, depending on the receipt mode.
	PDFURL    *string `json:"pdf_url,omitempty"`
	PDFBase64 *string `json:"pdf_base64,omitempty"`
}
