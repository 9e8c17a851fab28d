// Package payments implements the order-processing workflow: order
// creation against the service catalog, payment verification through the
// gateway, and the best-effort fan-out (emails, ledger row, PDF receipt)
// that follows a verified payment.
package payments

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/iatac-in/membership-payments/gateway"
	"github.com/iatac-in/membership-payments/ledger"
	"github.com/iatac-in/membership-payments/models"
	"github.com/iatac-in/membership-payments/notify"
	"github.com/iatac-in/membership-payments/receipt"
	"github.com/iatac-in/membership-payments/utils"
	"github.com/iatac-in/membership-payments/worker"
)

const receiptPrefix = "IATAC_"

// Options carries the collaborators and settings for a Service.
type Options struct {
	Catalog  *models.Catalog
	Gateway  gateway.Client
	Mailer   notify.Sender
	Ledger   ledger.Ledger
	Renderer receipt.Renderer

	// Dispatcher runs the post-verification side effects. A worker.Sync
	// dispatcher runs them inline in a fixed order; the pool runs them
	// detached with no ordering guarantee.
	Dispatcher worker.Dispatcher

	ManagerEmail string
	ContactEmail string

	// InlineReceipts returns the PDF as base64 on the record instead of
	// writing it to disk.
	InlineReceipts bool

	Location *time.Location
	Now      func() time.Time
}

// Service orchestrates the payment workflow. Safe for concurrent use; it
// holds no mutable state.
type Service struct {
	opts Options
}

// NewService creates the workflow service. Location defaults to
// Asia/Kolkata and Now to time.Now.
func NewService(opts Options) *Service {
	if opts.Location == nil {
		loc, err := time.LoadLocation("Asia/Kolkata")
		if err != nil {
			loc = time.FixedZone("IST", 5*3600+1800)
		}
		opts.Location = loc
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{opts: opts}
}

// CreateOrder validates the requested service, builds a gateway order with
// a fresh receipt tag and the customer details as notes, and returns the
// gateway's order object verbatim.
func (s *Service) CreateOrder(req models.OrderRequest) (map[string]interface{}, error) {
	price, ok := s.opts.Catalog.Price(req.Service)
	if !ok {
		return nil, ErrInvalidService
	}

	data := map[string]interface{}{
		"amount":   price,
		"currency": "INR",
		"receipt":  receiptTag(),
		"notes": map[string]interface{}{
			"User Name": req.Name,
			"Mobile":    req.Phone,
			"Email":     req.Email,
			"Service":   req.Service,
		},
	}

	order, err := s.opts.Gateway.CreateOrder(data)
	if err != nil {
		return nil, &GatewayError{Op: "create order", Err: err}
	}
	return order, nil
}

// VerifyPayment checks the payment signature, fetches the authoritative
// order and payment objects, and assembles the transaction record. Identity
// and service come from the gateway order's notes, the amount from the
// gateway payment, never from the client. Side effects (emails, ledger,
// receipt) run best-effort; their failures do not fail the request.
func (s *Service) VerifyPayment(orderID, paymentID, signature string) (*models.TransactionRecord, error) {
	if err := s.opts.Gateway.VerifySignature(orderID, paymentID, signature); err != nil {
		utils.LogError("Signature verification failed for order %s: %v", orderID, err)
		return nil, ErrSignatureInvalid
	}

	payment, err := s.opts.Gateway.FetchPayment(paymentID)
	if err != nil {
		return nil, &GatewayError{Op: "fetch payment", Err: err}
	}
	order, err := s.opts.Gateway.FetchOrder(orderID)
	if err != nil {
		return nil, &GatewayError{Op: "fetch order", Err: err}
	}

	notes := noteMap(order["notes"])
	now := s.opts.Now().In(s.opts.Location)

	rec := &models.TransactionRecord{
		Name:      noteString(notes, "User Name"),
		Phone:     noteString(notes, "Mobile"),
		Email:     noteString(notes, "Email"),
		Service:   noteString(notes, "Service"),
		Amount:    numeric(payment["amount"]) / 100,
		PaymentID: paymentID,
		ReceiptNo: stringOr(order["receipt"], ""),
		Date:      now.Format("02-Jan-2006 03:04:05 PM") + " IST",
		Method:    stringOr(payment["method"], "N/A"),
	}

	s.fanOut(rec, orderID)
	s.attachReceipt(rec)

	return rec, nil
}

// SubmitContact validates a contact form message and dispatches the
// enquiry email to the operator address. Delivery is fire-and-forget; the
// caller gets an acknowledgment as soon as dispatch is initiated.
func (s *Service) SubmitContact(name, mobile, email, message, honeypot string) error {
	if honeypot != "" {
		return ErrSpamDetected
	}
	if name == "" || mobile == "" || email == "" || message == "" {
		return ErrValidation
	}

	subject := "New Contact Enquiry from " + name
	body := notify.ContactEnquiryBody(name, mobile, email, message, s.opts.Now().In(s.opts.Location))
	to := s.opts.ContactEmail

	s.opts.Dispatcher.Dispatch(func() {
		if err := s.opts.Mailer.Send(to, subject, body); err != nil {
			utils.LogError("Contact enquiry email failed: %v", err)
		}
	})
	return nil
}

// fanOut dispatches the operator alert, the customer confirmation and the
// ledger append. With the sync dispatcher they run in exactly this order.
func (s *Service) fanOut(rec *models.TransactionRecord, orderID string) {
	managerBody := notify.ManagerAlertBody(rec)
	customerBody := notify.CustomerConfirmationBody(rec)

	s.opts.Dispatcher.Dispatch(func() {
		if err := s.opts.Mailer.Send(s.opts.ManagerEmail, "Custom Payment Alert", managerBody); err != nil {
			utils.LogError("Manager payment alert failed: %v", err)
		}
	})
	s.opts.Dispatcher.Dispatch(func() {
		if err := s.opts.Mailer.Send(rec.Email, "IATAC Payment Confirmation", customerBody); err != nil {
			utils.LogError("Customer confirmation email failed: %v", err)
		}
	})
	s.opts.Dispatcher.Dispatch(func() {
		if err := s.opts.Ledger.Append(rec, orderID); err != nil {
			utils.LogError("Ledger append failed for payment %s: %v", rec.PaymentID, err)
		}
	})
}

// attachReceipt renders the PDF and attaches either a download path or the
// inline base64 bytes. A render failure leaves both fields empty.
func (s *Service) attachReceipt(rec *models.TransactionRecord) {
	if s.opts.InlineReceipts {
		data, err := s.opts.Renderer.Render(rec)
		if err != nil {
			utils.LogError("Receipt rendering failed for payment %s: %v", rec.PaymentID, err)
			return
		}
		encoded := base64.StdEncoding.EncodeToString(data)
		rec.PDFBase64 = &encoded
		return
	}

	filename, err := s.opts.Renderer.RenderToFile(rec)
	if err != nil {
		utils.LogError("Receipt rendering failed for payment %s: %v", rec.PaymentID, err)
		return
	}
	url := "/download_receipt/" + filename
	rec.PDFURL = &url
}

// receiptTag generates the visible receipt identifier: prefix plus four
// random bytes, hex, upper-cased.
func receiptTag() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return receiptPrefix + strings.ToUpper(hex.EncodeToString(b))
}

func noteMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return nil
}

func noteString(notes map[string]interface{}, key string) string {
	if s, ok := notes[key].(string); ok {
		return s
	}
	return ""
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// numeric unpacks gateway amounts, which decode as float64 or json.Number
// depending on the SDK's decoder settings.
func numeric(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}
