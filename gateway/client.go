// Package gateway wraps the Razorpay SDK behind a small interface so the
// payment workflow can be exercised against a stub in tests.
package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrSignatureMismatch is returned when the client-supplied signature does
// not match the one derived from the order and payment ids.
var ErrSignatureMismatch = errors.New("payment signature mismatch")

// Client is the payment gateway surface the workflow depends on. Order and
// payment objects are the gateway's raw maps, returned verbatim.
type Client interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	FetchOrder(orderID string) (map[string]interface{}, error)
	FetchPayment(paymentID string) (map[string]interface{}, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// RazorpayClient implements Client against the live Razorpay API.
type RazorpayClient struct {
	client *razorpay.Client
	secret string
}

// NewRazorpayClient creates a gateway client with the given API credentials.
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
	}
}

// CreateOrder creates an order on the gateway and returns its raw object.
func (r *RazorpayClient) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return r.client.Order.Create(data, nil)
}

// FetchOrder retrieves the authoritative order object by id.
func (r *RazorpayClient) FetchOrder(orderID string) (map[string]interface{}, error) {
	return r.client.Order.Fetch(orderID, nil, nil)
}

// FetchPayment retrieves the authoritative payment object by id.
func (r *RazorpayClient) FetchPayment(paymentID string) (map[string]interface{}, error) {
	return r.client.Payment.Fetch(paymentID, nil, nil)
}

// VerifySignature checks the Razorpay payment signature: HMAC-SHA256 over
// "orderID|paymentID" keyed with the API secret, hex-encoded.
func (r *RazorpayClient) VerifySignature(orderID, paymentID, signature string) error {
	h := hmac.New(sha256.New, []byte(r.secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
