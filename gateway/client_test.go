package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignatureValid(t *testing.T) {
	client := NewRazorpayClient("key", "secret")

	sig := sign("secret", "order_abc", "pay_xyz")
	err := client.VerifySignature("order_abc", "pay_xyz", sig)
	assert.NoError(t, err)
}

func TestVerifySignatureForged(t *testing.T) {
	client := NewRazorpayClient("key", "secret")

	err := client.VerifySignature("order_abc", "pay_xyz", "deadbeef")
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	client := NewRazorpayClient("key", "secret")

	sig := sign("other-secret", "order_abc", "pay_xyz")
	err := client.VerifySignature("order_abc", "pay_xyz", sig)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifySignatureBoundToIDs(t *testing.T) {
	client := NewRazorpayClient("key", "secret")

	// A signature for one order/payment pair must not verify another.
	sig := sign("secret", "order_abc", "pay_xyz")
	err := client.VerifySignature("order_abc", "pay_other", sig)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}
