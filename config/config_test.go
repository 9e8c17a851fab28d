package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "receipts", cfg.ReceiptsDir)
	assert.False(t, cfg.SyncDispatch)
	assert.False(t, cfg.InlineReceipts)
}

func TestLoadConfigRequiresGatewayKeys(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	t.Setenv("PORT", "9000")
	t.Setenv("SYNC_DISPATCH", "1")
	t.Setenv("INLINE_RECEIPTS", "1")
	t.Setenv("LEDGER_FILE", "ledger.xlsx")
	t.Setenv("SMTP_PORT", "587")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.SyncDispatch)
	assert.True(t, cfg.InlineReceipts)
	assert.Equal(t, "ledger.xlsx", cfg.LedgerFile)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoadConfigBadSMTPPortFallsBack(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 465, cfg.SMTPPort)
}
