package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once in
// main and passed by reference into every component; nothing reads the
// environment after startup.
type Config struct {
	Port string

	// Razorpay credentials
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Outbound mail. Empty SenderPassword disables mail entirely.
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	ManagerEmail   string
	ContactEmail   string

	// Ledger. SheetCredsFile+SheetID selects the Google Sheets backend,
	// LedgerFile selects the local workbook backend, neither disables it.
	SheetCredsFile string
	SheetID        string
	LedgerFile     string

	// Receipts
	ReceiptsDir    string
	LogoPath       string
	InlineReceipts bool

	// SyncDispatch runs side effects inline and in order instead of on the
	// worker pool. Meant for on-demand hosting where background work is not
	// guaranteed to finish after the response is sent.
	SyncDispatch bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in hosted environments; real env vars win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		Port:              getEnv("PORT", "8080"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 465),
		SenderEmail:       os.Getenv("SENDER_EMAIL"),
		SenderPassword:    os.Getenv("SENDER_PASSWORD"),
		ManagerEmail:      getEnv("MANAGER_EMAIL", "office.ravindra@gmail.com"),
		ContactEmail:      getEnv("CONTACT_EMAIL", "iatac.mumbai@gmail.com"),
		SheetCredsFile:    os.Getenv("GOOGLE_SHEET_CREDS_FILE"),
		SheetID:           os.Getenv("GOOGLE_SHEET_ID"),
		LedgerFile:        os.Getenv("LEDGER_FILE"),
		ReceiptsDir:       getEnv("RECEIPTS_DIR", "receipts"),
		LogoPath:          getEnv("LOGO_PATH", "images/logo-iatac.png"),
		InlineReceipts:    os.Getenv("INLINE_RECEIPTS") == "1",
		SyncDispatch:      os.Getenv("SYNC_DISPATCH") == "1",
	}

	if config.RazorpayKeyID == "" || config.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
