package main

import (
	"log"
	"time"

	"github.com/iatac-in/membership-payments/config"
	"github.com/iatac-in/membership-payments/controllers"
	"github.com/iatac-in/membership-payments/gateway"
	"github.com/iatac-in/membership-payments/ledger"
	"github.com/iatac-in/membership-payments/models"
	"github.com/iatac-in/membership-payments/notify"
	"github.com/iatac-in/membership-payments/payments"
	"github.com/iatac-in/membership-payments/receipt"
	"github.com/iatac-in/membership-payments/routes"
	"github.com/iatac-in/membership-payments/utils"
	"github.com/iatac-in/membership-payments/worker"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	catalog := models.NewCatalog()
	client := gateway.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
	if !mailer.Enabled() {
		utils.LogInfo("Mail credentials missing, notifications disabled")
	}

	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}

	// The ledger column records how receipts reach the customer in this
	// deployment: a download link or inline base64 bytes.
	receiptSource := "N/A"
	if cfg.InlineReceipts {
		receiptSource = "Base64 Download"
	}

	var txLedger ledger.Ledger = ledger.Noop{}
	switch {
	case cfg.SheetCredsFile != "" && cfg.SheetID != "":
		txLedger = ledger.NewSheetsLedger(cfg.SheetCredsFile, cfg.SheetID, catalog, receiptSource, loc)
	case cfg.LedgerFile != "":
		txLedger = ledger.NewWorkbookLedger(cfg.LedgerFile, catalog, receiptSource, loc)
	default:
		utils.LogInfo("No ledger backend configured, transaction logging disabled")
	}

	var dispatcher worker.Dispatcher
	if cfg.SyncDispatch {
		dispatcher = worker.Sync{}
	} else {
		pool := worker.NewPool(4, 64, func() {
			utils.LogError("Dispatch queue full, side-effect task dropped")
		})
		defer pool.Close()
		dispatcher = pool
	}

	service := payments.NewService(payments.Options{
		Catalog:        catalog,
		Gateway:        client,
		Mailer:         mailer,
		Ledger:         txLedger,
		Renderer:       receipt.NewPDFRenderer(cfg.LogoPath, cfg.ReceiptsDir),
		Dispatcher:     dispatcher,
		ManagerEmail:   cfg.ManagerEmail,
		ContactEmail:   cfg.ContactEmail,
		InlineReceipts: cfg.InlineReceipts,
		Location:       loc,
	})

	// Set up router with middleware
	router := routes.SetupRouter(
		controllers.NewPaymentController(service),
		controllers.NewContactController(service),
		controllers.NewReceiptController(cfg.ReceiptsDir),
	)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
