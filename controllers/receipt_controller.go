package controllers

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/iatac-in/membership-payments/utils"
)

// ReceiptController serves rendered receipt PDFs from the receipts
// directory.
type ReceiptController struct {
	dir string
}

// NewReceiptController creates the controller for the given directory.
func NewReceiptController(dir string) *ReceiptController {
	return &ReceiptController{dir: dir}
}

// Download handles GET /download_receipt/:filename
func (rc *ReceiptController) Download(c *gin.Context) {
	// filepath.Base strips any path components a crafted filename carries.
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == string(os.PathSeparator) || filepath.Ext(filename) != ".pdf" {
		utils.LogError("Rejected receipt download request for %q", c.Param("filename"))
		utils.BadRequest(c, "Invalid receipt filename", nil)
		return
	}

	path := filepath.Join(rc.dir, filename)
	if _, err := os.Stat(path); err != nil {
		utils.LogError("Receipt not found: %s", path)
		utils.NotFound(c, "Receipt not found")
		return
	}

	utils.LogInfo("Serving receipt %s", filename)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
