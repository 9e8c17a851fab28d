package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iatac-in/membership-payments/models"
	"github.com/iatac-in/membership-payments/payments"
	"github.com/iatac-in/membership-payments/utils"
)

// PaymentController exposes the order-creation and verification endpoints.
type PaymentController struct {
	service *payments.Service
}

// NewPaymentController creates the controller with its workflow service.
func NewPaymentController(service *payments.Service) *PaymentController {
	return &PaymentController{service: service}
}

// CreateOrder handles POST /create_order
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	order, err := pc.service.CreateOrder(req)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidService) {
			utils.LogError("Order rejected, unknown service: %q", req.Service)
			utils.BadRequest(c, "Invalid service selected", nil)
			return
		}
		utils.LogError("Failed to create order for service %q: %v", req.Service, err)
		utils.BadGateway(c, "Failed to create order", err.Error())
		return
	}

	utils.LogInfo("Created gateway order %v for service %q", order["id"], req.Service)
	c.JSON(200, order)
}

// VerifyPayment handles POST /verify_payment
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verification request: %v", err)
		c.JSON(400, gin.H{"status": "Error", "error": "Invalid request"})
		return
	}

	rec, err := pc.service.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		if errors.Is(err, payments.ErrSignatureInvalid) {
			// Security-relevant failure, keep the message generic.
			utils.LogError("Verification rejected for order %s", req.RazorpayOrderID)
			c.JSON(400, gin.H{"status": "Error", "error": "Payment verification failed"})
			return
		}
		utils.LogError("Verification failed for order %s: %v", req.RazorpayOrderID, err)
		c.JSON(502, gin.H{"status": "Error", "error": err.Error()})
		return
	}

	utils.LogInfo("Payment %s verified for order %s", req.RazorpayPaymentID, req.RazorpayOrderID)
	c.JSON(200, gin.H{"status": "Success", "details": rec})
}
