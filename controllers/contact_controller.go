package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iatac-in/membership-payments/payments"
	"github.com/iatac-in/membership-payments/utils"
)

// ContactController exposes the contact form endpoint.
type ContactController struct {
	service *payments.Service
}

// NewContactController creates the controller with its workflow service.
func NewContactController(service *payments.Service) *ContactController {
	return &ContactController{service: service}
}

// Submit handles POST /contact_submit
func (cc *ContactController) Submit(c *gin.Context) {
	utils.LogInfo("ContactSubmit called")

	var req struct {
		Name     string `json:"name"`
		Mobile   string `json:"mobile"`
		Email    string `json:"email"`
		Message  string `json:"message"`
		Honeypot string `json:"honeypot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid contact request: %v", err)
		c.JSON(400, gin.H{"status": "Error", "message": "Invalid request"})
		return
	}

	err := cc.service.SubmitContact(req.Name, req.Mobile, req.Email, req.Message, req.Honeypot)
	switch {
	case errors.Is(err, payments.ErrSpamDetected):
		utils.LogError("Contact submission dropped by honeypot")
		c.JSON(400, gin.H{"status": "Error", "message": "Spam detected."})
	case errors.Is(err, payments.ErrValidation):
		c.JSON(400, gin.H{"status": "Error", "message": "All fields are required."})
	case err != nil:
		utils.LogError("Contact submission failed: %v", err)
		c.JSON(500, gin.H{"status": "Error", "message": "Something went wrong"})
	default:
		utils.LogInfo("Contact enquiry dispatched from %s", req.Email)
		c.JSON(200, gin.H{"status": "Success", "message": "Your message has been sent successfully!"})
	}
}
