package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/iatac-in/membership-payments/controllers"
	"github.com/iatac-in/membership-payments/utils"
)

// SetupRouter initializes the Gin router with all routes. The same handler
// set is registered bare and under /api, matching the two deployment shapes
// the frontend is served from.
func SetupRouter(payment *controllers.PaymentController, contact *controllers.ContactController, receipt *controllers.ReceiptController) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	register := func(g gin.IRoutes) {
		g.POST("/create_order", payment.CreateOrder)
		g.POST("/verify_payment", payment.VerifyPayment)
		g.POST("/contact_submit", contact.Submit)
		g.GET("/download_receipt/:filename", receipt.Download)
	}

	register(router)
	register(router.Group("/api"))

	return router
}
