package routes

import (
	"academy-backend/handlers/payments"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	group := r.Group("/payments")
	group.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		group.POST("", payments.CreatePayment)
		group.GET("", payments.ListPayments)
		group.PUT("/:id", payments.UpdatePayment)
		group.DELETE("/:id", payments.DeletePayment)
	}
}
