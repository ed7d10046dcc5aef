package routes

import (
	"academy-backend/handlers/organizations"
	"academy-backend/handlers/subscriptions"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

// AdminRoutes are the superadmin tenant-billing endpoints. They are not
// OrgScoped: the superadmin operates across tenants, including expired ones.
func AdminRoutes(r *gin.Engine) {
	group := r.Group("/admin")
	group.Use(middleware.JWTAuth(), middleware.SuperAdminAuth())
	{
		group.GET("/organizations", organizations.ListOrganizations)
		group.PUT("/organizations/:id/status", organizations.SetOrganizationStatus)
		group.POST("/organizations/:id/subscription-payments", subscriptions.RecordSubscriptionPayment)
		group.GET("/organizations/:id/subscription-payments", subscriptions.ListSubscriptionPayments)
		group.POST("/organizations/:id/check-status", subscriptions.CheckOrganizationStatus)
		group.POST("/subscriptions/check", subscriptions.RunSubscriptionSweep)
	}
}
