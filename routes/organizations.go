package routes

import (
	"academy-backend/handlers/organizations"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

func OrganizationRoutes(r *gin.Engine) {
	org := r.Group("/organization")
	org.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		org.GET("", organizations.GetCurrentOrganization)
		org.PUT("", middleware.AdminAuth(), organizations.UpdateCurrentOrganization)
	}
}
