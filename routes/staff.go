package routes

import (
	"academy-backend/handlers/staff"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

func StaffRoutes(r *gin.Engine) {
	group := r.Group("/staff")
	group.Use(middleware.JWTAuth(), middleware.OrgScoped(), middleware.AdminAuth())
	{
		group.POST("", staff.CreateStaff)
		group.GET("", staff.ListStaff)
		group.PUT("/:id", staff.UpdateStaff)
		group.DELETE("/:id", staff.DeleteStaff)
	}
}
