package routes

import (
	"academy-backend/handlers/reports"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(r *gin.Engine) {
	r.GET("/dashboard", middleware.JWTAuth(), middleware.OrgScoped(), reports.Dashboard)

	group := r.Group("/reports")
	group.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		group.GET("/unpaid", reports.UnpaidTrainees)
		group.GET("/unpaid-month", reports.UnpaidForMonth)
		group.GET("/financials", reports.Financials)
	}
}
