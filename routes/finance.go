package routes

import (
	"academy-backend/handlers/costs"
	"academy-backend/handlers/events"
	"academy-backend/handlers/incomes"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

func FinanceRoutes(r *gin.Engine) {
	costGroup := r.Group("/costs")
	costGroup.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		costGroup.POST("", costs.CreateCost)
		costGroup.GET("", costs.ListCosts)
		costGroup.PUT("/:id", costs.UpdateCost)
		costGroup.DELETE("/:id", costs.DeleteCost)
	}

	incomeGroup := r.Group("/incomes")
	incomeGroup.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		incomeGroup.POST("", incomes.CreateIncome)
		incomeGroup.GET("", incomes.ListIncomes)
		incomeGroup.DELETE("/:id", incomes.DeleteIncome)
	}

	eventGroup := r.Group("/events")
	eventGroup.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		eventGroup.POST("", events.CreateEvent)
		eventGroup.GET("", events.ListEvents)
		eventGroup.PUT("/:id", events.UpdateEvent)
		eventGroup.DELETE("/:id", events.DeleteEvent)
	}
}
