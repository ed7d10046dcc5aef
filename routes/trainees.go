package routes

import (
	"academy-backend/handlers/payments"
	"academy-backend/handlers/trainees"
	"academy-backend/middleware"

	"github.com/gin-gonic/gin"
)

func TraineeRoutes(r *gin.Engine) {
	group := r.Group("/trainees")
	group.Use(middleware.JWTAuth(), middleware.OrgScoped())
	{
		group.POST("", trainees.CreateTrainee)
		group.GET("", trainees.ListTrainees)
		group.GET("/:id", trainees.GetTrainee)
		group.PUT("/:id", trainees.UpdateTrainee)
		group.DELETE("/:id", trainees.DeleteTrainee)
		group.POST("/bulk-deactivate", trainees.BulkDeactivateTrainees)
		group.GET("/:id/month-grid", payments.MonthGrid)
	}
}
