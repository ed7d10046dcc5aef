package routes

import (
	"academy-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
}
