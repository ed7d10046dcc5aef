package middleware

import (
	"net/http"
	"strings"
	"time"

	"academy-backend/db"
	"academy-backend/models"
	"academy-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.Trim(parts[1], "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])
		c.Set("org_id", claims["org_id"])
		c.Next()
	}
}

// OrgScoped resolves the caller's organization and blocks the request once
// the subscription is expired past grace. Runs after JWTAuth.
func OrgScoped() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, _ := c.Get("org_id")
		id, ok := orgID.(string)
		if !ok || id == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "No organization in token"})
			c.Abort()
			return
		}

		var org models.Organization
		if err := db.DB.First(&org, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Organization not found"})
			c.Abort()
			return
		}

		if org.SubscriptionStatus == models.SubscriptionSuspended {
			c.JSON(http.StatusForbidden, gin.H{"error": "Organization is suspended"})
			c.Abort()
			return
		}

		if org.IsExpired(time.Now()) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Subscription expired, please renew"})
			c.Abort()
			return
		}

		c.Set("organization", &org)
		c.Next()
	}
}

func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != string(models.AdminRole) && role != string(models.SuperAdminRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func SuperAdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != string(models.SuperAdminRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: superadmin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentOrg returns the organization resolved by OrgScoped.
func CurrentOrg(c *gin.Context) *models.Organization {
	v, ok := c.Get("organization")
	if !ok {
		return nil
	}
	org, _ := v.(*models.Organization)
	return org
}
