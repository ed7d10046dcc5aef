package organizations

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/middleware"
	"academy-backend/models"
	"academy-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCurrentOrganization returns the caller's organization with its live
// subscription badge
// @Summary Get the current organization
// @Description Return the caller's organization together with its subscription status badge
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /organization [get]
func GetCurrentOrganization(c *gin.Context) {
	org := middleware.CurrentOrg(c)
	if org == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No organization in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": org,
		"status":       org.StatusDisplay(time.Now()),
	})
}

// UpdateCurrentOrganization updates the caller's organization profile
// @Summary Update the current organization
// @Description Update the organization profile and rent schedule (admin only)
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body models.OrganizationUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Organization
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /organization [put]
func UpdateCurrentOrganization(c *gin.Context) {
	org := middleware.CurrentOrg(c)
	if org == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No organization in context"})
		return
	}

	var update models.OrganizationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.Name != "" {
		org.Name = update.Name
	}
	if update.Description != "" {
		org.Description = update.Description
	}
	if update.Email != "" {
		org.Email = update.Email
	}
	if update.PhoneNumber != "" {
		org.PhoneNumber = update.PhoneNumber
	}
	if update.Location != "" {
		org.Location = update.Location
	}
	if update.RentAmount != nil {
		org.RentAmount = *update.RentAmount
	}
	if update.RentDueDate != nil {
		org.RentDueDate = update.RentDueDate
	}

	if err := db.DB.Save(org).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating organization: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations lists every tenant with their subscription badge
// @Summary List all organizations
// @Description List every tenant with its subscription badge (superadmin only)
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Failure 403 {object} map[string]string "error: Access denied"
// @Router /admin/organizations [get]
func ListOrganizations(c *gin.Context) {
	var orgs []models.Organization
	if err := db.DB.Order("created_at DESC").Find(&orgs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now()
	out := make([]gin.H, 0, len(orgs))
	for i := range orgs {
		out = append(out, gin.H{
			"organization": orgs[i],
			"status":       orgs[i].StatusDisplay(today),
		})
	}

	c.JSON(http.StatusOK, out)
}

// SetOrganizationStatus applies the manual suspended/active override
// @Summary Override an organization's status
// @Description Manually suspend or reactivate a tenant (superadmin only). Automatic transitions never reach suspended.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param status body models.OrganizationUpdate true "subscriptionStatus: suspended or active"
// @Security BearerAuth
// @Success 200 {object} models.Organization
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 404 {object} map[string]string "error: Organization not found"
// @Router /admin/organizations/{id}/status [put]
func SetOrganizationStatus(c *gin.Context) {
	var org models.Organization
	if err := db.DB.First(&org, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	var update models.OrganizationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	switch models.SubscriptionStatus(update.SubscriptionStatus) {
	case models.SubscriptionSuspended:
		org.SubscriptionStatus = models.SubscriptionSuspended
		org.IsActive = false
	case models.SubscriptionActive:
		org.SubscriptionStatus = models.SubscriptionActive
		org.IsActive = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be suspended or active"})
		return
	}

	if update.GracePeriodDays != nil {
		org.GracePeriodDays = *update.GracePeriodDays
	}

	if err := db.DB.Save(&org).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating organization: " + err.Error()})
		return
	}

	utils.LogSuccessWithOrg(org.ID, "Organization status overridden to "+string(org.SubscriptionStatus))
	c.JSON(http.StatusOK, org)
}
