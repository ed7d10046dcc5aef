package staff

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/internal/cache"
	"academy-backend/middleware"
	"academy-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Create a staff member
// @Description Add a staff member; Started anchors the monthly salary schedule
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body models.Staff true "Staff information"
// @Security BearerAuth
// @Success 201 {object} models.Staff
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /staff [post]
func CreateStaff(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	member.ID = ""
	member.OrganizationID = org.ID
	if member.Started.IsZero() {
		member.Started = time.Now()
	}

	if err := db.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating staff member: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusCreated, member)
}

// @Summary List staff members
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Staff
// @Router /staff [get]
func ListStaff(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var members []models.Staff
	if err := db.DB.Where("organization_id = ?", org.ID).Order("name ASC").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param staff body models.StaffUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Staff
// @Failure 404 {object} map[string]string "error: Staff member not found"
// @Router /staff/{id} [put]
func UpdateStaff(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var member models.Staff
	if err := db.DB.First(&member, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	var update models.StaffUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.Name != "" {
		member.Name = update.Name
	}
	if update.Role != "" {
		member.Role = update.Role
	}
	if update.IsAdmin != nil {
		member.IsAdmin = *update.IsAdmin
	}
	if update.Started != nil {
		member.Started = *update.Started
	}
	if update.Salary != nil {
		member.Salary = *update.Salary
	}
	if update.Email != "" {
		member.Email = update.Email
	}
	if update.PhoneNumber != "" {
		member.PhoneNumber = update.PhoneNumber
	}

	if err := db.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating staff member: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, member)
}

// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Staff member deleted successfully"
// @Failure 404 {object} map[string]string "error: Staff member not found"
// @Router /staff/{id} [delete]
func DeleteStaff(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var member models.Staff
	if err := db.DB.First(&member, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	if err := db.DB.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting staff member: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
