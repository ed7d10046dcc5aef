package incomes

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/internal/cache"
	"academy-backend/middleware"
	"academy-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Record extra income
// @Tags incomes
// @Accept json
// @Produce json
// @Param income body models.ExtraIncome true "Income"
// @Security BearerAuth
// @Success 201 {object} models.ExtraIncome
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /incomes [post]
func CreateIncome(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var income models.ExtraIncome
	if err := c.ShouldBindJSON(&income); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	income.ID = ""
	income.OrganizationID = org.ID
	if income.Date.IsZero() {
		income.Date = time.Now()
	}

	if err := db.DB.Create(&income).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating income: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusCreated, income)
}

// @Summary List extra incomes
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ExtraIncome
// @Router /incomes [get]
func ListIncomes(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var incomes []models.ExtraIncome
	if err := db.DB.Where("organization_id = ?", org.ID).Order("date DESC").Find(&incomes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// @Summary Delete an extra income
// @Tags incomes
// @Produce json
// @Param id path string true "Income ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Income deleted successfully"
// @Failure 404 {object} map[string]string "error: Income not found"
// @Router /incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var income models.ExtraIncome
	if err := db.DB.First(&income, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
		return
	}

	if err := db.DB.Delete(&income).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting income: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
