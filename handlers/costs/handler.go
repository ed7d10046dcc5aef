package costs

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/internal/cache"
	"academy-backend/middleware"
	"academy-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Record an expense
// @Tags costs
// @Accept json
// @Produce json
// @Param cost body models.Cost true "Expense"
// @Security BearerAuth
// @Success 201 {object} models.Cost
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /costs [post]
func CreateCost(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var cost models.Cost
	if err := c.ShouldBindJSON(&cost); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	cost.ID = ""
	cost.OrganizationID = org.ID
	if cost.Date.IsZero() {
		cost.Date = time.Now()
	}

	if err := db.DB.Create(&cost).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating expense: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusCreated, cost)
}

// @Summary List expenses
// @Tags costs
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {array} models.Cost
// @Router /costs [get]
func ListCosts(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	query := db.DB.Where("organization_id = ?", org.ID)
	if start := c.Query("start"); start != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("date >= ?", startDate)
	}
	if end := c.Query("end"); end != "" {
		endDate, err := time.Parse("2006-01-02", end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("date <= ?", endDate)
	}

	var costs []models.Cost
	if err := query.Order("date DESC").Find(&costs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, costs)
}

// @Summary Update an expense
// @Tags costs
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param cost body models.CostUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Cost
// @Failure 404 {object} map[string]string "error: Expense not found"
// @Router /costs/{id} [put]
func UpdateCost(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var cost models.Cost
	if err := db.DB.First(&cost, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	var update models.CostUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.Label != "" {
		cost.Label = update.Label
	}
	if update.Description != "" {
		cost.Description = update.Description
	}
	if update.Amount != nil {
		cost.Amount = *update.Amount
	}
	if update.Date != nil {
		cost.Date = *update.Date
	}
	if update.IsRecurring != nil {
		cost.IsRecurring = *update.IsRecurring
	}

	if err := db.DB.Save(&cost).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating expense: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, cost)
}

// @Summary Delete an expense
// @Tags costs
// @Produce json
// @Param id path string true "Expense ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Expense deleted successfully"
// @Failure 404 {object} map[string]string "error: Expense not found"
// @Router /costs/{id} [delete]
func DeleteCost(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var cost models.Cost
	if err := db.DB.First(&cost, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	if err := db.DB.Delete(&cost).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting expense: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
