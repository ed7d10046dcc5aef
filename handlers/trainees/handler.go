package trainees

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/middleware"
	"academy-backend/models"

	"github.com/gin-gonic/gin"
)

// CreateTrainee registers a new trainee in the caller's organization
// @Summary Create a trainee
// @Description Register a new trainee in the caller's organization
// @Tags trainees
// @Accept json
// @Produce json
// @Param trainee body models.Trainee true "Trainee information"
// @Security BearerAuth
// @Success 201 {object} models.Trainee
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /trainees [post]
func CreateTrainee(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var trainee models.Trainee
	if err := c.ShouldBindJSON(&trainee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trainee.ID = ""
	trainee.OrganizationID = org.ID
	trainee.IsActive = true
	if trainee.StartedDay.IsZero() {
		trainee.StartedDay = time.Now()
	}
	if trainee.Category == "" {
		trainee.Category = models.TraineeSmall
	}

	if err := db.DB.Create(&trainee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating trainee: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trainee)
}

// ListTrainees lists the organization's trainees
// @Summary List trainees
// @Description List the organization's trainees, optionally filtered by category and active flag
// @Tags trainees
// @Produce json
// @Param category query string false "Trainee category"
// @Param active query bool false "Only active trainees"
// @Security BearerAuth
// @Success 200 {array} models.Trainee
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /trainees [get]
func ListTrainees(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	query := db.DB.Where("organization_id = ?", org.ID)
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var trainees []models.Trainee
	if err := query.Order("started_day DESC").Find(&trainees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trainees)
}

// GetTrainee returns one trainee with their payment history
// @Summary Get a trainee
// @Description Return one trainee with their payment history, most recent first
// @Tags trainees
// @Produce json
// @Param id path string true "Trainee ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "error: Trainee not found"
// @Router /trainees/{id} [get]
func GetTrainee(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var trainee models.Trainee
	if err := db.DB.First(&trainee, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainee not found"})
		return
	}

	var payments []models.Payment
	if err := db.DB.Where("trainee_id = ? AND organization_id = ?", trainee.ID, org.ID).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainee":  trainee,
		"payments": payments,
	})
}

// UpdateTrainee updates a trainee's profile
// @Summary Update a trainee
// @Description Update a trainee's profile fields
// @Tags trainees
// @Accept json
// @Produce json
// @Param id path string true "Trainee ID"
// @Param trainee body models.TraineeUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Trainee
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Trainee not found"
// @Router /trainees/{id} [put]
func UpdateTrainee(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var trainee models.Trainee
	if err := db.DB.First(&trainee, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainee not found"})
		return
	}

	var update models.TraineeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.FirstName != "" {
		trainee.FirstName = update.FirstName
	}
	if update.LastName != "" {
		trainee.LastName = update.LastName
	}
	if update.BirthDay != nil {
		trainee.BirthDay = update.BirthDay
	}
	if update.Phone != "" {
		trainee.Phone = update.Phone
	}
	if update.ParentPhone != "" {
		trainee.ParentPhone = update.ParentPhone
	}
	if update.Email != "" {
		trainee.Email = update.Email
	}
	if update.Address != "" {
		trainee.Address = update.Address
	}
	if update.BeltDegree != "" {
		trainee.BeltDegree = update.BeltDegree
	}
	if update.Category != "" {
		trainee.Category = models.TraineeCategory(update.Category)
	}
	if update.IsActive != nil {
		trainee.IsActive = *update.IsActive
	}

	if err := db.DB.Save(&trainee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating trainee: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, trainee)
}

// DeleteTrainee removes a trainee and their payments
// @Summary Delete a trainee
// @Description Remove a trainee and their payment history
// @Tags trainees
// @Produce json
// @Param id path string true "Trainee ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Trainee deleted successfully"
// @Failure 404 {object} map[string]string "error: Trainee not found"
// @Router /trainees/{id} [delete]
func DeleteTrainee(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var trainee models.Trainee
	if err := db.DB.First(&trainee, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainee not found"})
		return
	}

	if err := db.DB.Where("trainee_id = ?", trainee.ID).Delete(&models.Payment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing trainee payments: " + err.Error()})
		return
	}

	if err := db.DB.Delete(&trainee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting trainee: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainee deleted successfully"})
}

// BulkDeactivateTrainees deactivates a list of trainees at once
// @Summary Bulk deactivate trainees
// @Description Set is_active to false for all the given trainee IDs
// @Tags trainees
// @Accept json
// @Produce json
// @Param ids body map[string][]string true "ids: list of trainee IDs"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "deactivated: count"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /trainees/bulk-deactivate [post]
func BulkDeactivateTrainees(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result := db.DB.Model(&models.Trainee{}).
		Where("organization_id = ? AND id IN ?", org.ID, req.IDs).
		Update("is_active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deactivated": result.RowsAffected})
}
