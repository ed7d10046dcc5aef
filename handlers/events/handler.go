package events

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/internal/cache"
	"academy-backend/middleware"
	"academy-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Create an event
// @Description Create a championship, training camp, exam or outing
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.Event true "Event"
// @Security BearerAuth
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /events [post]
func CreateEvent(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	event.ID = ""
	event.OrganizationID = org.ID
	if event.Date.IsZero() {
		event.Date = time.Now()
	}

	if err := db.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusCreated, event)
}

// @Summary List events
// @Tags events
// @Produce json
// @Param category query string false "Event category"
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Router /events [get]
func ListEvents(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	query := db.DB.Where("organization_id = ?", org.ID)
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var events []models.Event
	if err := query.Order("date DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(events))
	for i := range events {
		out = append(out, gin.H{
			"event":     events[i],
			"profit":    events[i].Profit(),
			"netProfit": events[i].NetProfit(),
		})
	}

	c.JSON(http.StatusOK, out)
}

// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body models.Event true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string "error: Event not found"
// @Router /events/{id} [put]
func UpdateEvent(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var event models.Event
	if err := db.DB.First(&event, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var update models.Event
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	event.Title = update.Title
	event.Location = update.Location
	event.Category = update.Category
	event.Area = update.Area
	event.Costs = update.Costs
	event.ParticipationPrice = update.ParticipationPrice
	event.AttendeeCount = update.AttendeeCount
	if !update.Date.IsZero() {
		event.Date = update.Date
	}

	if err := db.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, event)
}

// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Event deleted successfully"
// @Failure 404 {object} map[string]string "error: Event not found"
// @Router /events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var event models.Event
	if err := db.DB.First(&event, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := db.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting event: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
