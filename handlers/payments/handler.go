package payments

import (
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/internal/billing"
	"academy-backend/internal/cache"
	"academy-backend/middleware"
	"academy-backend/models"

	"github.com/gin-gonic/gin"
)

// CreatePayment records a trainee payment
// @Summary Record a trainee payment
// @Description Record a payment for a trainee in one of the payment categories (month, subscription, assurance, jawaz)
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.PaymentCreate true "Payment"
// @Security BearerAuth
// @Success 201 {object} models.Payment
// @Failure 400 {object} map[string]string "error: Invalid category or amount"
// @Failure 404 {object} map[string]string "error: Trainee not found"
// @Router /payments [post]
func CreatePayment(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var req models.PaymentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	category, err := billing.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": billing.ErrInvalidAmount.Error()})
		return
	}

	var trainee models.Trainee
	if err := db.DB.First(&trainee, "id = ? AND organization_id = ?", req.TraineeID, org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainee not found"})
		return
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := models.Payment{
		OrganizationID: org.ID,
		TraineeID:      trainee.ID,
		Category:       string(category),
		PaymentDate:    billing.DateOnly(paymentDate),
		Amount:         req.Amount,
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating payment: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusCreated, payment)
}

// ListPayments returns the payment history with optional filters
// @Summary List payments
// @Description Return the organization's payment history, most recent first, optionally filtered by category, trainee and date range
// @Tags payments
// @Produce json
// @Param category query string false "Payment category"
// @Param trainee_id query string false "Trainee ID"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Security BearerAuth
// @Success 200 {array} models.Payment
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /payments [get]
func ListPayments(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	query := db.DB.Where("organization_id = ?", org.ID)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if traineeID := c.Query("trainee_id"); traineeID != "" {
		query = query.Where("trainee_id = ?", traineeID)
	}
	if start := c.Query("start"); start != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("payment_date >= ?", startDate)
	}
	if end := c.Query("end"); end != "" {
		endDate, err := time.Parse("2006-01-02", end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("payment_date <= ?", endDate)
	}

	var payments []models.Payment
	if err := query.Preload("Trainee").Order("payment_date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// UpdatePayment edits a trainee payment
// @Summary Update a payment
// @Description Edit a payment's category, date or amount
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body models.PaymentUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Payment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Payment not found"
// @Router /payments/{id} [put]
func UpdatePayment(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	var update models.PaymentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.Category != "" {
		category, err := billing.ParseCategory(update.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		payment.Category = string(category)
	}
	if update.PaymentDate != nil {
		payment.PaymentDate = billing.DateOnly(*update.PaymentDate)
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": billing.ErrInvalidAmount.Error()})
			return
		}
		payment.Amount = *update.Amount
	}

	if err := db.DB.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating payment: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, payment)
}

// DeletePayment removes a trainee payment
// @Summary Delete a payment
// @Description Remove a payment from the history
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Payment deleted successfully"
// @Failure 404 {object} map[string]string "error: Payment not found"
// @Router /payments/{id} [delete]
func DeletePayment(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	if err := db.DB.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting payment: " + err.Error()})
		return
	}

	cache.Reports().InvalidateOrg(org.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// MonthGrid returns a trainee's paid/unpaid status for each month of a year
// @Summary Per-month payment grid for a trainee
// @Description For a year, report for each month whether the trainee has a "month" payment
// @Tags payments
// @Produce json
// @Param id path string true "Trainee ID"
// @Param year query int false "Year (defaults to current)"
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string "error: Trainee not found"
// @Router /trainees/{id}/month-grid [get]
func MonthGrid(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	var trainee models.Trainee
	if err := db.DB.First(&trainee, "id = ? AND organization_id = ?", c.Param("id"), org.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainee not found"})
		return
	}

	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		parsed, err := time.Parse("2006", y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed.Year()
	}

	var payments []models.Payment
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if err := db.DB.Where("trainee_id = ? AND category = ? AND payment_date BETWEEN ? AND ?",
		trainee.ID, billing.CategoryMonth, yearStart, yearEnd).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	paidMonths := make(map[time.Month]bool)
	for _, p := range payments {
		paidMonths[p.PaymentDate.Month()] = true
	}

	grid := make([]gin.H, 0, 12)
	for month := time.January; month <= time.December; month++ {
		status := "unpaid"
		if paidMonths[month] {
			status = "paid"
		}
		grid = append(grid, gin.H{"month": int(month), "status": status})
	}

	c.JSON(http.StatusOK, grid)
}
