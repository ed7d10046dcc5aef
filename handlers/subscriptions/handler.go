package subscriptions

import (
	"errors"
	"net/http"
	"time"

	"academy-backend/db"
	"academy-backend/internal/billing"
	"academy-backend/internal/jobs"
	"academy-backend/models"
	"academy-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orgFromPath validates the :id path param and loads the organization.
func orgFromPath(c *gin.Context) (*models.Organization, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return nil, false
	}
	var org models.Organization
	if err := db.DB.First(&org, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return nil, false
	}
	return &org, true
}

// RecordSubscriptionPayment appends a payment to a tenant's billing ledger
// and activates the subscription
// @Summary Record a subscription payment for an organization
// @Description Append a payment to the tenant billing ledger. The covered window extends the previous one with no gap; the organization becomes active. Superadmin only.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param payment body models.SubscriptionPaymentCreate true "Payment"
// @Security BearerAuth
// @Success 201 {object} models.SubscriptionPayment
// @Failure 400 {object} map[string]string "error: Invalid duration or amount"
// @Failure 404 {object} map[string]string "error: Organization not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/organizations/{id}/subscription-payments [post]
func RecordSubscriptionPayment(c *gin.Context) {
	org, ok := orgFromPath(c)
	if !ok {
		return
	}

	var req models.SubscriptionPaymentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userID, _ := c.Get("user_id")
	recordedBy, _ := userID.(string)

	payment, err := models.NewSubscriptionPayment(org, req.Amount, req.DurationMonths, req.PaymentMethod, req.Notes, recordedBy, time.Now())
	if err != nil {
		if errors.Is(err, billing.ErrInvalidDuration) || errors.Is(err, billing.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// ledger row and organization status move together or not at all
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		org.RecordPayment(payment)
		return tx.Model(org).Updates(map[string]interface{}{
			"subscription_status":     org.SubscriptionStatus,
			"subscription_start_date": org.SubscriptionStartDate,
			"subscription_end_date":   org.SubscriptionEndDate,
			"is_active":               org.IsActive,
			"trial_start":             nil,
			"trial_end":               nil,
		}).Error
	})
	if err != nil {
		utils.LogErrorWithOrg(org.ID, err, "Error recording subscription payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording payment: " + err.Error()})
		return
	}

	utils.LogSuccessWithOrg(org.ID, "Subscription payment recorded")
	c.JSON(http.StatusCreated, payment)
}

// ListSubscriptionPayments returns a tenant's billing ledger
// @Summary List subscription payments for an organization
// @Description Return the append-only billing ledger, most recent first. Superadmin only.
// @Tags subscriptions
// @Produce json
// @Param id path string true "Organization ID"
// @Security BearerAuth
// @Success 200 {array} models.SubscriptionPayment
// @Failure 404 {object} map[string]string "error: Organization not found"
// @Router /admin/organizations/{id}/subscription-payments [get]
func ListSubscriptionPayments(c *gin.Context) {
	org, ok := orgFromPath(c)
	if !ok {
		return
	}

	var payments []models.SubscriptionPayment
	if err := db.DB.Where("organization_id = ?", org.ID).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CheckOrganizationStatus re-evaluates one tenant's subscription as of today
// @Summary Re-evaluate one organization's subscription status
// @Description Idempotent: flips is_active off once the subscription is past grace, never reactivates. Safe to call at any frequency.
// @Tags subscriptions
// @Produce json
// @Param id path string true "Organization ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "error: Organization not found"
// @Router /admin/organizations/{id}/check-status [post]
func CheckOrganizationStatus(c *gin.Context) {
	org, ok := orgFromPath(c)
	if !ok {
		return
	}

	today := time.Now()
	if org.CheckAndUpdateStatus(today) {
		if err := db.DB.Model(org).Updates(map[string]interface{}{
			"is_active":           org.IsActive,
			"subscription_status": org.SubscriptionStatus,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error persisting status: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": org,
		"status":       org.StatusDisplay(today),
	})
}

// RunSubscriptionSweep re-evaluates every tenant and sends due notifications
// @Summary Run the subscription sweep
// @Description Re-evaluate every tenant's subscription, persist status changes and send expiry/renewal mails at the 7/3/1-day thresholds. Idempotent; meant for the daily cron.
// @Tags subscriptions
// @Produce json
// @Param send_emails query bool false "Send notification emails (default false)"
// @Security BearerAuth
// @Success 200 {object} jobs.SweepStats
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/subscriptions/check [post]
func RunSubscriptionSweep(c *gin.Context) {
	sendEmails := c.Query("send_emails") == "true"

	stats, err := jobs.RunSubscriptionSweep(time.Now(), sendEmails)
	if err != nil {
		utils.LogError(err, "Error running subscription sweep")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
