// Package jobs holds the periodic subscription sweep. An external cron (or
// the superadmin endpoint) calls RunSubscriptionSweep; the sweep itself is
// idempotent, so the frequency does not matter.
package jobs

import (
	"time"

	"academy-backend/db"
	"academy-backend/internal/billing"
	"academy-backend/internal/mailer"
	"academy-backend/models"
	"academy-backend/utils"
)

// ReminderThresholds are the remaining-day marks at which a renewal reminder
// goes out. Fixed marks plus the email log keep a daily cron from spamming.
var ReminderThresholds = []int{7, 3, 1}

type Bucket string

const (
	BucketActive       Bucket = "active"
	BucketExpiringSoon Bucket = "expiring_soon"
	BucketGrace        Bucket = "grace"
	BucketExpired      Bucket = "expired"
	BucketUnset        Bucket = "unset"
)

// Classify buckets one organization for the sweep report.
func Classify(org *models.Organization, today time.Time) Bucket {
	days, ok := org.DaysUntilExpiration(today)
	if !ok {
		return BucketUnset
	}
	switch {
	case org.IsExpired(today):
		return BucketExpired
	case org.IsInGracePeriod(today):
		return BucketGrace
	case days <= 7:
		return BucketExpiringSoon
	default:
		return BucketActive
	}
}

// SweepStats summarizes one sweep run.
type SweepStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiringSoon"`
	InGrace      int `json:"inGrace"`
	Expired      int `json:"expired"`
	Deactivated  int `json:"deactivated"`
	EmailsSent   int `json:"emailsSent"`
}

// RunSubscriptionSweep re-evaluates every organization's subscription as of
// today, persists status changes and sends the due notifications. sendEmails
// false runs a dry pass that only updates statuses.
func RunSubscriptionSweep(today time.Time, sendEmails bool) (SweepStats, error) {
	var stats SweepStats

	var orgs []models.Organization
	if err := db.DB.Find(&orgs).Error; err != nil {
		return stats, err
	}

	for i := range orgs {
		org := &orgs[i]
		stats.Total++

		days, ok := org.DaysUntilExpiration(today)
		if !ok {
			continue
		}

		wasActive := org.IsActive
		if org.CheckAndUpdateStatus(today) {
			if err := db.DB.Model(org).Updates(map[string]interface{}{
				"is_active":           org.IsActive,
				"subscription_status": org.SubscriptionStatus,
			}).Error; err != nil {
				utils.LogErrorWithOrg(org.ID, err, "Error persisting subscription status during sweep")
				continue
			}
			if wasActive && !org.IsActive {
				stats.Deactivated++
				utils.LogInfo("Organization deactivated: " + org.Name)
			}
		}

		switch Classify(org, today) {
		case BucketExpired:
			stats.Expired++
			if sendEmails && notifyExpired(org, today, days) {
				stats.EmailsSent++
			}
		case BucketGrace:
			stats.InGrace++
		case BucketExpiringSoon:
			stats.ExpiringSoon++
			if sendEmails && remind(org, today, days) {
				stats.EmailsSent++
			}
		case BucketActive:
			stats.Active++
		}
	}

	return stats, nil
}

// alreadySent checks the email log for a same-day duplicate of this
// notification.
func alreadySent(orgID string, kind models.EmailKind, threshold int, today time.Time) bool {
	var count int64
	db.DB.Model(&models.EmailLog{}).
		Where("organization_id = ? AND kind = ? AND threshold = ? AND sent_date = ?",
			orgID, kind, threshold, billing.DateOnly(today)).
		Count(&count)
	return count > 0
}

func logEmail(org *models.Organization, kind models.EmailKind, threshold int, today time.Time, sent bool) {
	entry := models.EmailLog{
		OrganizationID: org.ID,
		Recipient:      org.Email,
		Kind:           kind,
		Threshold:      threshold,
		SentDate:       billing.DateOnly(today),
		Sent:           sent,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		utils.LogErrorWithOrg(org.ID, err, "Error recording email log entry")
	}
}

func notifyExpired(org *models.Organization, today time.Time, days int) bool {
	if org.Email == "" || alreadySent(org.ID, models.EmailExpiryNotice, 0, today) {
		return false
	}
	end := ""
	if org.SubscriptionEndDate != nil {
		end = org.SubscriptionEndDate.Format("2006-01-02")
	}
	err := mailer.SendExpiryNotice(org.Email, org.Name, end, -days)
	logEmail(org, models.EmailExpiryNotice, 0, today, err == nil)
	return err == nil
}

func remind(org *models.Organization, today time.Time, days int) bool {
	hit := false
	for _, threshold := range ReminderThresholds {
		if days == threshold {
			hit = true
			break
		}
	}
	if !hit || org.Email == "" || alreadySent(org.ID, models.EmailRenewalReminder, days, today) {
		return false
	}
	end := ""
	if e := org.SubscriptionEndDate; e != nil {
		end = e.Format("2006-01-02")
	} else if org.TrialEnd != nil {
		end = org.TrialEnd.Format("2006-01-02")
	}
	err := mailer.SendRenewalReminder(org.Email, org.Name, end, days)
	logEmail(org, models.EmailRenewalReminder, days, today, err == nil)
	return err == nil
}
