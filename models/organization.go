package models

import (
	"time"

	"academy-backend/internal/billing"
)

type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

const DefaultTrialDays = 7

// Organization is a tenant. Every other row in the database is scoped to
// exactly one organization and all queries must filter on it.
type Organization struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`

	// rent schedule: fixed monthly anchor, not a "last paid" date
	RentAmount  float64    `json:"rentAmount" gorm:"type:numeric(10,2);default:0"`
	RentDueDate *time.Time `json:"rentDueDate"`

	SubscriptionStatus    SubscriptionStatus `json:"subscriptionStatus" gorm:"type:varchar(20);default:'trial'"`
	TrialStart            *time.Time         `json:"trialStart"`
	TrialEnd              *time.Time         `json:"trialEnd"`
	SubscriptionStartDate *time.Time         `json:"subscriptionStartDate"`
	SubscriptionEndDate   *time.Time         `json:"subscriptionEndDate"`
	GracePeriodDays       int                `json:"gracePeriodDays" gorm:"default:7"`
	IsActive              bool               `json:"isActive" gorm:"default:true"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StartTrial puts a fresh organization on its free trial window.
func (o *Organization) StartTrial(today time.Time, trialDays int) {
	start := billing.DateOnly(today)
	end := start.AddDate(0, 0, trialDays)
	o.SubscriptionStatus = SubscriptionTrial
	o.TrialStart = &start
	o.TrialEnd = &end
	o.SubscriptionStartDate = nil
	o.SubscriptionEndDate = nil
	o.IsActive = true
}

// authoritativeEndDate picks the end date that governs expiration math for
// the current status: the trial window while on trial, the paid window
// otherwise. A tenant that expired straight out of its trial never got a paid
// window, so the trial end keeps governing until a payment replaces it.
func (o *Organization) authoritativeEndDate() *time.Time {
	if o.SubscriptionStatus == SubscriptionTrial {
		return o.TrialEnd
	}
	if o.SubscriptionEndDate != nil {
		return o.SubscriptionEndDate
	}
	return o.TrialEnd
}

// DaysUntilExpiration returns the signed day count to the authoritative end
// date. ok is false for a tenant that was never billed and has no trial set;
// every dependent predicate treats that as "not expired, not in grace".
func (o *Organization) DaysUntilExpiration(today time.Time) (int, bool) {
	end := o.authoritativeEndDate()
	if end == nil {
		return 0, false
	}
	return billing.DaysUntil(*end, today), true
}

// IsInGracePeriod reports whether the subscription is past its end date but
// still inside the grace window.
func (o *Organization) IsInGracePeriod(today time.Time) bool {
	days, ok := o.DaysUntilExpiration(today)
	if !ok {
		return false
	}
	return days < 0 && days >= -o.GracePeriodDays
}

// IsExpired reports whether the subscription is past its end date and past
// the grace window.
func (o *Organization) IsExpired(today time.Time) bool {
	days, ok := o.DaysUntilExpiration(today)
	if !ok {
		return false
	}
	return days < -o.GracePeriodDays
}

// RecordPayment applies a subscription payment to the organization: status
// becomes active, the covered window is the payment's, trial fields are
// cleared. The caller persists the organization and the payment in one
// transaction.
func (o *Organization) RecordPayment(p *SubscriptionPayment) {
	o.SubscriptionStatus = SubscriptionActive
	start := p.SubscriptionStart
	end := p.SubscriptionEnd
	o.SubscriptionStartDate = &start
	o.SubscriptionEndDate = &end
	o.IsActive = true
	o.TrialStart = nil
	o.TrialEnd = nil
}

// CheckAndUpdateStatus re-evaluates the subscription as of today. It only
// ever demotes: is_active drops once expiration passes the grace window and
// the status flips to expired; nothing here reactivates a tenant, only
// RecordPayment does. Safe to call any number of times. Returns true when a
// field changed and the row needs saving.
func (o *Organization) CheckAndUpdateStatus(today time.Time) bool {
	if !o.IsExpired(today) {
		return false
	}
	changed := false
	if o.IsActive {
		o.IsActive = false
		changed = true
	}
	if o.SubscriptionStatus == SubscriptionTrial || o.SubscriptionStatus == SubscriptionActive {
		o.SubscriptionStatus = SubscriptionExpired
		changed = true
	}
	return changed
}

// StatusBadge is the dashboard classification of a subscription.
type StatusBadge struct {
	Text  string `json:"text"`
	Class string `json:"class"`
	Days  *int   `json:"days"`
}

// StatusDisplay buckets the remaining days into the dashboard bands:
// >30 success, 8..30 info, 1..7 warning, grace and expired danger.
func (o *Organization) StatusDisplay(today time.Time) StatusBadge {
	days, ok := o.DaysUntilExpiration(today)
	if !ok {
		return StatusBadge{Text: "not set", Class: "warning"}
	}
	d := days
	switch {
	case days > 30:
		return StatusBadge{Text: "active", Class: "success", Days: &d}
	case days > 7:
		return StatusBadge{Text: "expiring soon", Class: "info", Days: &d}
	case days > 0:
		return StatusBadge{Text: "expiring this week", Class: "warning", Days: &d}
	case o.IsInGracePeriod(today):
		return StatusBadge{Text: "grace period", Class: "danger", Days: &d}
	default:
		return StatusBadge{Text: "expired", Class: "danger", Days: &d}
	}
}

// OrganizationCreate is the signup payload.
type OrganizationCreate struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`
}

// OrganizationUpdate is the admin update payload. SubscriptionStatus is only
// honoured for the manual suspended/active override on the superadmin route.
type OrganizationUpdate struct {
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Email              string     `json:"email"`
	PhoneNumber        string     `json:"phoneNumber"`
	Location           string     `json:"location"`
	RentAmount         *float64   `json:"rentAmount"`
	RentDueDate        *time.Time `json:"rentDueDate"`
	GracePeriodDays    *int       `json:"gracePeriodDays"`
	SubscriptionStatus string     `json:"subscriptionStatus"`
}
