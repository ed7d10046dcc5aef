package models

import (
	"time"

	"academy-backend/internal/billing"
)

// SubscriptionPayment is one row of the tenant billing ledger. Rows are
// append-only: the covered window is computed once at creation and never
// recomputed, so the ledger stays an exact history of what was sold.
type SubscriptionPayment struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organizationId" gorm:"type:uuid;not null;index"`
	PaymentDate    time.Time `json:"paymentDate"`
	Amount         float64   `json:"amount" gorm:"type:numeric(10,2)"`
	DurationMonths int       `json:"durationMonths" gorm:"default:1"`
	PaymentMethod  string    `json:"paymentMethod" gorm:"type:varchar(20);default:'cash'"`
	Notes          string    `json:"notes"`
	RecordedBy     string    `json:"recordedBy" gorm:"type:uuid"`

	// covered window, fixed at creation
	SubscriptionStart time.Time `json:"subscriptionStart"`
	SubscriptionEnd   time.Time `json:"subscriptionEnd"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewSubscriptionPayment builds a ledger row for an organization. The covered
// window starts the day after the previous end date when that window is still
// running, so sequential payments concatenate with no gap and no overlap: a
// mid-trial payment extends from the trial end, a renewal extends from the
// paid end. A lapsed window starts the new one today.
func NewSubscriptionPayment(org *Organization, amount float64, durationMonths int, method, notes, recordedBy string, today time.Time) (*SubscriptionPayment, error) {
	if durationMonths < 1 {
		return nil, billing.ErrInvalidDuration
	}
	if amount <= 0 {
		return nil, billing.ErrInvalidAmount
	}

	today = billing.DateOnly(today)
	start := today
	if end := org.authoritativeEndDate(); end != nil && !end.Before(today) {
		start = billing.DateOnly(*end).AddDate(0, 0, 1)
	}
	end := billing.AddMonths(start, durationMonths).AddDate(0, 0, -1)

	if method == "" {
		method = "cash"
	}

	return &SubscriptionPayment{
		OrganizationID:    org.ID,
		PaymentDate:       today,
		Amount:            amount,
		DurationMonths:    durationMonths,
		PaymentMethod:     method,
		Notes:             notes,
		RecordedBy:        recordedBy,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
	}, nil
}

// SubscriptionPaymentCreate is the superadmin payload for recording a tenant
// subscription payment.
type SubscriptionPaymentCreate struct {
	Amount         float64 `json:"amount" binding:"required"`
	DurationMonths int     `json:"durationMonths" binding:"required"`
	PaymentMethod  string  `json:"paymentMethod"`
	Notes          string  `json:"notes"`
}
