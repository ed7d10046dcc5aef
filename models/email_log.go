package models

import "time"

type EmailKind string

const (
	EmailExpiryNotice    EmailKind = "expiry_notice"
	EmailRenewalReminder EmailKind = "renewal_reminder"
)

// EmailLog records every notification the sweep sends. The sweep checks it
// before sending so a cron running more than once a day cannot double-send
// the same reminder.
type EmailLog struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organizationId" gorm:"type:uuid;not null;index"`
	Recipient      string    `json:"recipient"`
	Kind           EmailKind `json:"kind" gorm:"type:varchar(30)"`
	Threshold      int       `json:"threshold"`
	SentDate       time.Time `json:"sentDate"`
	Sent           bool      `json:"sent" gorm:"default:true"`
	CreatedAt      time.Time `json:"createdAt"`
}
