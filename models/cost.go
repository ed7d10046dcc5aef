package models

import "time"

// Cost is a one-off or recurring expense entered by the organization.
type Cost struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organizationId" gorm:"type:uuid;not null;index"`
	Label          string    `json:"label" binding:"required"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount" gorm:"type:numeric(10,2)"`
	Date           time.Time `json:"date"`
	IsRecurring    bool      `json:"isRecurring" gorm:"default:false"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CostUpdate struct {
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Amount      *float64   `json:"amount"`
	Date        *time.Time `json:"date"`
	IsRecurring *bool      `json:"isRecurring"`
}
