package models

import "time"

// ExtraIncome is income outside trainee payments (donations, grants, sales).
type ExtraIncome struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organizationId" gorm:"type:uuid;not null;index"`
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount" gorm:"type:numeric(10,2)"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
