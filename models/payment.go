package models

import "time"

// Payment is an obligation-satisfying event: one trainee paying one category.
// The most recent payment per (trainee, category) anchors the next due date.
type Payment struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organizationId" gorm:"type:uuid;not null;index:idx_payments_org_date"`
	TraineeID      string    `json:"traineeId" gorm:"type:uuid;not null;index:idx_payments_trainee_category"`
	Category       string    `json:"category" gorm:"type:varchar(20);not null;index:idx_payments_trainee_category"`
	PaymentDate    time.Time `json:"paymentDate" gorm:"index:idx_payments_org_date"`
	Amount         float64   `json:"amount" gorm:"type:numeric(10,2)"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Trainee *Trainee `json:"trainee,omitempty" gorm:"foreignKey:TraineeID"`
}

type PaymentCreate struct {
	TraineeID   string     `json:"traineeId" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	PaymentDate *time.Time `json:"paymentDate"`
	Amount      float64    `json:"amount" binding:"required"`
}

type PaymentUpdate struct {
	Category    string     `json:"category"`
	PaymentDate *time.Time `json:"paymentDate"`
	Amount      *float64   `json:"amount"`
}
