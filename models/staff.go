package models

import "time"

// Staff is an employee of the organization. Started anchors the monthly
// salary schedule used by the financial report.
type Staff struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string    `json:"organizationId" gorm:"type:uuid;not null;index"`
	Name           string    `json:"name" binding:"required"`
	Role           string    `json:"role"`
	IsAdmin        bool      `json:"isAdmin" gorm:"default:false"`
	Started        time.Time `json:"started"`
	Salary         float64   `json:"salary" gorm:"type:numeric(10,2);default:0"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type StaffUpdate struct {
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	IsAdmin     *bool      `json:"isAdmin"`
	Started     *time.Time `json:"started"`
	Salary      *float64   `json:"salary"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
}
