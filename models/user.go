package models

import "time"

type Role string

const (
	SuperAdminRole Role = "SUPERADMIN"
	AdminRole      Role = "ADMIN"
	StaffRole      Role = "STAFF"
)

// User is a login account. Every user except the superadmin belongs to one
// organization.
type User struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID *string   `json:"organizationId" gorm:"type:uuid;index"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null" binding:"required,email"`
	Password       string    `json:"-" gorm:"not null"`
	Name           string    `json:"name"`
	Role           Role      `json:"role" gorm:"type:varchar(20);default:'STAFF'"`
	Enable         bool      `json:"enable" gorm:"default:true"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest creates an organization together with its first admin user.
type SignupRequest struct {
	Organization OrganizationCreate `json:"organization" binding:"required"`
	Email        string             `json:"email" binding:"required,email"`
	Password     string             `json:"password" binding:"required,min=6"`
	Name         string             `json:"name"`
}
