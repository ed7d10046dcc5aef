package models

import "time"

type TraineeCategory string

const (
	TraineeSmall  TraineeCategory = "small"
	TraineeBoys   TraineeCategory = "boys"
	TraineeYouth  TraineeCategory = "youth"
	TraineeAdults TraineeCategory = "adults"
	TraineeWomen  TraineeCategory = "women"
)

// Trainee is a club member subject to the per-category payment obligations.
type Trainee struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string          `json:"organizationId" gorm:"type:uuid;not null;index:idx_trainees_org_active;index:idx_trainees_org_category"`
	FirstName      string          `json:"firstName" binding:"required"`
	LastName       string          `json:"lastName" binding:"required"`
	BirthDay       *time.Time      `json:"birthDay"`
	Phone          string          `json:"phone"`
	ParentPhone    string          `json:"parentPhone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	Gender         string          `json:"gender" gorm:"type:varchar(10)"`
	BeltDegree     string          `json:"beltDegree"`
	Category       TraineeCategory `json:"category" gorm:"type:varchar(10);default:'small';index:idx_trainees_org_category"`
	StartedDay     time.Time       `json:"startedDay"`
	IsActive       bool            `json:"isActive" gorm:"default:true;index:idx_trainees_org_active"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (t *Trainee) FullName() string {
	return t.FirstName + " " + t.LastName
}

type TraineeUpdate struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	BirthDay    *time.Time `json:"birthDay"`
	Phone       string     `json:"phone"`
	ParentPhone string     `json:"parentPhone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	BeltDegree  string     `json:"beltDegree"`
	Category    string     `json:"category"`
	IsActive    *bool      `json:"isActive"`
}
