package models

import "time"

// Event is a championship, training camp, exam or outing organized by the
// club. Attendees pay a participation price, so an event both costs and
// earns.
type Event struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID     string    `json:"organizationId" gorm:"type:uuid;not null;index"`
	Title              string    `json:"title" binding:"required"`
	Date               time.Time `json:"date"`
	Location           string    `json:"location"`
	Category           string    `json:"category" gorm:"type:varchar(20)"`
	Area               string    `json:"area" gorm:"type:varchar(20)"`
	Costs              float64   `json:"costs" gorm:"type:numeric(10,2);default:0"`
	ParticipationPrice float64   `json:"participationPrice" gorm:"type:numeric(10,2);default:0"`
	AttendeeCount      int       `json:"attendeeCount" gorm:"default:0"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (e *Event) Profit() float64 {
	return e.ParticipationPrice * float64(e.AttendeeCount)
}

func (e *Event) NetProfit() float64 {
	return e.Profit() - e.Costs
}
