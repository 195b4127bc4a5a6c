package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Type        string `gorm:"size:50;not null" json:"type"`
	Description string `gorm:"size:255" json:"description"`

	Date time.Time `gorm:"type:date" json:"date"`
	Time string    `gorm:"size:20" json:"time"`

	Address string `gorm:"size:150;not null" json:"address"`
	Zone    string `gorm:"size:100;not null" json:"zone"`

	// Copia desnormalizada del DNI del cliente al momento de crear la cita
	DNI string `gorm:"column:dni;size:8;not null" json:"dni"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	ClientID string `gorm:"size:36;index" json:"clientId"`
	Client   Client `gorm:"foreignKey:ClientID" json:"client"`

	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`

	CancelledAt *time.Time `json:"cancelledAt"`
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
