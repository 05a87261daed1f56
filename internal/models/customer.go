package models

import "time"

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"not null;unique" json:"email"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	ContactNumber string    `gorm:"size:15;not null" json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
