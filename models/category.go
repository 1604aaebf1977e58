package models

import "time"

type Category struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PartyID      uint       `gorm:"not null;index" json:"party_id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	DisplayOrder int        `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"-"`
}
