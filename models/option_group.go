package models

import "time"

type OptionGroup struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	MenuID     uint       `gorm:"not null;index" json:"menu_id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	IsRequired bool       `gorm:"not null;default:false" json:"is_required"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
	DeletedAt  *time.Time `gorm:"index" json:"-"`
}
