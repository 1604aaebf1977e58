package models

import "time"

type Menu struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CategoryID    uint       `gorm:"not null;index" json:"category_id"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Description   *string    `gorm:"type:text" json:"description,omitempty"`
	IsRecommended bool       `gorm:"not null;default:false" json:"is_recommended"`
	IsSoldOut     bool       `gorm:"not null;default:false" json:"is_sold_out"`
	DisplayOrder  int        `gorm:"not null;default:0" json:"display_order"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
	DeletedAt     *time.Time `gorm:"index" json:"-"`
}
