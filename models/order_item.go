package models

import "time"

type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;uniqueIndex:unique_order_menu" json:"order_id"`
	MenuID    uint      `gorm:"not null;uniqueIndex:unique_order_menu" json:"menu_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
