package models

import "time"

type OrderItemOption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderItemID uint      `gorm:"not null;uniqueIndex:unique_order_item_option" json:"order_item_id"`
	OptionID    uint      `gorm:"not null;uniqueIndex:unique_order_item_option" json:"option_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
