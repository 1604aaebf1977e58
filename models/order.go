package models

import "time"

type OrderStatus string

const (
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	PartyID   uint        `gorm:"not null;index:idx_party_guest_status" json:"party_id"`
	GuestID   uint        `gorm:"not null;index:idx_party_guest_status" json:"guest_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index:idx_party_guest_status" json:"status"`
	OrderedAt time.Time   `gorm:"not null" json:"ordered_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}
