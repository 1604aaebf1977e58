package models

import "time"

type PartyGuest struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PartyID   uint       `gorm:"not null;index" json:"party_id"`
	Nickname  string     `gorm:"type:varchar(100);not null" json:"nickname"`
	IsBlocked bool       `gorm:"not null;default:false" json:"is_blocked"`
	JoinedAt  time.Time  `gorm:"not null" json:"joined_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}
