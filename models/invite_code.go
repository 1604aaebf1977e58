package models

import "time"

type InviteCode struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PartyID   uint       `gorm:"not null;index:idx_party_id_code" json:"party_id"`
	Code      string     `gorm:"type:varchar(100);uniqueIndex;not null;index:idx_party_id_code" json:"code"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

func (ic *InviteCode) IsExpired() bool {
	return ic.ExpiresAt != nil && ic.ExpiresAt.Before(time.Now())
}

// IsValid reports whether the code can still be used to join a party.
func (ic *InviteCode) IsValid() bool {
	return ic.IsActive && !ic.IsExpired() && ic.DeletedAt == nil
}
