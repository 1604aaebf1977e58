package models

import "time"

type PartyStatus string

const (
	PartyStatusPlanning  PartyStatus = "PLANNING"
	PartyStatusOpen      PartyStatus = "OPEN"
	PartyStatusClosed    PartyStatus = "CLOSED"
	PartyStatusCancelled PartyStatus = "CANCELLED"
)

func (s PartyStatus) Valid() bool {
	switch s {
	case PartyStatusPlanning, PartyStatusOpen, PartyStatusClosed, PartyStatusCancelled:
		return true
	}
	return false
}

type Party struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	HostID      uint        `gorm:"not null;index:idx_host_id_status" json:"host_id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Description *string     `gorm:"type:varchar(1000)" json:"description,omitempty"`
	Date        *time.Time  `json:"date,omitempty"`
	Location    *string     `gorm:"type:varchar(255)" json:"location,omitempty"`
	Status      PartyStatus `gorm:"type:varchar(20);not null;index:idx_host_id_status" json:"status"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	DeletedAt   *time.Time  `gorm:"index" json:"-"`
}

func (p *Party) IsDeleted() bool {
	return p.DeletedAt != nil
}
