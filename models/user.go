package models

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	LoginID   string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"login_id"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	Nickname  string     `gorm:"type:varchar(100);not null" json:"nickname"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
