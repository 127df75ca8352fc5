package models

import "time"

const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
)

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(255); not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(255); not null" json:"last_name"`
	Username  string `gorm:"type:varchar(255); unique;not null" json:"username"`
	Password  string `gorm:"type:varchar(255); not null" json:"-"`
	Role      string `gorm:"type:varchar(20); not null;default:'employee'" json:"role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
