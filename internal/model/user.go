package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string     `gorm:"column:email;uniqueIndex;not null"`
	Password      string     `gorm:"column:password;not null" json:"-"`
	FirstName     string     `gorm:"column:first_name;not null"`
	LastName      string     `gorm:"column:last_name;not null"`
	Company       string     `gorm:"column:company"`
	Phone         string     `gorm:"column:phone"`
	Role          string     `gorm:"column:role;default:user;not null"`
	IsActive      bool       `gorm:"column:is_active;default:true;not null"`
	EmailVerified bool       `gorm:"column:email_verified;default:false;not null"`
	LastLogin     *time.Time `gorm:"column:last_login"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
