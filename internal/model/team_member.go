package model

import (
	"gorm.io/gorm"
)

type TeamMember struct {
	gorm.Model
	Name      string `gorm:"column:name;not null" json:"name"`
	Position  string `gorm:"column:position;not null" json:"position"`
	Bio       string `gorm:"column:bio" json:"bio"`
	Image     string `gorm:"column:image" json:"image"`
	LinkedIn  string `gorm:"column:linkedin" json:"linkedin"`
	Email     string `gorm:"column:email" json:"email"`
	Order     int    `gorm:"column:display_order;default:0;not null" json:"order"`
	IsActive  bool   `gorm:"column:is_active;default:true;not null" json:"isActive"`
	IsDefault bool   `gorm:"column:is_default;default:false;not null" json:"isDefault"`
}
