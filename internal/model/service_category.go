package model

import (
	"gorm.io/gorm"
)

type ServiceCategory struct {
	gorm.Model
	Name        string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"column:description" json:"description"`
	Icon        string `gorm:"column:icon;default:settings" json:"icon"`
	Color       string `gorm:"column:color;default:#3B82F6" json:"color"`
	Order       int    `gorm:"column:display_order;default:0;not null" json:"order"`
	IsActive    bool   `gorm:"column:is_active;default:true;not null" json:"isActive"`
	IsDefault   bool   `gorm:"column:is_default;default:false;not null" json:"isDefault"`
}
