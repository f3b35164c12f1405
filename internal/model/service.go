package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service statuses
const (
	ServiceStatusDraft     = "draft"
	ServiceStatusPublished = "published"
	ServiceStatusArchived  = "archived"
)

type Service struct {
	gorm.Model
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description;not null" json:"description"`
	Icon        string         `gorm:"column:icon;default:credit-card" json:"icon"`
	Category    string         `gorm:"column:category;not null" json:"category"`
	Features    datatypes.JSON `gorm:"column:features" json:"features"`
	Pricing     string         `gorm:"column:pricing;default:Contact for pricing" json:"pricing"`
	Status      string         `gorm:"column:status;default:draft;not null" json:"status"`
	IsActive    bool           `gorm:"column:is_active;default:true;not null" json:"isActive"`
	Featured    bool           `gorm:"column:featured;default:false;not null" json:"featured"`
	Order       int            `gorm:"column:display_order;default:0;not null" json:"order"`
}
