package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Homepage section types
const (
	SectionTypeHero          = "hero"
	SectionTypeFeatures      = "features"
	SectionTypeAbout         = "about"
	SectionTypeServices      = "services"
	SectionTypeTestimonials  = "testimonials"
	SectionTypeCTA           = "cta"
	SectionTypeTeamExpertise = "team-expertise"
	SectionTypeCustom        = "custom"
)

type HomepageSection struct {
	gorm.Model
	Title       string         `gorm:"column:title;not null" json:"title"`
	Content     string         `gorm:"column:content" json:"content"`
	SectionType string         `gorm:"column:section_type;default:custom;not null" json:"sectionType"`
	Order       int            `gorm:"column:display_order;default:0;not null" json:"order"`
	IsActive    bool           `gorm:"column:is_active;default:true;not null" json:"isActive"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata"`
}
