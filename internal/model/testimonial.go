package model

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	gorm.Model
	Content        string     `gorm:"column:content;not null" json:"content"`
	AuthorName     string     `gorm:"column:author_name;not null" json:"authorName"`
	AuthorPosition string     `gorm:"column:author_position" json:"authorPosition"`
	AuthorCompany  string     `gorm:"column:author_company" json:"authorCompany"`
	Rating         int        `gorm:"column:rating;default:5;not null" json:"rating"`
	AvatarURL      string     `gorm:"column:avatar_url" json:"avatarUrl"`
	IsActive       bool       `gorm:"column:is_active;default:true;not null" json:"isActive"`
	Featured       bool       `gorm:"column:featured;default:false;not null" json:"featured"`
	DisplayOrder   int        `gorm:"column:display_order;default:0;not null" json:"displayOrder"`
	PublishedAt    *time.Time `gorm:"column:published_at" json:"publishedAt"`
}
