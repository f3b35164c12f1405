package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Case study statuses
const (
	CaseStudyStatusDraft     = "draft"
	CaseStudyStatusPublished = "published"
	CaseStudyStatusArchived  = "archived"
)

type CaseStudy struct {
	gorm.Model
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description;not null" json:"description"`
	ClientName  string         `gorm:"column:client_name" json:"clientName"`
	Industry    string         `gorm:"column:industry" json:"industry"`
	Challenge   string         `gorm:"column:challenge" json:"challenge"`
	Solution    string         `gorm:"column:solution" json:"solution"`
	Results     string         `gorm:"column:results" json:"results"`
	Metrics     datatypes.JSON `gorm:"column:metrics" json:"metrics"`
	Images      datatypes.JSON `gorm:"column:images" json:"images"`
	Status      string         `gorm:"column:status;default:draft;not null" json:"status"`
	Featured    bool           `gorm:"column:featured;default:false;not null" json:"featured"`
	PublishedAt *time.Time     `gorm:"column:published_at" json:"publishedAt"`
}
