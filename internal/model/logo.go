package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Logo categories partition the defaults: at most one default per category.
const (
	LogoCategoryMain    = "main"
	LogoCategoryFooter  = "footer"
	LogoCategoryFavicon = "favicon"
	LogoCategoryAdmin   = "admin"
)

type Logo struct {
	gorm.Model
	Name         string         `gorm:"column:name;not null" json:"name"`
	Description  string         `gorm:"column:description" json:"description"`
	ImageURL     string         `gorm:"column:image_url;not null" json:"imageUrl"`
	ThumbnailURL string         `gorm:"column:thumbnail_url" json:"thumbnailUrl"`
	IsActive     bool           `gorm:"column:is_active;default:true;not null" json:"isActive"`
	IsDefault    bool           `gorm:"column:is_default;default:false;not null" json:"isDefault"`
	Category     string         `gorm:"column:category;default:main;not null" json:"category"`
	Size         datatypes.JSON `gorm:"column:size" json:"size"`
	AltText      string         `gorm:"column:alt_text" json:"altText"`
	Tags         datatypes.JSON `gorm:"column:tags" json:"tags"`
	UploadedBy   uint           `gorm:"column:uploaded_by" json:"uploadedBy"`
}
