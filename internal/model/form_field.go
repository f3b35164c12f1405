package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Form field types accepted by the contact form builder
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypeTel      = "tel"
	FieldTypeSelect   = "select"
	FieldTypeTextarea = "textarea"
	FieldTypeCheckbox = "checkbox"
	FieldTypeRadio    = "radio"
)

type FormField struct {
	gorm.Model
	Name        string         `gorm:"column:name;not null" json:"name"`
	Label       string         `gorm:"column:label;not null" json:"label"`
	Type        string         `gorm:"column:type;default:text;not null" json:"type"`
	Placeholder string         `gorm:"column:placeholder" json:"placeholder"`
	Required    bool           `gorm:"column:required;default:false;not null" json:"required"`
	Options     datatypes.JSON `gorm:"column:options" json:"options"`
	Validation  datatypes.JSON `gorm:"column:validation" json:"validation"`
	Order       int            `gorm:"column:display_order;default:0;not null" json:"order"`
	IsActive    bool           `gorm:"column:is_active;default:true;not null" json:"isActive"`
	IsDefault   bool           `gorm:"column:is_default;default:false;not null" json:"isDefault"`
}
