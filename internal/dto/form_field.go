package dto

// FieldOption is a single choice for select/radio/checkbox fields
type FieldOption struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// FieldValidation mirrors client-side validation hints stored with the field
type FieldValidation struct {
	MinLength *int    `json:"minLength,omitempty"`
	MaxLength *int    `json:"maxLength,omitempty"`
	Pattern   *string `json:"pattern,omitempty"`
}

type CreateFormFieldRequest struct {
	Name        string           `json:"name" binding:"required"`
	Label       string           `json:"label" binding:"required"`
	Type        string           `json:"type" binding:"omitempty,oneof=text email tel select textarea checkbox radio"`
	Placeholder string           `json:"placeholder"`
	Required    *bool            `json:"required"`
	Options     []FieldOption    `json:"options"`
	Validation  *FieldValidation `json:"validation"`
	Order       *int             `json:"order"`
	IsActive    *bool            `json:"isActive"`
}

type UpdateFormFieldRequest struct {
	Name        *string          `json:"name"`
	Label       *string          `json:"label"`
	Type        *string          `json:"type" binding:"omitempty,oneof=text email tel select textarea checkbox radio"`
	Placeholder *string          `json:"placeholder"`
	Required    *bool            `json:"required"`
	Options     *[]FieldOption   `json:"options"`
	Validation  *FieldValidation `json:"validation"`
	Order       *int             `json:"order"`
	IsActive    *bool            `json:"isActive"`
}
