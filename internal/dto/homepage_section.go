package dto

type CreateHomepageSectionRequest struct {
	Title       string         `json:"title" binding:"required"`
	Content     string         `json:"content"`
	SectionType string         `json:"sectionType" binding:"omitempty,oneof=hero features about services testimonials cta team-expertise custom"`
	Order       *int           `json:"order"`
	IsActive    *bool          `json:"isActive"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateHomepageSectionRequest struct {
	Title       *string         `json:"title"`
	Content     *string         `json:"content"`
	SectionType *string         `json:"sectionType" binding:"omitempty,oneof=hero features about services testimonials cta team-expertise custom"`
	Order       *int            `json:"order"`
	IsActive    *bool           `json:"isActive"`
	Metadata    *map[string]any `json:"metadata"`
}
