package dto

type CreateTestimonialRequest struct {
	Content        string `json:"content" binding:"required"`
	AuthorName     string `json:"authorName" binding:"required"`
	AuthorPosition string `json:"authorPosition"`
	AuthorCompany  string `json:"authorCompany"`
	Rating         *int   `json:"rating" binding:"omitempty,gte=1,lte=5"`
	AvatarURL      string `json:"avatarUrl" binding:"omitempty,url"`
	IsActive       *bool  `json:"isActive"`
	Featured       *bool  `json:"featured"`
	DisplayOrder   *int   `json:"displayOrder"`
}

type UpdateTestimonialRequest struct {
	Content        *string `json:"content"`
	AuthorName     *string `json:"authorName"`
	AuthorPosition *string `json:"authorPosition"`
	AuthorCompany  *string `json:"authorCompany"`
	Rating         *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	AvatarURL      *string `json:"avatarUrl" binding:"omitempty,url"`
	IsActive       *bool   `json:"isActive"`
	Featured       *bool   `json:"featured"`
	DisplayOrder   *int    `json:"displayOrder"`
}
