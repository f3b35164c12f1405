package dto

type CreateTeamMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email" binding:"omitempty,email"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
	LinkedIn *string `json:"linkedin"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}
