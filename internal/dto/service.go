package dto

type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category" binding:"required"`
	Features    []string `json:"features"`
	Pricing     string   `json:"pricing"`
	Status      string   `json:"status" binding:"omitempty,oneof=draft published archived"`
	IsActive    *bool    `json:"isActive"`
	Featured    *bool    `json:"featured"`
	Order       *int     `json:"order"`
}

type UpdateServiceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Category    *string   `json:"category"`
	Features    *[]string `json:"features"`
	Pricing     *string   `json:"pricing"`
	Status      *string   `json:"status" binding:"omitempty,oneof=draft published archived"`
	IsActive    *bool     `json:"isActive"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
}
