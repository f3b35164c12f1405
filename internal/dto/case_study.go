package dto

// CaseStudyMetric is a headline result figure shown on the work page
type CaseStudyMetric struct {
	Label       string `json:"label" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Improvement string `json:"improvement"`
}

type CreateCaseStudyRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description" binding:"required"`
	ClientName  string            `json:"clientName"`
	Industry    string            `json:"industry"`
	Challenge   string            `json:"challenge"`
	Solution    string            `json:"solution"`
	Results     string            `json:"results"`
	Metrics     []CaseStudyMetric `json:"metrics"`
	Images      []string          `json:"images"`
	Status      string            `json:"status" binding:"omitempty,oneof=draft published archived"`
	Featured    *bool             `json:"featured"`
}

type UpdateCaseStudyRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	ClientName  *string            `json:"clientName"`
	Industry    *string            `json:"industry"`
	Challenge   *string            `json:"challenge"`
	Solution    *string            `json:"solution"`
	Results     *string            `json:"results"`
	Metrics     *[]CaseStudyMetric `json:"metrics"`
	Images      *[]string          `json:"images"`
	Status      *string            `json:"status" binding:"omitempty,oneof=draft published archived"`
	Featured    *bool              `json:"featured"`
}
