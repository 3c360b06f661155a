package dto

type CreateRfpRequest struct {
	Name     string  `json:"name" binding:"required"`
	Carrier  string  `json:"carrier" binding:"required"`
	Progress *int    `json:"progress"`
	Status   string  `json:"status"`
	DueDate  *string `json:"dueDate"`
	Notes    string  `json:"notes"`
}

// UpdateRfpRequest is a partial update; nil fields are kept
type UpdateRfpRequest struct {
	Name     *string `json:"name"`
	Carrier  *string `json:"carrier"`
	Progress *int    `json:"progress"`
	Status   *string `json:"status"`
	DueDate  *string `json:"dueDate"`
	Notes    *string `json:"notes"`
}
