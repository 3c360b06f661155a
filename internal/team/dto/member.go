package dto

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateMemberRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Password *string `json:"password"`
}
