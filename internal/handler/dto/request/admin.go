package request

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	Description *string `json:"description,omitempty"`
}
