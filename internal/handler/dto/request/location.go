package request

type LocationRequest struct {
	Name        string  `json:"name" binding:"required"`
	NameBn      *string `json:"name_bn,omitempty"`
	Description *string `json:"description,omitempty"`
}

type SetLocationActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
