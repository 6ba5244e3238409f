package request

type CreateMomentRequest struct {
	Content string   `json:"content" binding:"required"`
	Images  []string `json:"images" binding:"omitempty,dive,url"`
}

type ListMomentsQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=50"`
}
