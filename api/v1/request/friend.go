package request

type ApplyFriendRequest struct {
	Name        string `json:"name" binding:"required"`
	Avatar      string `json:"avatar" binding:"omitempty,avatar"`
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description" binding:"required"`
}

type UpdateFriendRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Avatar      *string `json:"avatar" binding:"omitempty,avatar"`
	URL         *string `json:"url" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

type FriendStatusRequest struct {
	Status *int `json:"status" binding:"required,min=0,max=2"`
}
